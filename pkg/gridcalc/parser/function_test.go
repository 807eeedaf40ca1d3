package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCall(t *testing.T) {
	tests := []struct {
		body     string
		expected Call
	}{
		{"SUM(A1:B2)", Call{Func: AggregateSum, Range: "A1:B2"}},
		{"AVERAGE(A1:A9)", Call{Func: AggregateAverage, Range: "A1:A9"}},
		{"average(c3:c4)", Call{Func: AggregateAverage, Range: "c3:c4"}},
		// single cells parse; range validation rejects them later
		{"SUM(A1)", Call{Func: AggregateSum, Range: "A1"}},
	}

	for _, tt := range tests {
		call, err := ParseCall(tt.body)
		require.NoError(t, err, tt.body)
		assert.Equal(t, tt.expected, call, tt.body)
	}
}

func TestParseCallMalformed(t *testing.T) {
	for _, body := range []string{"SUMX(A1:A2)", "SUM(A1:A2", "SUM()", "SUM(A1,A2)", "SUM(5)", "SUM(A1:A2)+A3", "SUM"} {
		_, err := ParseCall(body)
		assert.ErrorIs(t, err, ErrMalformedFunction, "body %q", body)
	}
}

func TestIsAggregate(t *testing.T) {
	tests := []struct {
		body     string
		expected bool
	}{
		{"SUM(A1:A2)", true},
		{"sum(A1:A2)", true},
		{"AVERAGE(A1:A2)", true},
		{"SUMX", true},
		{"A1+A2", false},
		{"S1+A2", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsAggregate(tt.body), tt.body)
	}
}
