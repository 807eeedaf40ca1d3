package gridcalc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc"
)

func TestParseEdits(t *testing.T) {
	script := `# budget
A1 4
A2	6

B1 =SUM(A1:A2)
b2 =A1 + A2
C1 hello world
C2
1A oops
`
	edits, err := gridcalc.ParseEdits(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, []gridcalc.Edit{
		{Address: "A1", Text: "4"},
		{Address: "A2", Text: "6"},
		{Address: "B1", Text: "=SUM(A1:A2)"},
		{Address: "B2", Text: "=A1 + A2"},
		{Address: "C1", Text: "hello world"},
		{Address: "C2", Text: ""},
		{Address: "1A", Text: "oops"},
	}, edits)

	e := gridcalc.New(gridcalc.DefaultOptions())
	_, err = e.Apply(edits)
	assert.ErrorIs(t, err, gridcalc.ErrMalformedAddress)
	assert.Equal(t, "10", display(t, e, "B1"))
	assert.Equal(t, "10", display(t, e, "B2"))
}
