package output

import (
	"strings"
	"testing"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

func TestSnapshotToJSON(t *testing.T) {
	data := &models.GridData{
		Used: &models.Range{R1: 1, C1: 1, R2: 2, C2: 1},
		Rows: []models.CellRow{
			{R: 1, C: map[string]string{"A": "2"}},
			{R: 2, C: map[string]string{"A": "4"}, Raw: map[string]string{"A": "=A1*2"}},
		},
	}

	got, err := SnapshotToJSON(data, false)
	if err != nil {
		t.Fatalf("SnapshotToJSON failed: %v", err)
	}

	want := `{"used":{"r1":1,"c1":1,"r2":2,"c2":1},"rows":[{"r":1,"c":{"A":"2"}},{"r":2,"c":{"A":"4"},"raw":{"A":"=A1*2"}}]}`
	if string(got) != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestSnapshotToJSONEmpty(t *testing.T) {
	got, err := SnapshotToJSON(&models.GridData{}, false)
	if err != nil {
		t.Fatalf("SnapshotToJSON failed: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("Expected {}, got %s", got)
	}
}

func TestUpdatesToJSON(t *testing.T) {
	tests := []struct {
		name    string
		updates []models.Update
		want    string
	}{
		{"nil", nil, "[]"},
		{"one", []models.Update{{Address: "A1", Display: "NaN"}}, `[{"address":"A1","display":"NaN"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UpdatesToJSON(tt.updates, false)
			if err != nil {
				t.Fatalf("UpdatesToJSON failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCellToJSONPretty(t *testing.T) {
	cell := &models.CellSnapshot{Address: "B2", Col: 2, Row: 2, Raw: "=A1", Display: "1"}

	got, err := CellToJSON(cell, true)
	if err != nil {
		t.Fatalf("CellToJSON failed: %v", err)
	}
	if !strings.Contains(string(got), "\n  \"address\": \"B2\"") {
		t.Errorf("Expected indented output, got %s", got)
	}
}
