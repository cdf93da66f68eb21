package report

import (
	"bytes"
	"testing"

	"hostelhub/internal/models"
)

func TestBuildProducesPDF(t *testing.T) {
	totals := []models.CategoryTotal{
		{Category: "utilities", Total: 1200.50},
		{Category: "repairs", Total: 340},
	}

	data, err := Build("Expense", "2026-08-01", "2026-08-31", totals)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with PDF magic, got %q", data[:8])
	}
}

func TestBuildEmptyRange(t *testing.T) {
	data, err := Build("Revenue", "", "", nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}
}
