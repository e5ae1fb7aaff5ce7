package models

import "testing"

func TestProductionRecord_UsableEggs(t *testing.T) {
	r := ProductionRecord{EggsCollected: 120, DamagedEggs: 8}
	if got := r.UsableEggs(); got != 112 {
		t.Errorf("Expected 112 usable eggs, got %d", got)
	}
}

func TestProductionRecord_UsableEggs_NotClamped(t *testing.T) {
	// Damaged exceeding collected must stay visible as a negative
	// figure, not be clamped to zero.
	r := ProductionRecord{EggsCollected: 5, DamagedEggs: 9}
	if got := r.UsableEggs(); got != -4 {
		t.Errorf("Expected -4, got %d", got)
	}
}

func TestProductionRecord_ProductionRate(t *testing.T) {
	r := ProductionRecord{Birds: 200, EggsCollected: 150}
	if got := r.ProductionRate(); got != 75.0 {
		t.Errorf("Expected 75.0, got %f", got)
	}

	// Backend-supplied rate wins over the computed one
	r.EggProductionRate = 80.5
	if got := r.ProductionRate(); got != 80.5 {
		t.Errorf("Expected 80.5, got %f", got)
	}
}

func TestProductionRecord_ProductionRate_ZeroBirds(t *testing.T) {
	r := ProductionRecord{Birds: 0, EggsCollected: 10}
	if got := r.ProductionRate(); got != 0 {
		t.Errorf("Expected 0 for zero birds, got %f", got)
	}
}

func TestNextBatchNumber_Empty(t *testing.T) {
	if got := NextBatchNumber(nil); got != "Batch-001" {
		t.Errorf("Expected Batch-001, got %s", got)
	}
}

func TestNextBatchNumber_Increments(t *testing.T) {
	records := []ProductionRecord{
		{BatchNumber: "Batch-003"},
		{BatchNumber: "Batch-007"},
		{BatchNumber: "Batch-001"},
	}
	if got := NextBatchNumber(records); got != "Batch-008" {
		t.Errorf("Expected Batch-008, got %s", got)
	}
}

func TestNextBatchNumber_IgnoresNonConforming(t *testing.T) {
	records := []ProductionRecord{
		{BatchNumber: "Batch-004"},
		{BatchNumber: "batch-900"},
		{BatchNumber: "Batch-XYZ"},
		{BatchNumber: "Lot-12"},
		{BatchNumber: ""},
	}
	if got := NextBatchNumber(records); got != "Batch-005" {
		t.Errorf("Expected Batch-005, got %s", got)
	}
}

func TestNextBatchNumber_ZeroPadding(t *testing.T) {
	records := []ProductionRecord{{BatchNumber: "Batch-099"}}
	if got := NextBatchNumber(records); got != "Batch-100" {
		t.Errorf("Expected Batch-100, got %s", got)
	}
}

func TestBatchSequence(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		valid bool
	}{
		{"Batch-001", 1, true},
		{"Batch-042", 42, true},
		{"Batch-100", 100, true},
		{"batch-001", 0, false},
		{"Batch-", 0, false},
		{"Batch-1a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := BatchSequence(tt.in)
		if ok != tt.valid {
			t.Errorf("BatchSequence(%q) valid = %v, want %v", tt.in, ok, tt.valid)
		}
		if ok && got != tt.want {
			t.Errorf("BatchSequence(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
