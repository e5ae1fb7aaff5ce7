package query

import (
	"testing"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
)

var productionFields = map[string]Field[models.ProductionRecord]{
	"date":          func(r models.ProductionRecord) Value { return Date(r.Date) },
	"batchNumber":   func(r models.ProductionRecord) Value { return Text(r.BatchNumber) },
	"eggsCollected": func(r models.ProductionRecord) Value { return Int(r.EggsCollected) },
	"usableEggs":    func(r models.ProductionRecord) Value { return Int(r.UsableEggs()) },
}

func sampleRecords() []models.ProductionRecord {
	return []models.ProductionRecord{
		{ID: "1", Date: "03/01/2025", BatchNumber: "Batch-001", EggsCollected: 90, DamagedEggs: 5},
		{ID: "2", Date: "01/01/2025", BatchNumber: "Batch-002", EggsCollected: 120, DamagedEggs: 40},
		{ID: "3", Date: "02/01/2025", BatchNumber: "Batch-003", EggsCollected: 90, DamagedEggs: 2},
	}
}

func ids(records []models.ProductionRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestView_SortByRawField(t *testing.T) {
	got := View(sampleRecords(), Filter{}, productionFields, Sort{Key: "eggsCollected"})
	if !equalIDs(ids(got), "1", "3", "2") {
		t.Errorf("Unexpected order %v", ids(got))
	}
}

func TestView_SortByComputedField(t *testing.T) {
	// usableEggs: 85, 80, 88 -> ascending is 2, 1, 3
	got := View(sampleRecords(), Filter{}, productionFields, Sort{Key: "usableEggs"})
	if !equalIDs(ids(got), "2", "1", "3") {
		t.Errorf("Unexpected order %v", ids(got))
	}
}

func TestView_SortByParsedDate(t *testing.T) {
	// Dates are DD/MM/YYYY; lexicographic order would be wrong here.
	records := []models.ProductionRecord{
		{ID: "a", Date: "02/12/2024"},
		{ID: "b", Date: "28/11/2024"},
		{ID: "c", Date: "15/01/2025"},
	}
	got := View(records, Filter{}, productionFields, Sort{Key: "date"})
	if !equalIDs(ids(got), "b", "a", "c") {
		t.Errorf("Unexpected order %v", ids(got))
	}
}

func TestView_StableOnTies(t *testing.T) {
	// Records 1 and 3 tie on eggsCollected; input order must hold.
	got := View(sampleRecords(), Filter{}, productionFields, Sort{Key: "eggsCollected"})
	if !equalIDs(ids(got), "1", "3", "2") {
		t.Errorf("Ties reordered: %v", ids(got))
	}

	desc := View(sampleRecords(), Filter{}, productionFields, Sort{Key: "eggsCollected", Desc: true})
	if !equalIDs(ids(desc), "2", "1", "3") {
		t.Errorf("Descending ties reordered: %v", ids(desc))
	}
}

func TestView_DescendingReverses(t *testing.T) {
	asc := View(sampleRecords(), Filter{}, productionFields, Sort{Key: "usableEggs"})
	desc := View(sampleRecords(), Filter{}, productionFields, Sort{Key: "usableEggs", Desc: true})

	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("Descending is not the reverse: asc=%v desc=%v", ids(asc), ids(desc))
		}
	}
}

func TestView_FilterEquality(t *testing.T) {
	got := View(sampleRecords(), Filter{Key: "batchNumber", Value: "Batch-002"}, productionFields, Sort{})
	if !equalIDs(ids(got), "2") {
		t.Errorf("Unexpected rows %v", ids(got))
	}
}

func TestView_FilterAllSentinel(t *testing.T) {
	// "all" must return the full, still sorted, sequence.
	got := View(sampleRecords(), Filter{Key: "batchNumber", Value: All}, productionFields, Sort{Key: "usableEggs"})
	if !equalIDs(ids(got), "2", "1", "3") {
		t.Errorf("Unexpected rows %v", ids(got))
	}
}

func TestView_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	View(records, Filter{}, productionFields, Sort{Key: "usableEggs", Desc: true})
	if !equalIDs(ids(records), "1", "2", "3") {
		t.Errorf("Input slice mutated: %v", ids(records))
	}
}

func TestView_UnknownSortKeyKeepsOrder(t *testing.T) {
	got := View(sampleRecords(), Filter{}, productionFields, Sort{Key: "nope"})
	if !equalIDs(ids(got), "1", "2", "3") {
		t.Errorf("Unexpected order %v", ids(got))
	}
}

func TestSort_Toggle(t *testing.T) {
	var s Sort

	s.Toggle("date")
	if s.Key != "date" || s.Desc {
		t.Fatalf("Expected ascending date, got %+v", s)
	}

	s.Toggle("date")
	if !s.Desc {
		t.Error("Same key must flip to descending")
	}

	s.Toggle("date")
	if s.Desc {
		t.Error("Toggling twice must return to ascending")
	}

	s.Toggle("date")
	s.Toggle("batchNumber")
	if s.Key != "batchNumber" || s.Desc {
		t.Errorf("New key must reset to ascending, got %+v", s)
	}
}

func TestCoerce_NonNumericToZero(t *testing.T) {
	if v := Coerce("12.5"); v.Num != 12.5 {
		t.Errorf("Expected 12.5, got %f", v.Num)
	}
	if v := Coerce("n/a"); v.Num != 0 {
		t.Errorf("Expected 0 for non-numeric, got %f", v.Num)
	}
	if v := Coerce(""); v.Num != 0 {
		t.Errorf("Expected 0 for empty, got %f", v.Num)
	}
}

func TestDate_UnparseableSortsFirst(t *testing.T) {
	bad := Date("soon")
	good := Date("2024-01-01")
	if !bad.Less(good) {
		t.Error("Unparseable date must sort before real dates")
	}
}
