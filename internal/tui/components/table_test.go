package components

import (
	"strings"
	"testing"
)

func testColumns() []Column {
	return []Column{
		{Title: "Date", Key: "date", Width: 12},
		{Title: "Batch", Key: "batchNumber", Width: 10},
		{Title: "Notes", Width: 20},
	}
}

func TestNewTable(t *testing.T) {
	table := NewTable(testColumns())
	if table == nil {
		t.Fatal("Expected non-nil table")
	}
	if !table.Empty() || table.RowCount() != 0 {
		t.Error("New table should be empty")
	}
}

func TestTable_SetRows(t *testing.T) {
	table := NewTable(testColumns())
	table.SetRows([][]string{
		{"01/01/2025", "Batch-001", ""},
		{"02/01/2025", "Batch-002", "wet weather"},
	})

	if table.RowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.RowCount())
	}
}

func TestTable_SetRowsClampsSelection(t *testing.T) {
	table := NewTable(testColumns())
	table.SetRows([][]string{{"a"}, {"b"}, {"c"}})
	table.GoToBottom()

	// Shrinking the data must pull the selection back in range.
	table.SetRows([][]string{{"a"}})
	if table.Selected() != 0 {
		t.Errorf("Expected selection clamped to 0, got %d", table.Selected())
	}
}

func TestTable_Navigation(t *testing.T) {
	table := NewTable(testColumns())
	table.SetRows([][]string{{"1"}, {"2"}, {"3"}})

	table.MoveDown()
	if table.Selected() != 1 {
		t.Errorf("Expected 1, got %d", table.Selected())
	}

	table.MoveUp()
	table.MoveUp() // already at top
	if table.Selected() != 0 {
		t.Errorf("Expected 0, got %d", table.Selected())
	}

	table.GoToBottom()
	if table.Selected() != 2 {
		t.Errorf("Expected 2, got %d", table.Selected())
	}
	table.MoveDown() // already at bottom
	if table.Selected() != 2 {
		t.Errorf("Expected 2, got %d", table.Selected())
	}

	table.GoToTop()
	if table.Selected() != 0 {
		t.Errorf("Expected 0, got %d", table.Selected())
	}
}

func TestTable_SortIndicator(t *testing.T) {
	table := NewTable(testColumns())
	table.SetRows([][]string{{"01/01/2025", "Batch-001", ""}})

	table.SetSort("date", false)
	if !strings.Contains(table.Render(), "Date ^") {
		t.Error("Expected ascending indicator on Date column")
	}

	table.SetSort("date", true)
	if !strings.Contains(table.Render(), "Date v") {
		t.Error("Expected descending indicator on Date column")
	}

	table.SetSort("batchNumber", false)
	out := table.Render()
	if strings.Contains(out, "Date ^") || strings.Contains(out, "Date v") {
		t.Error("Indicator must move off the Date column")
	}
	if !strings.Contains(out, "Batch ^") {
		t.Error("Expected indicator on Batch column")
	}
}

func TestTable_RenderTruncatesLongCells(t *testing.T) {
	table := NewTable([]Column{{Title: "Notes", Width: 8}})
	table.SetRows([][]string{{"a very long note that cannot fit"}})

	if !strings.Contains(table.Render(), "…") {
		t.Error("Expected truncation ellipsis")
	}
}
