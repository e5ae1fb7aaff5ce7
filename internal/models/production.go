// Package models defines the record types for each farm collection.
// Every field the backend stores is explicit here; anything derived
// (usable eggs, rates, stock figures) is a method or lives in the
// summary package, never persisted.
package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// BatchPrefix is the fixed prefix for production batch numbers.
const BatchPrefix = "Batch-"

var batchNumberRe = regexp.MustCompile(`^Batch-(\d+)$`)

// ProductionRecord is one day's egg production for a batch of birds.
// Date is stored in DD/MM/YYYY display format, as the backend does.
type ProductionRecord struct {
	ID                string  `json:"id"`
	Date              string  `json:"date" validate:"required"`
	BatchNumber       string  `json:"batchNumber" validate:"required"`
	Birds             int     `json:"birds" validate:"min=0"`
	EggsCollected     int     `json:"eggsCollected" validate:"min=0"`
	DamagedEggs       int     `json:"damagedEggs" validate:"min=0"`
	Notes             string  `json:"notes,omitempty"`
	EggProductionRate float64 `json:"eggProductionRate,omitempty"`
}

// RecordID implements store.Record.
func (r ProductionRecord) RecordID() string { return r.ID }

// UsableEggs is collected minus damaged. Deliberately not clamped:
// damaged > collected shows up as a negative figure rather than being
// hidden.
func (r ProductionRecord) UsableEggs() int {
	return r.EggsCollected - r.DamagedEggs
}

// ProductionRate returns the backend-supplied rate when present, else
// eggs collected per bird as a percentage. Zero birds yields 0.
func (r ProductionRecord) ProductionRate() float64 {
	if r.EggProductionRate != 0 {
		return r.EggProductionRate
	}
	if r.Birds == 0 {
		return 0
	}
	return float64(r.EggsCollected) / float64(r.Birds) * 100
}

// BatchSequence extracts the numeric suffix of a batch number.
// Returns false for strings that do not match Batch-NNN.
func BatchSequence(batch string) (int, bool) {
	m := batchNumberRe.FindStringSubmatch(batch)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextBatchNumber computes the batch number for a new record:
// max existing numeric suffix + 1, or 1 for an empty collection.
// Non-conforming batch strings are ignored.
func NextBatchNumber(records []ProductionRecord) string {
	max := 0
	for _, r := range records {
		if n, ok := BatchSequence(r.BatchNumber); ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", BatchPrefix, max+1)
}
