package models

import "time"

// FeedType is the kind of feed held in inventory.
type FeedType string

const (
	FeedLayerMash     FeedType = "Layer Mash"
	FeedStarterCrumb  FeedType = "Starter Crumb"
	FeedGrowerPellets FeedType = "Grower Pellets"
	FeedMaize         FeedType = "Maize"
)

func (t FeedType) String() string { return string(t) }

// FeedTypes lists the selectable feed types in display order.
func FeedTypes() []FeedType {
	return []FeedType{FeedLayerMash, FeedStarterCrumb, FeedGrowerPellets, FeedMaize}
}

// FeedItem is one feed stock line. Dates use the ISO YYYY-MM-DD form.
type FeedItem struct {
	ID           string   `json:"id"`
	FeedType     FeedType `json:"feedType" validate:"required"`
	QuantityKg   float64  `json:"quantityKg" validate:"min=0"`
	Supplier     string   `json:"supplier" validate:"required"`
	PurchaseDate string   `json:"purchaseDate" validate:"required"`
	ExpiryDate   string   `json:"expiryDate,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// RecordID implements store.Record.
func (f FeedItem) RecordID() string { return f.ID }

// ExpiresWithin reports whether the item expires in the next n days.
// Items without an expiry date, or with an unparseable one, never
// count as expiring.
func (f FeedItem) ExpiresWithin(now time.Time, days int) bool {
	if f.ExpiryDate == "" {
		return false
	}
	exp, err := time.Parse("2006-01-02", f.ExpiryDate)
	if err != nil {
		return false
	}
	return !exp.After(now.AddDate(0, 0, days))
}
