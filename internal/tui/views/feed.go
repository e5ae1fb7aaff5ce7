package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/query"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/summary"
	"github.com/NirunaShyamal/farm-sub001/internal/tui/components"
	"github.com/NirunaShyamal/farm-sub001/internal/util"
)

// NewFeedPage creates the feed inventory page.
func NewFeedPage(collection store.Collection[models.FeedItem]) *RecordPage[models.FeedItem] {
	fields := map[string]query.Field[models.FeedItem]{
		"feedType": func(i models.FeedItem) query.Value {
			return query.Text(i.FeedType.String())
		},
		"quantityKg": func(i models.FeedItem) query.Value {
			return query.Number(i.QuantityKg)
		},
		"supplier": func(i models.FeedItem) query.Value {
			return query.Text(i.Supplier)
		},
		"purchaseDate": func(i models.FeedItem) query.Value {
			return query.Date(i.PurchaseDate)
		},
		"expiryDate": func(i models.FeedItem) query.Value {
			return query.Date(i.ExpiryDate)
		},
	}

	types := make([]string, 0, len(models.FeedTypes()))
	for _, t := range models.FeedTypes() {
		types = append(types, t.String())
	}

	return NewRecordPage(PageConfig[models.FeedItem]{
		Name:       "feed",
		Title:      "FEED INVENTORY",
		Collection: collection,
		Columns: []components.Column{
			{Title: "Type", Key: "feedType", Width: 15},
			{Title: "Qty (kg)", Key: "quantityKg", Width: 10, Align: alignRight},
			{Title: "Supplier", Key: "supplier", Width: 18},
			{Title: "Purchased", Key: "purchaseDate", Width: 12},
			{Title: "Expires", Key: "expiryDate", Width: 12},
		},
		Row: func(i models.FeedItem) []string {
			expiry := i.ExpiryDate
			if expiry == "" {
				expiry = "-"
			}
			return []string{
				i.FeedType.String(),
				fmt.Sprintf("%.1f", i.QuantityKg),
				i.Supplier,
				i.PurchaseDate,
				expiry,
			}
		},
		Fields:        fields,
		SortKeys:      []string{"feedType", "quantityKg", "supplier", "purchaseDate", "expiryDate"},
		DefaultSort:   query.Sort{Key: "purchaseDate", Desc: true},
		FilterKey:     "feedType",
		FilterOptions: types,
		Summary: func(items []models.FeedItem) string {
			s := summary.Feed(items, time.Now())
			line := labelStyle.Render("Items: ") + valueStyle.Render(strconv.Itoa(s.TotalItems)) +
				labelStyle.Render("  Stock: ") + valueStyle.Render(fmt.Sprintf("%.1f kg", s.TotalQuantityKg))
			if s.ExpiringSoon > 0 {
				line += warnStyle.Render(fmt.Sprintf("  %d expiring within 30 days", s.ExpiringSoon))
			}
			return line
		},
		Detail:  renderFeedDetail,
		NewForm: newFeedForm,
	})
}

func renderFeedDetail(i models.FeedItem, width int) string {
	lw := formLabelWidth(width)
	label := labelStyle.Width(lw)

	var b strings.Builder
	b.WriteString(titleStyle.Render("═══ FEED ITEM ═══"))
	b.WriteString("\n\n")
	b.WriteString(label.Render("Type:") + " " + valueStyle.Render(i.FeedType.String()) + "\n")
	b.WriteString(label.Render("Quantity:") + " " + valueStyle.Render(fmt.Sprintf("%.1f kg", i.QuantityKg)) + "\n")
	b.WriteString(label.Render("Supplier:") + " " + valueStyle.Render(i.Supplier) + "\n")
	b.WriteString(label.Render("Purchased:") + " " + valueStyle.Render(i.PurchaseDate) + "\n")
	if i.ExpiryDate != "" {
		b.WriteString(label.Render("Expires:") + " " + valueStyle.Render(i.ExpiryDate) + "\n")
		if i.ExpiresWithin(time.Now(), 30) {
			b.WriteString(label.Render("") + warnStyle.Render("Expiring within 30 days") + "\n")
		}
	}
	if i.Notes != "" {
		b.WriteString(label.Render("Notes:") + " " + valueStyle.Render(i.Notes) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc:Back  e:Edit"))
	return b.String()
}

type feedForm struct {
	baseForm
	mode     FormMode
	existing *models.FeedItem

	feedType *components.Select
	quantity *components.Input
	supplier *components.Input
	bought   *components.Input
	expiry   *components.Input
	notes    *components.Input
}

func newFeedForm(mode FormMode, existing *models.FeedItem, _ []models.FeedItem) RecordForm[models.FeedItem] {
	types := make([]string, 0, len(models.FeedTypes()))
	for _, t := range models.FeedTypes() {
		types = append(types, t.String())
	}

	f := &feedForm{
		mode:     mode,
		existing: existing,

		feedType: components.NewSelect("Feed Type", types),
		quantity: components.NewInput("Quantity (kg)").SetRequired(true).SetWidth(10),
		supplier: components.NewInput("Supplier").SetRequired(true).SetWidth(25),
		bought:   components.NewInput("Purchase Date").SetRequired(true).SetWidth(12).SetPlaceholder("YYYY-MM-DD"),
		expiry:   components.NewInput("Expiry Date").SetWidth(12).SetPlaceholder("YYYY-MM-DD"),
		notes:    components.NewInput("Notes").SetWidth(40),
	}

	if existing != nil {
		f.feedType.SelectValue(existing.FeedType.String())
		f.quantity.SetValue(strconv.FormatFloat(existing.QuantityKg, 'f', -1, 64))
		f.supplier.SetValue(existing.Supplier)
		f.bought.SetValue(existing.PurchaseDate)
		f.expiry.SetValue(existing.ExpiryDate)
		f.notes.SetValue(existing.Notes)
	} else {
		f.bought.SetValue(util.Today())
	}

	f.fields = []components.FormField{f.feedType, f.quantity, f.supplier, f.bought, f.expiry, f.notes}
	f.validate = f.check
	f.focusFirst()
	return f
}

func (f *feedForm) check() string {
	if !f.quantity.Validate() || !f.supplier.Validate() || !f.bought.Validate() {
		return "Please fill in all required fields"
	}
	if !util.ValidISODate(f.bought.Value()) {
		return "Purchase date must be YYYY-MM-DD"
	}
	if f.expiry.Value() != "" && !util.ValidISODate(f.expiry.Value()) {
		return "Expiry date must be YYYY-MM-DD"
	}
	if q, err := strconv.ParseFloat(f.quantity.Value(), 64); err != nil || q < 0 {
		return "Quantity must be a non-negative number"
	}
	return ""
}

func (f *feedForm) Record() (models.FeedItem, error) {
	quantity, err := strconv.ParseFloat(f.quantity.Value(), 64)
	if err != nil {
		return models.FeedItem{}, fmt.Errorf("invalid quantity: %w", err)
	}

	i := models.FeedItem{
		FeedType:     models.FeedType(f.feedType.Value()),
		QuantityKg:   quantity,
		Supplier:     f.supplier.Value(),
		PurchaseDate: f.bought.Value(),
		ExpiryDate:   f.expiry.Value(),
		Notes:        f.notes.Value(),
	}
	if f.existing != nil {
		i.ID = f.existing.ID
	}
	return i, nil
}

func (f *feedForm) Render(width int) string {
	lw := formLabelWidth(width)

	var b strings.Builder

	title := "ADD FEED ITEM"
	if f.mode == FormModeEdit {
		title = "EDIT FEED ITEM"
	}
	b.WriteString(titleStyle.Render("═══ " + title + " ═══"))
	b.WriteString("\n\n")

	b.WriteString(f.feedType.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.quantity.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.supplier.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.bought.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.expiry.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.notes.RenderWithLabelWidth(lw))
	b.WriteString("\n")

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + f.err))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Tab/Down:Next  Shift+Tab/Up:Prev  Ctrl+S:Save  Esc:Cancel"))

	return b.String()
}
