package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/query"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/summary"
	"github.com/NirunaShyamal/farm-sub001/internal/tui/components"
	"github.com/NirunaShyamal/farm-sub001/internal/util"
)

// NewProductionPage creates the egg production page.
func NewProductionPage(collection store.Collection[models.ProductionRecord]) *RecordPage[models.ProductionRecord] {
	fields := map[string]query.Field[models.ProductionRecord]{
		"date": func(r models.ProductionRecord) query.Value {
			return query.Date(r.Date)
		},
		"batchNumber": func(r models.ProductionRecord) query.Value {
			return query.Text(r.BatchNumber)
		},
		"birds": func(r models.ProductionRecord) query.Value {
			return query.Int(r.Birds)
		},
		"eggsCollected": func(r models.ProductionRecord) query.Value {
			return query.Int(r.EggsCollected)
		},
		"damagedEggs": func(r models.ProductionRecord) query.Value {
			return query.Int(r.DamagedEggs)
		},
		"usableEggs": func(r models.ProductionRecord) query.Value {
			return query.Int(r.UsableEggs())
		},
	}

	return NewRecordPage(PageConfig[models.ProductionRecord]{
		Name:       "production",
		Title:      "EGG PRODUCTION",
		Collection: collection,
		Columns: []components.Column{
			{Title: "Date", Key: "date", Width: 12},
			{Title: "Batch", Key: "batchNumber", Width: 11},
			{Title: "Birds", Key: "birds", Width: 7, Align: alignRight},
			{Title: "Collected", Key: "eggsCollected", Width: 10, Align: alignRight},
			{Title: "Damaged", Key: "damagedEggs", Width: 9, Align: alignRight},
			{Title: "Usable", Key: "usableEggs", Width: 8, Align: alignRight},
			{Title: "Rate %", Width: 8, Align: alignRight},
		},
		Row: func(r models.ProductionRecord) []string {
			return []string{
				r.Date,
				r.BatchNumber,
				strconv.Itoa(r.Birds),
				strconv.Itoa(r.EggsCollected),
				strconv.Itoa(r.DamagedEggs),
				strconv.Itoa(r.UsableEggs()),
				fmt.Sprintf("%.1f", r.ProductionRate()),
			}
		},
		Fields:      fields,
		SortKeys:    []string{"date", "batchNumber", "birds", "eggsCollected", "damagedEggs", "usableEggs"},
		DefaultSort: query.Sort{Key: "date", Desc: true},
		FilterKey:   "batchNumber",
		FilterValues: func(records []models.ProductionRecord) []string {
			seen := map[string]bool{}
			var batches []string
			for _, r := range records {
				if !seen[r.BatchNumber] {
					seen[r.BatchNumber] = true
					batches = append(batches, r.BatchNumber)
				}
			}
			return batches
		},
		Summary: func(records []models.ProductionRecord) string {
			s := summary.Production(records, nil, false)
			return labelStyle.Render("Total: ") + valueStyle.Render(strconv.Itoa(s.TotalEggs)) +
				labelStyle.Render("  Damaged: ") + valueStyle.Render(strconv.Itoa(s.TotalDamagedEggs)) +
				labelStyle.Render("  Avg/record: ") + valueStyle.Render(fmt.Sprintf("%.1f", s.AverageProduction))
		},
		Detail:  renderProductionDetail,
		NewForm: newProductionForm,
	})
}

func renderProductionDetail(r models.ProductionRecord, width int) string {
	lw := formLabelWidth(width)
	label := labelStyle.Width(lw)

	var b strings.Builder
	b.WriteString(titleStyle.Render("═══ PRODUCTION RECORD ═══"))
	b.WriteString("\n\n")
	b.WriteString(label.Render("Date:") + " " + valueStyle.Render(r.Date) + "\n")
	b.WriteString(label.Render("Batch:") + " " + valueStyle.Render(r.BatchNumber) + "\n")
	b.WriteString(label.Render("Birds:") + " " + valueStyle.Render(strconv.Itoa(r.Birds)) + "\n")
	b.WriteString(label.Render("Collected:") + " " + valueStyle.Render(strconv.Itoa(r.EggsCollected)) + "\n")
	b.WriteString(label.Render("Damaged:") + " " + valueStyle.Render(strconv.Itoa(r.DamagedEggs)) + "\n")
	b.WriteString(label.Render("Usable:") + " " + valueStyle.Render(strconv.Itoa(r.UsableEggs())) + "\n")
	b.WriteString(label.Render("Rate:") + " " + valueStyle.Render(fmt.Sprintf("%.1f%%", r.ProductionRate())) + "\n")
	if r.Notes != "" {
		b.WriteString(label.Render("Notes:") + " " + valueStyle.Render(r.Notes) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc:Back  e:Edit"))
	return b.String()
}

// productionForm adds or edits a production record. The batch number is
// generated for new records and read-only in both modes.
type productionForm struct {
	baseForm
	mode     FormMode
	existing *models.ProductionRecord

	date      *components.Input
	batch     *components.Input
	birds     *components.Input
	collected *components.Input
	damaged   *components.Input
	notes     *components.Input
}

func newProductionForm(mode FormMode, existing *models.ProductionRecord, all []models.ProductionRecord) RecordForm[models.ProductionRecord] {
	f := &productionForm{
		mode:     mode,
		existing: existing,

		date:      components.NewInput("Date").SetRequired(true).SetWidth(12).SetPlaceholder("YYYY-MM-DD"),
		batch:     components.NewInput("Batch").SetWidth(12).SetReadOnly(true),
		birds:     components.NewInput("Birds").SetRequired(true).SetWidth(8),
		collected: components.NewInput("Eggs Collected").SetRequired(true).SetWidth(8),
		damaged:   components.NewInput("Damaged Eggs").SetRequired(true).SetWidth(8).SetValue("0"),
		notes:     components.NewInput("Notes").SetWidth(40),
	}

	if existing != nil {
		f.date.SetValue(util.ToInputDate(existing.Date))
		f.batch.SetValue(existing.BatchNumber)
		f.birds.SetValue(strconv.Itoa(existing.Birds))
		f.collected.SetValue(strconv.Itoa(existing.EggsCollected))
		f.damaged.SetValue(strconv.Itoa(existing.DamagedEggs))
		f.notes.SetValue(existing.Notes)
	} else {
		f.date.SetValue(util.Today())
		f.batch.SetValue(models.NextBatchNumber(all))
	}

	f.fields = []components.FormField{f.date, f.batch, f.birds, f.collected, f.damaged, f.notes}
	f.validate = f.check
	f.focusFirst()
	return f
}

func (f *productionForm) check() string {
	if !f.date.Validate() || !f.birds.Validate() || !f.collected.Validate() || !f.damaged.Validate() {
		return "Please fill in all required fields"
	}
	if !util.ValidISODate(f.date.Value()) {
		return "Date must be YYYY-MM-DD"
	}
	for _, in := range []*components.Input{f.birds, f.collected, f.damaged} {
		n, err := strconv.Atoi(in.Value())
		if err != nil || n < 0 {
			return "Counts must be non-negative whole numbers"
		}
	}
	return ""
}

// Record builds the record, converting the date back to display form.
func (f *productionForm) Record() (models.ProductionRecord, error) {
	birds, err := strconv.Atoi(f.birds.Value())
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("invalid bird count: %w", err)
	}
	collected, err := strconv.Atoi(f.collected.Value())
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("invalid egg count: %w", err)
	}
	damaged, err := strconv.Atoi(f.damaged.Value())
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("invalid damaged count: %w", err)
	}

	r := models.ProductionRecord{
		Date:          util.ToDisplayDate(f.date.Value()),
		BatchNumber:   f.batch.Value(),
		Birds:         birds,
		EggsCollected: collected,
		DamagedEggs:   damaged,
		Notes:         f.notes.Value(),
	}
	if f.existing != nil {
		r.ID = f.existing.ID
	}
	return r, nil
}

func (f *productionForm) Render(width int) string {
	lw := formLabelWidth(width)

	var b strings.Builder

	title := "ADD PRODUCTION RECORD"
	if f.mode == FormModeEdit {
		title = "EDIT PRODUCTION RECORD"
	}
	b.WriteString(titleStyle.Render("═══ " + title + " ═══"))
	b.WriteString("\n\n")

	b.WriteString(f.date.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.batch.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.birds.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.collected.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.damaged.RenderWithLabelWidth(lw))
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
