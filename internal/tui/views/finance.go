package views

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/query"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/summary"
	"github.com/NirunaShyamal/farm-sub001/internal/tui/components"
	"github.com/NirunaShyamal/farm-sub001/internal/util"
)

// NewFinancePage creates the financial records page. currency is the
// display symbol for money columns.
func NewFinancePage(collection store.Collection[models.FinancialRecord], currency string) *RecordPage[models.FinancialRecord] {
	fields := map[string]query.Field[models.FinancialRecord]{
		"date": func(r models.FinancialRecord) query.Value {
			return query.Date(r.Date)
		},
		"description": func(r models.FinancialRecord) query.Value {
			return query.Text(r.Description)
		},
		"category": func(r models.FinancialRecord) query.Value {
			return query.Text(r.Category.String())
		},
		"amount": func(r models.FinancialRecord) query.Value {
			return query.Number(r.Amount.InexactFloat64())
		},
		"paymentMethod": func(r models.FinancialRecord) query.Value {
			return query.Text(r.PaymentMethod.String())
		},
	}

	categories := make([]string, 0, len(models.RecordCategories()))
	for _, c := range models.RecordCategories() {
		categories = append(categories, c.String())
	}

	return NewRecordPage(PageConfig[models.FinancialRecord]{
		Name:       "finance",
		Title:      "FINANCIAL RECORDS",
		Collection: collection,
		Columns: []components.Column{
			{Title: "Date", Key: "date", Width: 12},
			{Title: "Description", Key: "description", Width: 24},
			{Title: "Category", Key: "category", Width: 9},
			{Title: "Amount", Key: "amount", Width: 13, Align: alignRight},
			{Title: "Method", Key: "paymentMethod", Width: 14},
		},
		Row: func(r models.FinancialRecord) []string {
			return []string{
				r.Date,
				r.Description,
				r.Category.String(),
				currency + r.Amount.StringFixed(2),
				r.PaymentMethod.String(),
			}
		},
		Fields:        fields,
		SortKeys:      []string{"date", "description", "category", "amount", "paymentMethod"},
		DefaultSort:   query.Sort{Key: "date", Desc: true},
		FilterKey:     "category",
		FilterOptions: categories,
		Summary: func(records []models.FinancialRecord) string {
			s := summary.Finance(records)
			net := valueStyle
			if s.NetProfit.IsNegative() {
				net = errStyle
			}
			return labelStyle.Render("Income: ") + valueStyle.Render(currency+s.TotalIncome.StringFixed(2)) +
				labelStyle.Render("  Expenses: ") + valueStyle.Render(currency+s.TotalExpenses.StringFixed(2)) +
				labelStyle.Render("  Net: ") + net.Render(currency+s.NetProfit.StringFixed(2))
		},
		Detail: func(r models.FinancialRecord, width int) string {
			return renderFinanceDetail(r, currency, width)
		},
		NewForm: newFinanceForm,
	})
}

func renderFinanceDetail(r models.FinancialRecord, currency string, width int) string {
	lw := formLabelWidth(width)
	label := labelStyle.Width(lw)

	var b strings.Builder
	b.WriteString(titleStyle.Render("═══ FINANCIAL RECORD ═══"))
	b.WriteString("\n\n")
	b.WriteString(label.Render("Date:") + " " + valueStyle.Render(r.Date) + "\n")
	b.WriteString(label.Render("Description:") + " " + valueStyle.Render(r.Description) + "\n")
	b.WriteString(label.Render("Category:") + " " + valueStyle.Render(r.Category.String()) + "\n")
	b.WriteString(label.Render("Amount:") + " " + valueStyle.Render(currency+r.Amount.StringFixed(2)) + "\n")
	b.WriteString(label.Render("Method:") + " " + valueStyle.Render(r.PaymentMethod.String()) + "\n")
	if r.Reference != "" {
		b.WriteString(label.Render("Reference:") + " " + valueStyle.Render(r.Reference) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc:Back  e:Edit"))
	return b.String()
}

type financeForm struct {
	baseForm
	mode     FormMode
	existing *models.FinancialRecord

	date        *components.Input
	description *components.Input
	category    *components.Select
	amount      *components.Input
	method      *components.Select
	reference   *components.Input
}

func newFinanceForm(mode FormMode, existing *models.FinancialRecord, _ []models.FinancialRecord) RecordForm[models.FinancialRecord] {
	categories := make([]string, 0, len(models.RecordCategories()))
	for _, c := range models.RecordCategories() {
		categories = append(categories, c.String())
	}
	methods := make([]string, 0, len(models.PaymentMethods()))
	for _, m := range models.PaymentMethods() {
		methods = append(methods, m.String())
	}

	f := &financeForm{
		mode:     mode,
		existing: existing,

		date:        components.NewInput("Date").SetRequired(true).SetWidth(12).SetPlaceholder("YYYY-MM-DD"),
		description: components.NewInput("Description").SetRequired(true).SetWidth(40),
		category:    components.NewSelect("Category", categories),
		amount:      components.NewInput("Amount").SetRequired(true).SetWidth(12),
		method:      components.NewSelect("Payment Method", methods),
		reference:   components.NewInput("Reference").SetWidth(20),
	}

	if existing != nil {
		f.date.SetValue(existing.Date)
		f.description.SetValue(existing.Description)
		f.category.SelectValue(existing.Category.String())
		f.amount.SetValue(existing.Amount.String())
		f.method.SelectValue(existing.PaymentMethod.String())
		f.reference.SetValue(existing.Reference)
	} else {
		f.date.SetValue(util.Today())
	}

	f.fields = []components.FormField{f.date, f.description, f.category, f.amount, f.method, f.reference}
	f.validate = f.check
	f.focusFirst()
	return f
}

func (f *financeForm) check() string {
	if !f.date.Validate() || !f.description.Validate() || !f.amount.Validate() {
		return "Please fill in all required fields"
	}
	if !util.ValidISODate(f.date.Value()) {
		return "Date must be YYYY-MM-DD"
	}
	if d, err := decimal.NewFromString(f.amount.Value()); err != nil || d.IsNegative() {
		return "Amount must be a non-negative figure"
	}
	return ""
}

func (f *financeForm) Record() (models.FinancialRecord, error) {
	amount, err := decimal.NewFromString(f.amount.Value())
	if err != nil {
		return models.FinancialRecord{}, fmt.Errorf("invalid amount: %w", err)
	}

	r := models.FinancialRecord{
		Date:          f.date.Value(),
		Description:   f.description.Value(),
		Category:      models.RecordCategory(f.category.Value()),
		Amount:        amount,
		PaymentMethod: models.PaymentMethod(f.method.Value()),
		Reference:     f.reference.Value(),
	}
	if f.existing != nil {
		r.ID = f.existing.ID
	}
	return r, nil
}

func (f *financeForm) Render(width int) string {
	lw := formLabelWidth(width)

	var b strings.Builder

	title := "ADD FINANCIAL RECORD"
	if f.mode == FormModeEdit {
		title = "EDIT FINANCIAL RECORD"
	}
	b.WriteString(titleStyle.Render("═══ " + title + " ═══"))
	b.WriteString("\n\n")

	b.WriteString(f.date.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.description.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.category.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.amount.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.method.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.reference.RenderWithLabelWidth(lw))
	b.WriteString("\n")

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + f.err))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Tab/Down:Next  Shift+Tab/Up:Prev  Ctrl+S:Save  Esc:Cancel"))

	return b.String()
}
