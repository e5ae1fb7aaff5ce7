package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/query"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/summary"
	"github.com/NirunaShyamal/farm-sub001/internal/tui/components"
	"github.com/NirunaShyamal/farm-sub001/internal/util"
)

// NewSalesPage creates the sales orders page. currency is the display
// symbol for money columns.
func NewSalesPage(collection store.Collection[models.SalesOrder], currency string) *RecordPage[models.SalesOrder] {
	fields := map[string]query.Field[models.SalesOrder]{
		"date": func(o models.SalesOrder) query.Value {
			return query.Date(o.Date)
		},
		"customer": func(o models.SalesOrder) query.Value {
			return query.Text(o.Customer)
		},
		"product": func(o models.SalesOrder) query.Value {
			return query.Text(o.Product.String())
		},
		"quantity": func(o models.SalesOrder) query.Value {
			return query.Int(o.Quantity)
		},
		"total": func(o models.SalesOrder) query.Value {
			return query.Number(o.Total().InexactFloat64())
		},
		"status": func(o models.SalesOrder) query.Value {
			return query.Text(o.Status.String())
		},
	}

	statuses := make([]string, 0, len(models.OrderStatuses()))
	for _, s := range models.OrderStatuses() {
		statuses = append(statuses, s.String())
	}

	return NewRecordPage(PageConfig[models.SalesOrder]{
		Name:       "sales",
		Title:      "SALES ORDERS",
		Collection: collection,
		Columns: []components.Column{
			{Title: "Date", Key: "date", Width: 12},
			{Title: "Customer", Key: "customer", Width: 18},
			{Title: "Product", Key: "product", Width: 16},
			{Title: "Qty", Key: "quantity", Width: 6, Align: alignRight},
			{Title: "Total", Key: "total", Width: 12, Align: alignRight},
			{Title: "Status", Key: "status", Width: 11},
		},
		Row: func(o models.SalesOrder) []string {
			return []string{
				o.Date,
				o.Customer,
				o.Product.String(),
				strconv.Itoa(o.Quantity),
				currency + o.Total().StringFixed(2),
				o.Status.String(),
			}
		},
		Fields:        fields,
		SortKeys:      []string{"date", "customer", "product", "quantity", "total", "status"},
		DefaultSort:   query.Sort{Key: "date", Desc: true},
		FilterKey:     "status",
		FilterOptions: statuses,
		Summary: func(orders []models.SalesOrder) string {
			s := summary.Sales(orders)
			return labelStyle.Render("Orders: ") + valueStyle.Render(strconv.Itoa(s.TotalOrders)) +
				labelStyle.Render("  Eggs sold: ") + valueStyle.Render(strconv.Itoa(s.TotalQuantity)) +
				labelStyle.Render("  Revenue: ") + valueStyle.Render(currency+s.TotalRevenue.StringFixed(2)) +
				labelStyle.Render("  Pending: ") + valueStyle.Render(strconv.Itoa(s.PendingOrders))
		},
		Detail: func(o models.SalesOrder, width int) string {
			return renderSalesDetail(o, currency, width)
		},
		NewForm: newSalesForm,
	})
}

func renderSalesDetail(o models.SalesOrder, currency string, width int) string {
	lw := formLabelWidth(width)
	label := labelStyle.Width(lw)

	var b strings.Builder
	b.WriteString(titleStyle.Render("═══ SALES ORDER ═══"))
	b.WriteString("\n\n")
	b.WriteString(label.Render("Date:") + " " + valueStyle.Render(o.Date) + "\n")
	b.WriteString(label.Render("Customer:") + " " + valueStyle.Render(o.Customer) + "\n")
	b.WriteString(label.Render("Product:") + " " + valueStyle.Render(o.Product.String()) + "\n")
	b.WriteString(label.Render("Quantity:") + " " + valueStyle.Render(strconv.Itoa(o.Quantity)) + "\n")
	b.WriteString(label.Render("Unit Price:") + " " + valueStyle.Render(currency+o.Price.StringFixed(2)) + "\n")
	b.WriteString(label.Render("Total:") + " " + valueStyle.Render(currency+o.Total().StringFixed(2)) + "\n")
	b.WriteString(label.Render("Status:") + " " + valueStyle.Render(o.Status.String()) + "\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc:Back  e:Edit"))
	return b.String()
}

type salesForm struct {
	baseForm
	mode     FormMode
	existing *models.SalesOrder

	date     *components.Input
	customer *components.Input
	product  *components.Select
	quantity *components.Input
	price    *components.Input
	status   *components.Select
}

func newSalesForm(mode FormMode, existing *models.SalesOrder, _ []models.SalesOrder) RecordForm[models.SalesOrder] {
	products := make([]string, 0, len(models.Products()))
	for _, p := range models.Products() {
		products = append(products, p.String())
	}
	statuses := make([]string, 0, len(models.OrderStatuses()))
	for _, s := range models.OrderStatuses() {
		statuses = append(statuses, s.String())
	}

	f := &salesForm{
		mode:     mode,
		existing: existing,

		date:     components.NewInput("Date").SetRequired(true).SetWidth(12).SetPlaceholder("YYYY-MM-DD"),
		customer: components.NewInput("Customer").SetRequired(true).SetWidth(25),
		product:  components.NewSelect("Product", products),
		quantity: components.NewInput("Quantity").SetRequired(true).SetWidth(8),
		price:    components.NewInput("Unit Price").SetRequired(true).SetWidth(10),
		status:   components.NewSelect("Status", statuses),
	}

	if existing != nil {
		f.date.SetValue(existing.Date)
		f.customer.SetValue(existing.Customer)
		f.product.SelectValue(existing.Product.String())
		f.quantity.SetValue(strconv.Itoa(existing.Quantity))
		f.price.SetValue(existing.Price.String())
		f.status.SelectValue(existing.Status.String())
	} else {
		f.date.SetValue(util.Today())
	}

	f.fields = []components.FormField{f.date, f.customer, f.product, f.quantity, f.price, f.status}
	f.validate = f.check
	f.focusFirst()
	return f
}

func (f *salesForm) check() string {
	if !f.date.Validate() || !f.customer.Validate() || !f.quantity.Validate() || !f.price.Validate() {
		return "Please fill in all required fields"
	}
	if !util.ValidISODate(f.date.Value()) {
		return "Date must be YYYY-MM-DD"
	}
	if n, err := strconv.Atoi(f.quantity.Value()); err != nil || n < 0 {
		return "Quantity must be a non-negative whole number"
	}
	if d, err := decimal.NewFromString(f.price.Value()); err != nil || d.IsNegative() {
		return "Unit price must be a non-negative amount"
	}
	return ""
}

func (f *salesForm) Record() (models.SalesOrder, error) {
	quantity, err := strconv.Atoi(f.quantity.Value())
	if err != nil {
		return models.SalesOrder{}, fmt.Errorf("invalid quantity: %w", err)
	}
	price, err := decimal.NewFromString(f.price.Value())
	if err != nil {
		return models.SalesOrder{}, fmt.Errorf("invalid price: %w", err)
	}

	o := models.SalesOrder{
		Date:     f.date.Value(),
		Customer: f.customer.Value(),
		Product:  models.Product(f.product.Value()),
		Quantity: quantity,
		Price:    price,
		Status:   models.OrderStatus(f.status.Value()),
	}
	if f.existing != nil {
		o.ID = f.existing.ID
	}
	return o, nil
}

func (f *salesForm) Render(width int) string {
	lw := formLabelWidth(width)

	var b strings.Builder

	title := "ADD SALES ORDER"
	if f.mode == FormModeEdit {
		title = "EDIT SALES ORDER"
	}
	b.WriteString(titleStyle.Render("═══ " + title + " ═══"))
	b.WriteString("\n\n")

	b.WriteString(f.date.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.customer.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.product.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.quantity.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.price.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.status.RenderWithLabelWidth(lw))
	b.WriteString("\n")

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + f.err))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Tab/Down:Next  Shift+Tab/Up:Prev  Ctrl+S:Save  Esc:Cancel"))

	return b.String()
}
