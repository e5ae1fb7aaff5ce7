package views

import (
	"context"
	"strings"

	"github.com/NirunaShyamal/farm-sub001/internal/query"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/tui/components"
)

type pageMode int

const (
	modeList pageMode = iota
	modeDetail
	modeForm
	modeConfirm
)

// RecordForm is the typed form surface a record page drives.
type RecordForm[T any] interface {
	HandleKey(key string)
	IsSubmitted() bool
	IsCancelled() bool
	SetError(msg string)
	ClearSubmitted()
	// Record builds the record from the current field values.
	Record() (T, error)
	Render(width int) string
}

// PageConfig wires one record collection into a list page.
type PageConfig[T store.Record] struct {
	Name       string
	Title      string
	Collection store.Collection[T]

	Columns []components.Column
	Row     func(T) []string

	// Fields are the sortable/filterable accessors, keyed by column key.
	Fields      map[string]query.Field[T]
	SortKeys    []string
	DefaultSort query.Sort

	// FilterKey enables the filter cycle; empty disables it. Options
	// come from FilterValues when set, else the static FilterOptions.
	FilterKey     string
	FilterOptions []string
	FilterValues  func(records []T) []string

	// Detail renders the read-only record view; nil disables it.
	Detail func(record T, width int) string
	// Summary renders the metrics line above the table; may be nil.
	Summary func(records []T) string

	NewForm func(mode FormMode, existing *T, all []T) RecordForm[T]

	// Help overrides the default list key hints.
	Help string
}

// RecordPage is a list page with add/edit/delete forms over one
// record collection. All pages in the application share this shape.
type RecordPage[T store.Record] struct {
	cfg       PageConfig[T]
	table     *components.Table
	sort      query.Sort
	filterIdx int
	visible   []T

	mode      pageMode
	form      RecordForm[T]
	editingID string
	pending   *T

	loading bool
	loadErr error
}

// NewRecordPage creates a page for the given collection wiring.
func NewRecordPage[T store.Record](cfg PageConfig[T]) *RecordPage[T] {
	table := components.NewTable(cfg.Columns)
	table.SetVisibleRows(18)
	table.Focus(true)

	return &RecordPage[T]{
		cfg:   cfg,
		table: table,
		sort:  cfg.DefaultSort,
	}
}

// Name returns the module identifier.
func (p *RecordPage[T]) Name() string { return p.cfg.Name }

// Capturing reports whether the form owns the keyboard.
func (p *RecordPage[T]) Capturing() bool { return p.mode == modeForm }

// Load fetches the collection and rebuilds the visible rows.
func (p *RecordPage[T]) Load(ctx context.Context) error {
	p.loading = true
	p.loadErr = nil

	err := p.cfg.Collection.Load(ctx)
	p.loading = false
	if err != nil {
		p.loadErr = err
		return err
	}

	p.Refresh()
	return nil
}

// Refresh reapplies the filter and sort to the collection contents.
func (p *RecordPage[T]) Refresh() {
	all := p.cfg.Collection.All()
	p.visible = query.View(all, p.filterSpec(), p.cfg.Fields, p.sort)

	rows := make([][]string, len(p.visible))
	for i, r := range p.visible {
		rows[i] = p.cfg.Row(r)
	}
	p.table.SetRows(rows)
	p.table.SetSort(p.sort.Key, p.sort.Desc)
}

func (p *RecordPage[T]) filterOptions() []string {
	if p.cfg.FilterValues != nil {
		return p.cfg.FilterValues(p.cfg.Collection.All())
	}
	return p.cfg.FilterOptions
}

func (p *RecordPage[T]) filterSpec() query.Filter {
	opts := p.filterOptions()
	if p.filterIdx > len(opts) {
		p.filterIdx = 0
	}
	if p.cfg.FilterKey == "" || p.filterIdx == 0 {
		return query.Filter{Key: p.cfg.FilterKey, Value: query.All}
	}
	return query.Filter{Key: p.cfg.FilterKey, Value: opts[p.filterIdx-1]}
}

// FilterValue returns the active filter value, or the all sentinel.
func (p *RecordPage[T]) FilterValue() string {
	return p.filterSpec().Value
}

// Visible returns the records currently shown, in display order.
func (p *RecordPage[T]) Visible() []T { return p.visible }

// Selected returns the record under the cursor.
func (p *RecordPage[T]) Selected() (T, bool) {
	var zero T
	idx := p.table.Selected()
	if idx < 0 || idx >= len(p.visible) {
		return zero, false
	}
	return p.visible[idx], true
}

// HandleKey processes a key press for the current mode.
func (p *RecordPage[T]) HandleKey(key string) *Op {
	switch p.mode {
	case modeForm:
		return p.handleFormKey(key)
	case modeConfirm:
		return p.handleConfirmKey(key)
	case modeDetail:
		p.handleDetailKey(key)
		return nil
	default:
		return p.handleListKey(key)
	}
}

func (p *RecordPage[T]) handleListKey(key string) *Op {
	switch key {
	case "up", "k":
		p.table.MoveUp()
	case "down", "j":
		p.table.MoveDown()
	case "home", "g":
		p.table.GoToTop()
	case "end", "G":
		p.table.GoToBottom()
	case "enter":
		if _, ok := p.Selected(); ok && p.cfg.Detail != nil {
			p.mode = modeDetail
		}
	case "a":
		p.openForm(FormModeAdd, nil)
	case "e":
		if rec, ok := p.Selected(); ok {
			p.openForm(FormModeEdit, &rec)
		}
	case "d":
		if rec, ok := p.Selected(); ok {
			p.pending = &rec
			p.mode = modeConfirm
		}
	case "f":
		if p.cfg.FilterKey != "" {
			p.filterIdx = (p.filterIdx + 1) % (len(p.filterOptions()) + 1)
			p.Refresh()
		}
	case "r":
		return &Op{Kind: OpLoad, Do: p.Load}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(p.cfg.SortKeys) {
				p.sort.Toggle(p.cfg.SortKeys[idx])
				p.Refresh()
			}
		}
	}
	return nil
}

func (p *RecordPage[T]) handleDetailKey(key string) {
	switch key {
	case "esc", "backspace", "enter":
		p.mode = modeList
	case "e":
		if rec, ok := p.Selected(); ok {
			p.openForm(FormModeEdit, &rec)
		}
	}
}

func (p *RecordPage[T]) handleConfirmKey(key string) *Op {
	switch key {
	case "y", "Y":
		if p.pending == nil {
			p.mode = modeList
			return nil
		}
		id := (*p.pending).RecordID()
		p.pending = nil
		p.mode = modeList
		return &Op{Kind: OpDelete, Do: func(ctx context.Context) error {
			if err := p.cfg.Collection.Remove(ctx, id); err != nil {
				return err
			}
			p.Refresh()
			return nil
		}}
	case "n", "N", "esc":
		p.pending = nil
		p.mode = modeList
	}
	return nil
}

func (p *RecordPage[T]) openForm(mode FormMode, existing *T) {
	p.form = p.cfg.NewForm(mode, existing, p.cfg.Collection.All())
	p.editingID = ""
	if existing != nil {
		p.editingID = (*existing).RecordID()
	}
	p.mode = modeForm
}

func (p *RecordPage[T]) handleFormKey(key string) *Op {
	p.form.HandleKey(key)

	if p.form.IsCancelled() {
		p.closeForm()
		return nil
	}
	if !p.form.IsSubmitted() {
		return nil
	}

	record, err := p.form.Record()
	if err != nil {
		p.form.SetError(err.Error())
		p.form.ClearSubmitted()
		return nil
	}

	editingID := p.editingID
	return &Op{Kind: OpSave, Do: func(ctx context.Context) error {
		var opErr error
		if editingID == "" {
			opErr = p.cfg.Collection.Create(ctx, record)
		} else {
			opErr = p.cfg.Collection.Update(ctx, editingID, record)
		}
		if opErr != nil {
			// Rejected saves keep the form open with the message.
			p.form.SetError(opErr.Error())
			p.form.ClearSubmitted()
			return opErr
		}
		p.closeForm()
		p.Refresh()
		return nil
	}}
}

func (p *RecordPage[T]) closeForm() {
	p.form = nil
	p.editingID = ""
	p.mode = modeList
}

// Render draws the page for the current mode.
func (p *RecordPage[T]) Render(width, height int) string {
	switch p.mode {
	case modeForm:
		return p.form.Render(width)
	case modeDetail:
		if rec, ok := p.Selected(); ok {
			return p.cfg.Detail(rec, width)
		}
		p.mode = modeList
	case modeConfirm:
		return p.renderConfirm()
	}
	return p.renderList(width)
}

func (p *RecordPage[T]) renderList(width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ " + p.cfg.Title + " ═══"))
	b.WriteString("\n\n")

	if p.cfg.Summary != nil {
		b.WriteString(p.cfg.Summary(p.cfg.Collection.All()))
		b.WriteString("\n\n")
	}

	if spec := p.filterSpec(); spec.Active() {
		b.WriteString(labelStyle.Render("Filter: "))
		b.WriteString(valueStyle.Render(spec.Value))
		b.WriteString("\n\n")
	}

	if p.loadErr != nil {
		b.WriteString(errStyle.Render("Error: " + p.loadErr.Error()))
		b.WriteString("\n\n")
	}

	if p.loading {
		b.WriteString(labelStyle.Render("Loading..."))
		b.WriteString("\n")
	} else if p.table.Empty() {
		b.WriteString(labelStyle.Render("No records."))
		b.WriteString("\n")
	} else {
		b.WriteString(p.table.Render())
	}

	b.WriteString("\n")
	help := p.cfg.Help
	if help == "" {
		help = "Up/Down:Select  Enter:Details  a:Add  e:Edit  d:Delete  f:Filter  1-9:Sort  r:Refresh"
	}
	if width > 0 && width < 70 {
		help = "↑↓:Nav  a:Add  e:Edit  d:Del  f:Filter"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (p *RecordPage[T]) renderConfirm() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ " + p.cfg.Title + " ═══"))
	b.WriteString("\n\n")
	b.WriteString(warnStyle.Render("Delete the selected record?"))
	b.WriteString("\n\n")
	if p.pending != nil {
		b.WriteString(valueStyle.Render(strings.Join(p.cfg.Row(*p.pending), "  ")))
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("y:Delete  n/Esc:Cancel"))

	return b.String()
}
