package views

import (
	"strconv"
	"strings"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/query"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/summary"
	"github.com/NirunaShyamal/farm-sub001/internal/tui/components"
)

// NewTasksPage creates the task scheduling page.
func NewTasksPage(collection store.Collection[models.Task]) *RecordPage[models.Task] {
	fields := map[string]query.Field[models.Task]{
		"date": func(t models.Task) query.Value {
			return query.Date(t.Date)
		},
		"taskDescription": func(t models.Task) query.Value {
			return query.Text(t.TaskDescription)
		},
		"category": func(t models.Task) query.Value {
			return query.Text(t.Category.String())
		},
		"assignedTo": func(t models.Task) query.Value {
			return query.Text(t.AssignedTo)
		},
		"status": func(t models.Task) query.Value {
			return query.Text(t.Status.String())
		},
	}

	statuses := make([]string, 0, len(models.TaskStatuses()))
	for _, s := range models.TaskStatuses() {
		statuses = append(statuses, s.String())
	}

	return NewRecordPage(PageConfig[models.Task]{
		Name:       "tasks",
		Title:      "TASK SCHEDULING",
		Collection: collection,
		Columns: []components.Column{
			{Title: "Date", Key: "date", Width: 10},
			{Title: "Task", Key: "taskDescription", Width: 26},
			{Title: "Category", Key: "category", Width: 15},
			{Title: "Assigned", Key: "assignedTo", Width: 14},
			{Title: "Time", Width: 9},
			{Title: "Status", Key: "status", Width: 12},
		},
		Row: func(t models.Task) []string {
			return []string{
				t.Date,
				t.TaskDescription,
				t.Category.String(),
				t.AssignedTo,
				t.Time,
				t.Status.String(),
			}
		},
		Fields:        fields,
		SortKeys:      []string{"date", "taskDescription", "category", "assignedTo", "status"},
		DefaultSort:   query.Sort{Key: "date", Desc: false},
		FilterKey:     "status",
		FilterOptions: statuses,
		Summary: func(tasks []models.Task) string {
			s := summary.Tasks(tasks)
			return labelStyle.Render("Pending: ") + valueStyle.Render(strconv.Itoa(s.Pending)) +
				labelStyle.Render("  In progress: ") + valueStyle.Render(strconv.Itoa(s.InProgress)) +
				labelStyle.Render("  Completed: ") + valueStyle.Render(strconv.Itoa(s.Completed))
		},
		Detail:  renderTaskDetail,
		NewForm: newTaskForm,
	})
}

func renderTaskDetail(t models.Task, width int) string {
	lw := formLabelWidth(width)
	label := labelStyle.Width(lw)

	var b strings.Builder
	b.WriteString(titleStyle.Render("═══ SCHEDULED TASK ═══"))
	b.WriteString("\n\n")
	b.WriteString(label.Render("Date:") + " " + valueStyle.Render(t.Date) + "\n")
	b.WriteString(label.Render("Task:") + " " + valueStyle.Render(t.TaskDescription) + "\n")
	b.WriteString(label.Render("Category:") + " " + valueStyle.Render(t.Category.String()) + "\n")
	b.WriteString(label.Render("Assigned To:") + " " + valueStyle.Render(t.AssignedTo) + "\n")
	if t.Time != "" {
		b.WriteString(label.Render("Time:") + " " + valueStyle.Render(t.Time) + "\n")
	}
	b.WriteString(label.Render("Status:") + " " + valueStyle.Render(t.Status.String()) + "\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc:Back  e:Edit"))
	return b.String()
}

type taskForm struct {
	baseForm
	mode     FormMode
	existing *models.Task

	date        *components.Input
	description *components.Input
	category    *components.Select
	assignedTo  *components.Input
	timeOfDay   *components.Input
	status      *components.Select
}

func newTaskForm(mode FormMode, existing *models.Task, _ []models.Task) RecordForm[models.Task] {
	categories := make([]string, 0, len(models.TaskCategories()))
	for _, c := range models.TaskCategories() {
		categories = append(categories, c.String())
	}
	statuses := make([]string, 0, len(models.TaskStatuses()))
	for _, s := range models.TaskStatuses() {
		statuses = append(statuses, s.String())
	}

	f := &taskForm{
		mode:     mode,
		existing: existing,

		// Task dates stay free-form: the records keep whatever the
		// user typed, DD/MM/YY by convention.
		date:        components.NewInput("Date").SetRequired(true).SetWidth(10).SetPlaceholder("DD/MM/YY"),
		description: components.NewInput("Task").SetRequired(true).SetWidth(40),
		category:    components.NewSelect("Category", categories),
		assignedTo:  components.NewInput("Assigned To").SetRequired(true).SetWidth(25),
		timeOfDay:   components.NewInput("Time").SetWidth(10).SetPlaceholder("HH:MM AM"),
		status:      components.NewSelect("Status", statuses),
	}

	if existing != nil {
		f.date.SetValue(existing.Date)
		f.description.SetValue(existing.TaskDescription)
		f.category.SelectValue(existing.Category.String())
		f.assignedTo.SetValue(existing.AssignedTo)
		f.timeOfDay.SetValue(existing.Time)
		f.status.SelectValue(existing.Status.String())
	}

	f.fields = []components.FormField{f.date, f.description, f.category, f.assignedTo, f.timeOfDay, f.status}
	f.validate = f.check
	f.focusFirst()
	return f
}

func (f *taskForm) check() string {
	if !f.date.Validate() || !f.description.Validate() || !f.assignedTo.Validate() {
		return "Please fill in all required fields"
	}
	return ""
}

func (f *taskForm) Record() (models.Task, error) {
	t := models.Task{
		Date:            f.date.Value(),
		TaskDescription: f.description.Value(),
		Category:        models.TaskCategory(f.category.Value()),
		AssignedTo:      f.assignedTo.Value(),
		Time:            f.timeOfDay.Value(),
		Status:          models.TaskStatus(f.status.Value()),
	}
	if f.existing != nil {
		t.ID = f.existing.ID
	}
	return t, nil
}

func (f *taskForm) Render(width int) string {
	lw := formLabelWidth(width)

	var b strings.Builder

	title := "ADD TASK"
	if f.mode == FormModeEdit {
		title = "EDIT TASK"
	}
	b.WriteString(titleStyle.Render("═══ " + title + " ═══"))
	b.WriteString("\n\n")

	b.WriteString(f.date.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.description.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.category.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.assignedTo.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(f.timeOfDay.RenderWithLabelWidth(lw))
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
