package models

// TaskCategory groups scheduled farm work.
type TaskCategory string

const (
	TaskFeeding     TaskCategory = "Feeding"
	TaskCleaning    TaskCategory = "Cleaning"
	TaskHealthCheck TaskCategory = "Health Check"
	TaskMaintenance TaskCategory = "Maintenance"
	TaskCollection  TaskCategory = "Egg Collection"
)

func (c TaskCategory) String() string { return string(c) }

// TaskCategories lists the selectable categories in display order.
func TaskCategories() []TaskCategory {
	return []TaskCategory{TaskFeeding, TaskCleaning, TaskHealthCheck, TaskMaintenance, TaskCollection}
}

// TaskStatus is the progress state of a scheduled task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) String() string { return string(s) }

// TaskStatuses lists the selectable statuses in display order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskPending, TaskInProgress, TaskCompleted}
}

// Task is one scheduled piece of farm work. Date is a free-form
// DD/MM/YY display string and Time a free-form HH:MM AM/PM string,
// kept as entered.
type Task struct {
	ID              string       `json:"id"`
	Date            string       `json:"date" validate:"required"`
	TaskDescription string       `json:"taskDescription" validate:"required"`
	Category        TaskCategory `json:"category" validate:"required"`
	AssignedTo      string       `json:"assignedTo" validate:"required"`
	Time            string       `json:"time"`
	Status          TaskStatus   `json:"status" validate:"required"`
}

// RecordID implements store.Record.
func (t Task) RecordID() string { return t.ID }
