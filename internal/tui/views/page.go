// Package views provides the module pages driven by the application shell.
package views

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/NirunaShyamal/farm-sub001/internal/tui/components"
)

// OpKind classifies a deferred page operation.
type OpKind int

const (
	OpLoad OpKind = iota
	OpSave
	OpDelete
	OpSend
)

// Op is an operation a page wants executed off the update loop. The
// shell runs Do in a command and reports the outcome on the alert bar.
type Op struct {
	Kind OpKind
	Do   func(ctx context.Context) error
}

// Handler is the surface the application shell drives for each page.
type Handler interface {
	// Name is the module identifier used for navigation.
	Name() string
	// Load performs the page's initial data fetch.
	Load(ctx context.Context) error
	// HandleKey processes a key press and may return a deferred operation.
	HandleKey(key string) *Op
	// Render draws the page for the given terminal dimensions.
	Render(width, height int) string
	// Capturing reports whether a form currently owns the keyboard.
	Capturing() bool
}

var alignRight = lipgloss.Right

// Shared view styles, phosphor green like the rest of the terminal.
var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))
)

// FormMode indicates whether a form adds a new record or edits one.
type FormMode int

const (
	FormModeAdd FormMode = iota
	FormModeEdit
)

// baseForm carries field focus, submit/cancel state and the error line
// shared by every record form.
type baseForm struct {
	fields     []components.FormField
	focusIndex int
	submitted  bool
	cancelled  bool
	err        string

	// validate returns a message when the form should not submit.
	validate func() string
}

// HandleKey handles form navigation and editing keys.
func (f *baseForm) HandleKey(key string) {
	switch key {
	case "tab", "down":
		f.nextField()
	case "shift+tab", "up":
		f.prevField()
	case "ctrl+s":
		f.submit()
	case "esc":
		f.cancelled = true
	case "enter":
		// Move to next field, or submit on the last field.
		if f.focusIndex == len(f.fields)-1 {
			f.submit()
		} else {
			f.nextField()
		}
	default:
		f.fields[f.focusIndex].HandleKey(key)
	}
}

func (f *baseForm) nextField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex++
	if f.focusIndex >= len(f.fields) {
		f.focusIndex = 0
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *baseForm) prevField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *baseForm) submit() {
	f.err = ""
	if f.validate != nil {
		if msg := f.validate(); msg != "" {
			f.err = msg
			return
		}
	}
	f.submitted = true
}

// IsSubmitted returns true if the form was submitted.
func (f *baseForm) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if the form was cancelled.
func (f *baseForm) IsCancelled() bool {
	return f.cancelled
}

// SetError puts a message on the form's error line.
func (f *baseForm) SetError(msg string) {
	f.err = msg
}

// ClearSubmitted reopens the form after a rejected submission.
func (f *baseForm) ClearSubmitted() {
	f.submitted = false
}

func (f *baseForm) focusFirst() {
	if len(f.fields) > 0 {
		f.fields[0].Focus(true)
	}
}

func formLabelWidth(width int) int {
	if width > 0 && width < 60 {
		return 12
	}
	return 18
}
