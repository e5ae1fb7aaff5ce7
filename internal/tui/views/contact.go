package views

import (
	"context"
	"strings"

	"github.com/NirunaShyamal/farm-sub001/internal/api"
	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/tui/components"
)

// Contact is the page for sending a message to the farm office.
type Contact struct {
	client *api.Client

	name    *components.Input
	email   *components.Input
	subject *components.Input
	message *components.Input

	fields     []components.FormField
	focusIndex int
	err        string
	sent       bool
}

// NewContact creates the contact page.
func NewContact(client *api.Client) *Contact {
	c := &Contact{
		client: client,

		name:    components.NewInput("Name").SetRequired(true).SetWidth(25),
		email:   components.NewInput("Email").SetRequired(true).SetWidth(30),
		subject: components.NewInput("Subject").SetWidth(40),
		message: components.NewInput("Message").SetRequired(true).SetWidth(50),
	}
	c.fields = []components.FormField{c.name, c.email, c.subject, c.message}
	c.fields[0].Focus(true)
	return c
}

// Name returns the module identifier.
func (c *Contact) Name() string { return "contact" }

// Capturing always reports true; the page is a single form.
func (c *Contact) Capturing() bool { return true }

// Load is a no-op; the contact page holds no records.
func (c *Contact) Load(ctx context.Context) error { return nil }

// HandleKey drives the form; Ctrl+S submits.
func (c *Contact) HandleKey(key string) *Op {
	switch key {
	case "tab", "down":
		c.moveFocus(1)
	case "shift+tab", "up":
		c.moveFocus(-1)
	case "ctrl+s":
		return c.send()
	default:
		c.sent = false
		c.fields[c.focusIndex].HandleKey(key)
	}
	return nil
}

func (c *Contact) moveFocus(delta int) {
	c.fields[c.focusIndex].Focus(false)
	c.focusIndex = (c.focusIndex + delta + len(c.fields)) % len(c.fields)
	c.fields[c.focusIndex].Focus(true)
}

func (c *Contact) send() *Op {
	c.err = ""
	c.sent = false

	if !c.name.Validate() || !c.email.Validate() || !c.message.Validate() {
		c.err = "Please fill in all required fields"
		return nil
	}

	msg := models.ContactMessage{
		Name:    c.name.Value(),
		Email:   c.email.Value(),
		Subject: c.subject.Value(),
		Message: c.message.Value(),
	}

	return &Op{Kind: OpSend, Do: func(ctx context.Context) error {
		if err := c.client.SendContact(ctx, msg); err != nil {
			c.err = err.Error()
			return err
		}
		c.clear()
		c.sent = true
		return nil
	}}
}

func (c *Contact) clear() {
	c.name.SetValue("")
	c.email.SetValue("")
	c.subject.SetValue("")
	c.message.SetValue("")
	c.err = ""
}

// Render draws the contact form.
func (c *Contact) Render(width, height int) string {
	lw := formLabelWidth(width)

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ CONTACT FARM OFFICE ═══"))
	b.WriteString("\n\n")

	b.WriteString(c.name.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(c.email.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(c.subject.RenderWithLabelWidth(lw))
	b.WriteString("\n")
	b.WriteString(c.message.RenderWithLabelWidth(lw))
	b.WriteString("\n")

	if c.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + c.err))
	}
	if c.sent {
		b.WriteString("\n")
		b.WriteString(valueStyle.Render("Message sent."))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Tab/Down:Next  Ctrl+S:Send  F2:Dashboard"))

	return b.String()
}
