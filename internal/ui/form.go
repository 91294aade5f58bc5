package ui

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"magicbook/internal/domain"
	"magicbook/internal/ui/views"
)

// ErrRequired is wrapped when a contact field is left empty
var ErrRequired = errors.New("required")

// ErrInvalidEmail is wrapped when the email does not parse
var ErrInvalidEmail = errors.New("invalid email address")

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Subject", "Message"}

type formStatus int

const (
	formIdle formStatus = iota
	formSubmitting
	formSuccess
	formError
)

// ContactForm is the simulated contact form. Nothing leaves the process:
// a submission waits submitDelay and then reports success.
type ContactForm struct {
	inputs  [fieldMessage]textinput.Model
	message textarea.Model
	focus   int // -1 when no field has focus

	status     formStatus
	statusText string
	seq        int
	pending    domain.Submission

	submitDelay time.Duration
	statusTTL   time.Duration
	newID       func() string
}

// NewContactForm creates an empty, unfocused form
func NewContactForm(submitDelay, statusTTL time.Duration) *ContactForm {
	f := &ContactForm{
		focus:       -1,
		submitDelay: submitDelay,
		statusTTL:   statusTTL,
		newID:       uuid.NewString,
	}

	placeholders := [fieldMessage]string{"Your name", "you@example.com", "What is it about?"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	f.inputs[fieldEmail].CharLimit = 254

	ta := textarea.New()
	ta.Placeholder = "Tell me about your project..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(4)
	f.message = ta

	return f
}

// Focused reports whether a field has focus
func (f *ContactForm) Focused() bool {
	return f.focus >= 0
}

// FocusedField returns the index of the focused field, or -1
func (f *ContactForm) FocusedField() int {
	return f.focus
}

// Focus moves focus by delta fields, wrapping around. A zero delta focuses
// the first field when nothing has focus yet.
func (f *ContactForm) Focus(delta int) tea.Cmd {
	next := 0
	if f.focus >= 0 {
		next = ((f.focus+delta)%fieldCount + fieldCount) % fieldCount
	}
	return f.focusField(next)
}

func (f *ContactForm) focusField(i int) tea.Cmd {
	f.Blur()
	f.focus = i
	if i == fieldMessage {
		return f.message.Focus()
	}
	return f.inputs[i].Focus()
}

// Blur removes focus from every field
func (f *ContactForm) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.message.Blur()
	f.focus = -1
}

// Update forwards msg to the focused field. Fields are read-only while a
// submission is in flight.
func (f *ContactForm) Update(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.status == formSubmitting {
		return nil
	}
	var cmd tea.Cmd
	if f.focus == fieldMessage {
		f.message, cmd = f.message.Update(msg)
	} else {
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	}
	return cmd
}

// SetSize fits the fields into width columns
func (f *ContactForm) SetSize(width int) {
	w := max(width-4, 10)
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
	f.message.SetWidth(w)
}

// Values returns the trimmed field contents
func (f *ContactForm) Values() domain.Submission {
	return domain.Submission{
		Name:    strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:   strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Subject: strings.TrimSpace(f.inputs[fieldSubject].Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
}

// SetValues fills the fields, mostly for tests and prefilled forms
func (f *ContactForm) SetValues(s domain.Submission) {
	f.inputs[fieldName].SetValue(s.Name)
	f.inputs[fieldEmail].SetValue(s.Email)
	f.inputs[fieldSubject].SetValue(s.Subject)
	f.message.SetValue(s.Message)
}

// Validate checks that every field is filled and the email parses
func (f *ContactForm) Validate() error {
	v := f.Values()
	for i, value := range []string{v.Name, v.Email, v.Subject, v.Message} {
		if value == "" {
			return fmt.Errorf("%s is %w", fieldLabels[i], ErrRequired)
		}
	}
	if _, err := mail.ParseAddress(v.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, v.Email)
	}
	return nil
}

// Submitting reports whether a submission is in flight
func (f *ContactForm) Submitting() bool {
	return f.status == formSubmitting
}

// Submit validates and starts the simulated send. A second submit while one
// is in flight is ignored.
func (f *ContactForm) Submit() tea.Cmd {
	if f.status == formSubmitting {
		return nil
	}

	f.seq++
	seq := f.seq
	if err := f.Validate(); err != nil {
		f.status = formError
		f.statusText = err.Error()
		return f.clearAfterTTL(seq)
	}

	f.pending = f.Values()
	f.pending.ID = f.newID()
	f.status = formSubmitting
	f.statusText = "Sending..."
	return tea.Tick(f.submitDelay, func(time.Time) tea.Msg {
		return submitDoneMsg{seq: seq}
	})
}

// Complete finishes the submission started at msg.seq, clears the fields
// and returns what was sent. ok is false for stale messages.
func (f *ContactForm) Complete(msg submitDoneMsg) (sent domain.Submission, cmd tea.Cmd, ok bool) {
	if msg.seq != f.seq || f.status != formSubmitting {
		return domain.Submission{}, nil, false
	}

	sent = f.pending
	f.pending = domain.Submission{}
	f.Reset()
	f.status = formSuccess
	f.statusText = "Message sent! I'll get back to you soon."
	return sent, f.clearAfterTTL(msg.seq), true
}

// ClearStatus drops the status set at msg.seq
func (f *ContactForm) ClearStatus(msg clearStatusMsg) {
	if msg.seq != f.seq || f.status == formSubmitting {
		return
	}
	f.status = formIdle
	f.statusText = ""
}

// Reset empties every field
func (f *ContactForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.message.Reset()
}

// Status returns the status line and its kind
func (f *ContactForm) Status() (string, views.StatusKind) {
	switch f.status {
	case formSubmitting:
		return f.statusText, views.StatusLoading
	case formSuccess:
		return f.statusText, views.StatusSuccess
	case formError:
		return f.statusText, views.StatusError
	default:
		return "", views.StatusInfo
	}
}

func (f *ContactForm) clearAfterTTL(seq int) tea.Cmd {
	return tea.Tick(f.statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// View renders the labelled fields and the status line
func (f *ContactForm) View(styles *views.Styles) string {
	rows := make([]string, 0, fieldCount*2+2)
	for i := 0; i < fieldCount; i++ {
		box := styles.Field
		if i == f.focus {
			box = styles.FieldFocused
		}
		var field string
		if i == fieldMessage {
			field = f.message.View()
		} else {
			field = f.inputs[i].View()
		}
		rows = append(rows, styles.Label.Render(fieldLabels[i]), box.Render(field))
	}

	hint := "tab to start writing"
	if f.Focused() {
		hint = "tab next field · ctrl+s send · esc done"
	}
	rows = append(rows, styles.Dim.Render(hint))

	if text, kind := f.Status(); text != "" {
		style := styles.Status
		switch kind {
		case views.StatusLoading:
			style = styles.StatusLoading
		case views.StatusSuccess:
			style = styles.StatusSuccess
		case views.StatusError:
			style = styles.StatusError
		}
		rows = append(rows, style.Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
