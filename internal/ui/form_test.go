package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicbook/internal/domain"
	"magicbook/internal/ui/views"
)

func validSubmission() domain.Submission {
	return domain.Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Engines",
		Message: "About the analytical engine",
	}
}

func TestFormFocusWraps(t *testing.T) {
	f := NewContactForm(time.Second, time.Second)
	assert.False(t, f.Focused())

	f.Focus(0)
	assert.Equal(t, fieldName, f.FocusedField())

	f.Focus(-1)
	assert.Equal(t, fieldMessage, f.FocusedField())

	f.Focus(1)
	assert.Equal(t, fieldName, f.FocusedField())

	f.Blur()
	assert.Equal(t, -1, f.FocusedField())
}

func TestFormValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Submission)
		err    error
		text   string
	}{
		{"missing name", func(s *domain.Submission) { s.Name = "  " }, ErrRequired, "Name is required"},
		{"missing message", func(s *domain.Submission) { s.Message = "" }, ErrRequired, "Message is required"},
		{"bad email", func(s *domain.Submission) { s.Email = "not-an-email" }, ErrInvalidEmail, "invalid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewContactForm(time.Second, time.Second)
			s := validSubmission()
			tt.mutate(&s)
			f.SetValues(s)

			err := f.Validate()
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.text)
		})
	}

	f := NewContactForm(time.Second, time.Second)
	f.SetValues(validSubmission())
	assert.NoError(t, f.Validate())
}

func TestSubmitInvalidSetsErrorStatus(t *testing.T) {
	f := NewContactForm(time.Second, time.Second)

	cmd := f.Submit()
	require.NotNil(t, cmd)
	text, kind := f.Status()
	assert.Equal(t, views.StatusError, kind)
	assert.Contains(t, text, "Name is required")
	assert.False(t, f.Submitting())

	f.ClearStatus(clearStatusMsg{seq: f.seq})
	text, _ = f.Status()
	assert.Empty(t, text)
}

func TestSubmitLifecycle(t *testing.T) {
	f := NewContactForm(time.Second, time.Second)
	f.newID = func() string { return "id-1" }
	f.SetValues(validSubmission())

	require.NotNil(t, f.Submit())
	assert.True(t, f.Submitting())
	text, kind := f.Status()
	assert.Equal(t, "Sending...", text)
	assert.Equal(t, views.StatusLoading, kind)

	assert.Nil(t, f.Submit(), "a second submit while sending is ignored")

	_, _, ok := f.Complete(submitDoneMsg{seq: f.seq - 1})
	assert.False(t, ok, "stale completions are ignored")

	sent, cmd, ok := f.Complete(submitDoneMsg{seq: f.seq})
	require.True(t, ok)
	assert.NotNil(t, cmd)
	want := validSubmission()
	want.ID = "id-1"
	assert.Equal(t, want, sent)
	assert.Equal(t, domain.Submission{}, f.Values())

	text, kind = f.Status()
	assert.Equal(t, views.StatusSuccess, kind)
	assert.Contains(t, text, "Message sent")
}

func TestStaleClearKeepsNewerStatus(t *testing.T) {
	f := NewContactForm(time.Second, time.Second)
	f.Submit()
	old := f.seq
	f.Submit()

	f.ClearStatus(clearStatusMsg{seq: old})
	text, _ := f.Status()
	assert.NotEmpty(t, text)
}

func TestFieldsAreReadOnlyWhileSending(t *testing.T) {
	f := NewContactForm(time.Second, time.Second)
	f.SetValues(validSubmission())
	f.Focus(0)
	f.Submit()

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "Ada Lovelace", f.Values().Name)
}

func TestFormViewShowsLabelsAndHint(t *testing.T) {
	f := NewContactForm(time.Second, time.Second)
	styles := views.NewStyles()

	out := f.View(styles)
	for _, label := range fieldLabels {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "tab to start writing")

	f.Focus(0)
	assert.Contains(t, f.View(styles), "ctrl+s send")
}
