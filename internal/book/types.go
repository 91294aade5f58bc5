package book

import (
	"errors"
	"time"

	"magicbook/internal/domain"
)

// ErrNoPages is returned when a navigator is built without pages
var ErrNoPages = errors.New("book: page set is empty")

// Page is one section of the book. Renderer is owned by the UI layer.
type Page struct {
	Title    string
	Renderer any
}

// Direction records which way the last accepted transition moved
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return domain.DirectionBackward
	}
	return domain.DirectionForward
}

// Phase is the step of the transition machine
type Phase int

const (
	PhaseIdle Phase = iota
	// PhaseLeaving: the old page is still current and plays its exit
	PhaseLeaving
	// PhaseEntering: the target is current and plays its entrance
	PhaseEntering
)

func (p Phase) String() string {
	switch p {
	case PhaseLeaving:
		return "leaving"
	case PhaseEntering:
		return "entering"
	default:
		return "idle"
	}
}

// State is a snapshot of the navigation state
type State struct {
	Current      int
	Target       int
	Total        int
	InTransition bool
	Direction    Direction
	Phase        Phase
	// Duration is the length of the transition in flight; zero when idle
	Duration time.Duration
}

// CanGoNext reports whether a next page exists
func (s State) CanGoNext() bool {
	return s.Current < s.Total-1
}

// CanGoPrev reports whether a previous page exists
func (s State) CanGoPrev() bool {
	return s.Current > 0
}

// Progress is the one-based position and the rounded percentage read so far
type Progress struct {
	Current    int
	Total      int
	Percentage int
}

// Progress returns reading progress through the book
func (s State) Progress() Progress {
	if s.Total == 0 {
		return Progress{}
	}
	current := s.Current + 1
	return Progress{
		Current:    current,
		Total:      s.Total,
		Percentage: (current*100*2 + s.Total) / (s.Total * 2),
	}
}

// Publisher receives navigation events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Listener is notified with a snapshot after every state mutation
type Listener func(State)
