// Package motion holds the page-flip timing policy and the variant tables
// used to draw a flip in progress.
package motion

import (
	"time"

	"magicbook/internal/book"
)

// Durations per device class
const (
	ReducedDuration = 100 * time.Millisecond
	CompactDuration = 600 * time.Millisecond
	FullDuration    = 1200 * time.Millisecond
)

// Settings is the animation configuration for the current device class
type Settings struct {
	Duration time.Duration
	Easing   Easing
	Compact  bool
	Reduced  bool
}

// Config picks the flip timing for a device class. Reduced motion wins
// over the compact class.
func Config(compact, reducedMotion bool) Settings {
	switch {
	case reducedMotion:
		return Settings{Duration: ReducedDuration, Easing: Linear, Compact: compact, Reduced: true}
	case compact:
		return Settings{Duration: CompactDuration, Easing: EaseInOut, Compact: true}
	default:
		return Settings{Duration: FullDuration, Easing: CubicBezier{0.25, 0.1, 0.25, 1}}
	}
}

// Origin is the hinge a page rotates around
type Origin string

const (
	OriginLeft   Origin = "left"
	OriginCenter Origin = "center"
	OriginRight  Origin = "right"
)

// Variant is one keyframe of a page: OffsetX is a fraction of the page
// width, RotateY is in degrees.
type Variant struct {
	OffsetX float64
	Opacity float64
	Scale   float64
	RotateY float64
	Origin  Origin
}

// Variants is a full keyframe table
type Variants struct {
	EnterNext Variant
	EnterPrev Variant
	Center    Variant
	ExitNext  Variant
	ExitPrev  Variant
}

// PageVariants is the book-like table with page rotation
var PageVariants = Variants{
	EnterNext: Variant{OffsetX: 1, Opacity: 0, Scale: 0.95, RotateY: -180, Origin: OriginLeft},
	EnterPrev: Variant{OffsetX: -1, Opacity: 0, Scale: 0.95, RotateY: 180, Origin: OriginRight},
	Center:    Variant{OffsetX: 0, Opacity: 1, Scale: 1, RotateY: 0, Origin: OriginCenter},
	ExitNext:  Variant{OffsetX: -1, Opacity: 0, Scale: 0.95, RotateY: 180, Origin: OriginRight},
	ExitPrev:  Variant{OffsetX: 1, Opacity: 0, Scale: 0.95, RotateY: -180, Origin: OriginLeft},
}

// CompactVariants slides without rotating
var CompactVariants = Variants{
	EnterNext: Variant{OffsetX: 1, Opacity: 0, Scale: 0.95, Origin: OriginCenter},
	EnterPrev: Variant{OffsetX: -1, Opacity: 0, Scale: 0.95, Origin: OriginCenter},
	Center:    Variant{OffsetX: 0, Opacity: 1, Scale: 1, Origin: OriginCenter},
	ExitNext:  Variant{OffsetX: -1, Opacity: 0, Scale: 0.95, Origin: OriginCenter},
	ExitPrev:  Variant{OffsetX: 1, Opacity: 0, Scale: 0.95, Origin: OriginCenter},
}

// Table returns the variant table for the settings' device class
func (s Settings) Table() Variants {
	if s.Compact {
		return CompactVariants
	}
	return PageVariants
}

// Frame returns the interpolated keyframe for a page that is progress
// (0..1) of the way through the given phase.
func Frame(phase book.Phase, dir book.Direction, progress float64, s Settings) Variant {
	table := s.Table()
	easing := s.Easing
	if easing == nil {
		easing = Linear
	}
	t := easing.Ease(progress)

	switch phase {
	case book.PhaseLeaving:
		to := table.ExitNext
		if dir == book.Backward {
			to = table.ExitPrev
		}
		return Interpolate(table.Center, to, t)
	case book.PhaseEntering:
		from := table.EnterNext
		if dir == book.Backward {
			from = table.EnterPrev
		}
		return Interpolate(from, table.Center, t)
	default:
		return table.Center
	}
}

// Interpolate blends two keyframes; the origin snaps to the destination
// once past the midpoint.
func Interpolate(from, to Variant, t float64) Variant {
	t = clamp01(t)
	origin := from.Origin
	if t >= 0.5 {
		origin = to.Origin
	}
	return Variant{
		OffsetX: lerp(from.OffsetX, to.OffsetX, t),
		Opacity: lerp(from.Opacity, to.Opacity, t),
		Scale:   lerp(from.Scale, to.Scale, t),
		RotateY: lerp(from.RotateY, to.RotateY, t),
		Origin:  origin,
	}
}

// PhaseProgress converts time spent in the current phase into progress
// through that phase. Each phase lasts half the duration.
func PhaseProgress(elapsed, duration time.Duration) float64 {
	half := duration / 2
	if half <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(half))
}

func lerp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}
