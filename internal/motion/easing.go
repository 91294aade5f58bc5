package motion

import "math"

// Easing maps linear progress in [0,1] to eased progress
type Easing interface {
	Ease(t float64) float64
	String() string
}

type linear struct{}

func (linear) Ease(t float64) float64 { return clamp01(t) }
func (linear) String() string         { return "linear" }

// Linear is the identity easing
var Linear Easing = linear{}

type easeInOut struct{}

func (easeInOut) Ease(t float64) float64 {
	t = clamp01(t)
	return -(math.Cos(math.Pi*t) - 1) / 2
}
func (easeInOut) String() string { return "easeInOut" }

// EaseInOut is a sinusoidal ease in and out
var EaseInOut Easing = easeInOut{}

// CubicBezier is a CSS-style timing function with fixed end points (0,0) and (1,1)
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Ease solves the curve for x = t and returns y
func (c CubicBezier) Ease(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	u := c.solveX(t)
	return bezier(u, c.Y1, c.Y2)
}

func (c CubicBezier) String() string {
	return "cubic-bezier"
}

func (c CubicBezier) solveX(x float64) float64 {
	// Newton first, bisection when the slope is too flat
	u := x
	for i := 0; i < 8; i++ {
		dx := bezier(u, c.X1, c.X2) - x
		if math.Abs(dx) < 1e-6 {
			return u
		}
		slope := bezierSlope(u, c.X1, c.X2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		u -= dx / slope
	}

	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 40; i++ {
		v := bezier(u, c.X1, c.X2)
		if math.Abs(v-x) < 1e-6 {
			break
		}
		if v < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func bezier(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
