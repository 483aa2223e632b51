package favebutton

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Easing computes the value at time t of a curve starting at b, changing by
// c over duration d.
type Easing func(t, b, c, d float64) float64

// ElasticEasing is an Easing with an explicit amplitude a and period p.
type ElasticEasing func(t, b, c, d, a, p float64) float64

// All elastic functions return b exactly at t == 0 and b+c exactly at the
// end of the curve, so the sine term never leaks into the endpoints.

// ElasticEaseIn oscillates with growing amplitude before snapping to b+c.
func ElasticEaseIn(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	return elasticIn(t, b, d, c, p, p/4)
}

// ElasticEaseOut overshoots b+c and settles with decaying oscillation.
func ElasticEaseOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	return elasticOut(t, b, c, d, c, p, p/4)
}

// ElasticEaseInOut runs ElasticEaseIn over the first half and
// ElasticEaseOut over the second, each at half amplitude.
func ElasticEaseInOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * (0.3 * 1.5)
	return elasticInOut(t, b, c, d, c, p, p/4)
}

// ElasticExtendedEaseIn is ElasticEaseIn with explicit amplitude and period.
func ElasticExtendedEaseIn(t, b, c, d, a, p float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	a, s := elasticPhase(c, a, p)
	return elasticIn(t, b, d, a, p, s)
}

// ElasticExtendedEaseOut is ElasticEaseOut with explicit amplitude and period.
func ElasticExtendedEaseOut(t, b, c, d, a, p float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	a, s := elasticPhase(c, a, p)
	return elasticOut(t, b, c, d, a, p, s)
}

// ElasticExtendedEaseInOut is ElasticEaseInOut with explicit amplitude and
// period.
func ElasticExtendedEaseInOut(t, b, c, d, a, p float64) float64 {
	if t == 0 {
		return b
	}
	t /= d / 2
	if t == 2 {
		return b + c
	}
	a, s := elasticPhase(c, a, p)
	return elasticInOut(t, b, c, d, a, p, s)
}

// elasticPhase clamps the amplitude to at least |c| and derives the phase
// shift s for period p.
func elasticPhase(c, a, p float64) (amp, s float64) {
	if a < math.Abs(c) {
		return c, p / 4
	}
	return a, p / (2 * math.Pi) * math.Asin(c/a)
}

// elasticIn evaluates the ease-in branch for normalized time t in (0, 1).
func elasticIn(t, b, d, a, p, s float64) float64 {
	t--
	return -(a * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

// elasticOut evaluates the ease-out branch for normalized time t in (0, 1).
func elasticOut(t, b, c, d, a, p, s float64) float64 {
	return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

// elasticInOut evaluates either half for t normalized to (0, 2).
func elasticInOut(t, b, c, d, a, p, s float64) float64 {
	if t < 1 {
		t--
		return -0.5*(a*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
	t--
	return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*0.5 + c + b
}

// TweenFunc adapts fn to gween's float32 easing signature so it can drive
// a TweenGroup.
func TweenFunc(fn Easing) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return float32(fn(float64(t), float64(b), float64(c), float64(d)))
	}
}
