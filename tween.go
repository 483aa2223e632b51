package favebutton

import "math"

const (
	// tweenFPS is the sample rate of generated tweens, per unit duration.
	tweenFPS = 60

	// Elastic pulse shape for the glyph: amplitude is the value delta plus
	// tweenOvershoot, tweenPeriod is the oscillation period.
	tweenOvershoot = 0.001
	tweenPeriod    = 0.39988

	// sampleSlack absorbs rounding in duration*tweenFPS so that durations
	// like 2.05 yield all 123 samples.
	sampleSlack = 1e-9
)

// GenerateTween samples an elastic ease-out from from to to at 60 samples
// per unit of duration and returns the floor(duration*60) values, ready to
// be played back as keyframes. It returns nil for a non-positive duration.
//
// The result only depends on its arguments, so callers cache it and replay
// the same slice on every animation.
func GenerateTween(from, to, duration float64) []float64 {
	if duration <= 0 {
		return nil
	}
	n := int(math.Floor(duration*tweenFPS + sampleSlack))
	c := to - from
	values := make([]float64, n)
	for i := range values {
		t := float64(i) / tweenFPS
		values[i] = ElasticExtendedEaseOut(t, from, c, duration, c+tweenOvershoot, tweenPeriod)
	}
	return values
}
