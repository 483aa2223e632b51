package favebutton

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// iconGlyphScale is the glyph's share of the button's side length.
const iconGlyphScale = 0.7

// Icon is the button's glyph. It paints a solid color through the glyph's
// alpha, and the glyph mask pulses in scale on every selection change.
type Icon struct {
	node  *Node // fill color and visibility pulse; masked by pulse
	pulse *Node // mask root; carries the keyframed scale
	glyph *Node // glyph sprite, centered and fitted to the button

	anim *Animator

	// tweenValues is generated on the first transition and replayed after.
	tweenValues []float64

	scale  *Keyframes
	reveal *TweenGroup
}

func newIcon(anim *Animator, name string, glyph *ebiten.Image, size float64, fill Color) *Icon {
	b := glyph.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	g := NewSprite(name+"-glyph", glyph)
	g.SetPivot(w/2, h/2)
	if w > 0 {
		fit := size * iconGlyphScale / w
		g.SetScale(fit, fit)
	}

	pulse := NewContainer(name + "-mask")
	pulse.AddChild(g)

	n := NewContainer(name)
	n.Color = fill
	n.SetMask(pulse)

	ic := &Icon{node: n, pulse: pulse, glyph: g, anim: anim}
	n.UserData = ic
	return ic
}

// Node returns the icon's node.
func (ic *Icon) Node() *Node { return ic.node }

// Color returns the current fill color.
func (ic *Icon) Color() Color { return ic.node.Color }

// Scale returns the current scale of the glyph mask.
func (ic *Icon) Scale() float64 { return ic.pulse.ScaleX }

// TweenValues returns the cached pulse sequence, or nil before the first
// transition.
func (ic *Icon) TweenValues() []float64 { return ic.tweenValues }

// SetColor recolors the glyph immediately without animating.
func (ic *Icon) SetColor(c Color) {
	ic.stop()
	ic.node.Color = c
}

// SelectTransition recolors the glyph at once and replays the elastic
// scale pulse for duration seconds. When selected, the glyph also hides
// and reappears after delay, and the pulse waits for it.
func (ic *Icon) SelectTransition(selected bool, fill Color, duration, delay float64) {
	ic.stop()
	ic.node.Color = fill

	if !selected {
		delay = 0
	} else {
		ic.node.SetAlpha(0)
		ic.reveal = NewTweenGroup(ic.node, 0, ease.Linear).
			Field(&ic.node.Alpha, 1).
			After(float32(delay)).
			Tag(AnimIconReveal)
		ic.anim.Add(ic.reveal)
	}

	if ic.tweenValues == nil {
		ic.tweenValues = GenerateTween(0, 1, duration)
	}
	ic.scale = NewKeyframes(ic.pulse, ic.tweenValues, float32(duration), &ic.pulse.ScaleX, &ic.pulse.ScaleY)
	ic.scale.Delay = float32(delay)
	ic.scale.Kind = AnimIconScale
	ic.anim.Add(ic.scale)
}

// stop cancels an in-flight transition and puts the glyph back at rest.
func (ic *Icon) stop() {
	if ic.scale != nil {
		ic.scale.Cancel()
		ic.scale = nil
	}
	if ic.reveal != nil {
		ic.reveal.Cancel()
		ic.reveal = nil
		ic.node.SetAlpha(1)
	}
}
