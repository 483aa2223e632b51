package favebutton

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Choreography timings, in seconds.
const (
	selectDuration   = 1.0
	expandDuration   = 0.1298
	collapseDuration = 0.1089
	iconShowDelay    = expandDuration + collapseDuration/2

	sparkShowDelay    = collapseDuration / 3
	sparkShowDuration = 0.4
	sparkHideDelay    = 0.2
	sparkHideDuration = 0.7
)

// Geometry, relative to Options.Size where noted.
const (
	dotFirstFactor   = 0.0633 // outer dot radius / Size
	dotSecondFactor  = 0.04   // inner dot radius / Size
	ringScale        = 1.3    // ring diameter / Size
	ringLineWidth    = 3.0
	ringStartRadius  = 0.01
	igniteFromFactor = 0.8 // spark reach at spawn / ring radius
	igniteToFactor   = 1.1 // spark reach when ignited / ring radius
	sparkAngleOffset = 10.0
)

// Button is an animated favorite toggle. Selecting it pulses the glyph,
// flashes a ring behind it and bursts sparks outward; deselecting only
// pulses the glyph back to its normal color.
//
// The button's node is centered on its position. Ring and sparks are
// inserted into the button's parent just below it, so the button must be
// attached to a parent for them to appear.
type Button struct {
	// Delegate receives settle notifications and supplies spark colors.
	// Nil behaves like NopDelegate.
	Delegate Delegate

	opts     Options
	node     *Node
	icon     *Icon
	anim     *Animator
	selected bool

	// ignitions counts select animations, used to name spawned actors.
	ignitions int
}

// NewButton creates an unselected button with the scene's animator. glyph
// is the icon's shape; only its alpha channel is used. Panics if glyph is
// nil or opts is invalid.
func (s *Scene) NewButton(name string, glyph *ebiten.Image, opts Options) *Button {
	if glyph == nil {
		panic("favebutton: NewButton requires a glyph image")
	}
	if err := opts.Validate(); err != nil {
		panic("favebutton: NewButton: " + err.Error())
	}

	b := &Button{opts: opts, anim: &s.anim}

	n := NewContainer(name)
	n.Interactable = true
	n.HitShape = HitCircle{Radius: opts.Size / 2}
	n.OnClick = func(ClickContext) { b.Toggle() }
	n.UserData = b
	b.node = n

	b.icon = newIcon(b.anim, name+"-icon", glyph, opts.Size, opts.NormalColor)
	n.AddChild(b.icon.Node())
	return b
}

// Node returns the button's node. Position it at the desired center.
func (b *Button) Node() *Node { return b.node }

// Selected reports whether the button is selected.
func (b *Button) Selected() bool { return b.selected }

// Options returns the button's configuration.
func (b *Button) Options() Options { return b.opts }

// Icon returns the button's glyph actor.
func (b *Button) Icon() *Icon { return b.icon }

// Toggle flips the selection with animation, as a tap does, and notifies
// the delegate once the animation has settled. Every toggle schedules its
// own notification, which reports the state at the time it fires.
func (b *Button) Toggle() {
	b.setSelected(!b.selected, true)
	b.anim.After(selectDuration, AnimSettle, func() {
		if b.node.IsDisposed() {
			return
		}
		logger.Debug("selection settled", "button", b.node.Name, "selected", b.selected)
		b.delegate().SelectionSettled(b, b.selected)
	})
}

// SetSelected changes the selection programmatically. With animated false
// the glyph is recolored without any animation, which suits restoring a
// saved state. Setting the current state does nothing. The delegate is not
// notified.
func (b *Button) SetSelected(selected, animated bool) {
	if selected == b.selected {
		return
	}
	b.setSelected(selected, animated)
}

func (b *Button) setSelected(selected, animated bool) {
	b.selected = selected
	fill := b.opts.NormalColor
	if selected {
		fill = b.opts.SelectedColor
	}
	if !animated {
		b.icon.SetColor(fill)
		return
	}
	b.icon.SelectTransition(selected, fill, selectDuration, iconShowDelay)
	if selected {
		b.ignite()
	}
}

// ignite spawns one ring and a full set of sparks and schedules their
// whole lifecycle in a single pass.
func (b *Button) ignite() {
	if b.node.Parent == nil {
		logger.Debug("button has no parent, skipping ring and sparks", "button", b.node.Name)
		return
	}
	b.ignitions++
	prefix := fmt.Sprintf("%s-%d", b.node.Name, b.ignitions)

	size := b.opts.Size
	radius := size * ringScale / 2
	dots := DotRadius{First: size * dotFirstFactor, Second: size * dotSecondFactor}

	ring := newRing(b.anim, prefix+"-ring", ringStartRadius, ringLineWidth, b.opts.CircleFromColor)
	b.spawnBelow(ring.Node())

	palette := b.delegate().DotColors(b)
	sparks := make([]*Spark, b.opts.SparkCount)
	for i := range sparks {
		name := fmt.Sprintf("%s-spark-%d", prefix, i)
		sparks[i] = newSpark(b.anim, name, radius*igniteFromFactor,
			sparkColors(palette, i, b.opts), sparkAngle(i, b.opts.SparkCount), dots)
		b.spawnBelow(sparks[i].Node())
	}

	ring.Expand(radius, b.opts.CircleToColor, expandDuration, 0)
	ring.Collapse(ringStartRadius, collapseDuration, expandDuration)
	for _, sp := range sparks {
		sp.IgniteShow(radius*igniteToFactor, sparkShowDuration, sparkShowDelay)
		sp.IgniteHide(sparkHideDuration, sparkHideDelay)
	}

	logger.Debug("ignited", "button", b.node.Name, "generation", b.ignitions,
		"sparks", len(sparks), "palette", len(palette))
}

// spawnBelow centers n on the button and stacks it directly under it.
func (b *Button) spawnBelow(n *Node) {
	n.SetPosition(b.node.X, b.node.Y)
	b.node.Parent.InsertBelow(n, b.node)
}

func (b *Button) delegate() Delegate {
	if b.Delegate == nil {
		return NopDelegate{}
	}
	return b.Delegate
}

// sparkAngle returns spark i's angle in degrees, clockwise from north. The
// offset keeps the first spark off the vertical axis.
func sparkAngle(i, n int) float64 {
	step := 360.0 / float64(n)
	return step*float64(i) + sparkAngleOffset
}

// sparkColors picks spark i's dot colors. A palette shorter than the spark
// count wraps around; an empty one falls back to the button's own colors.
func sparkColors(palette []DotColors, i int, opts Options) DotColors {
	if len(palette) == 0 {
		return DotColors{First: opts.DotFirstColor, Second: opts.DotSecondColor}
	}
	return palette[i%len(palette)]
}
