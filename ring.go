package favebutton

import (
	"github.com/tanema/gween/ease"
)

// RingState is a Ring's position in its one-way lifecycle.
type RingState uint8

const (
	RingCollapsed  RingState = iota // created at radius ~0
	RingExpanding                   // Expand running
	RingExpanded                    // Expand finished
	RingCollapsing                  // Collapse running
	RingRemoved                     // detached and disposed; terminal
)

func (s RingState) String() string {
	switch s {
	case RingCollapsed:
		return "collapsed"
	case RingExpanding:
		return "expanding"
	case RingExpanded:
		return "expanded"
	case RingCollapsing:
		return "collapsing"
	case RingRemoved:
		return "removed"
	}
	return "unknown"
}

// Ring is the circle that flashes behind a button when it gets selected.
// A ring lives for one selection: it expands, collapses, then removes
// itself from its parent.
type Ring struct {
	node   *Node // positioned at the button center
	fill   *Node // unit disc scaled to radius
	stroke *Node // annulus mesh

	anim *Animator

	radius      float64 // stroke path radius
	lineWidth   float64 // stroke width once expanded
	strokeWidth float64 // current stroke width
	state       RingState
}

// newRing builds a ring whose path starts at radius. The stroke starts at
// zero width in color and grows to lineWidth on Expand. The fill stays
// clear except while Expand runs.
func newRing(anim *Animator, name string, radius, lineWidth float64, color Color) *Ring {
	r := &Ring{
		node:      NewContainer(name),
		fill:      NewDisc(name + "-fill"),
		stroke:    NewStroke(name + "-stroke"),
		anim:      anim,
		radius:    radius,
		lineWidth: lineWidth,
	}
	r.fill.Visible = false
	r.fill.Color = color
	r.stroke.Color = color
	r.node.AddChild(r.fill)
	r.node.AddChild(r.stroke)
	r.node.UserData = r
	r.refresh()
	return r
}

// Node returns the ring's root node.
func (r *Ring) Node() *Node { return r.node }

// State returns the ring's lifecycle state.
func (r *Ring) State() RingState { return r.state }

// Radius returns the current stroke path radius.
func (r *Ring) Radius() float64 { return r.radius }

// StrokeWidth returns the current stroke width.
func (r *Ring) StrokeWidth() float64 { return r.strokeWidth }

// FillColor returns the current fill color and whether the fill is showing.
func (r *Ring) FillColor() (Color, bool) { return r.fill.Color, r.fill.Visible }

// StrokeColor returns the current stroke color.
func (r *Ring) StrokeColor() Color { return r.stroke.Color }

// Expand grows the ring so its outer edge reaches toRadius while
// cross-fading the fill from the ring's color to toColor and recoloring
// the stroke. Radius, fill and stroke animate together with an ease-out
// curve, starting after delay.
func (r *Ring) Expand(toRadius float64, toColor Color, duration, delay float64) {
	fitted := toRadius - r.lineWidth/2
	from := r.stroke.Color

	grow := NewTweenGroup(r.node, float32(duration), ease.OutQuad).
		Field(&r.radius, fitted).
		Field(&r.strokeWidth, r.lineWidth).
		After(float32(delay)).
		Tag(AnimRingExpand).
		Then(r.animationDone)
	grow.OnStart = func() { r.state = RingExpanding }
	grow.OnApply = r.refresh

	fill := NewTweenGroup(r.fill, float32(duration), ease.OutQuad).
		FieldColor(&r.fill.Color, toColor).
		After(float32(delay)).
		Tag(AnimRingFill).
		Then(r.animationDone)
	fill.OnStart = func() {
		r.fill.Color = from
		r.fill.Visible = true
	}

	stroke := NewTweenGroup(r.stroke, float32(duration), ease.OutQuad).
		FieldColor(&r.stroke.Color, toColor).
		After(float32(delay)).
		Tag(AnimRingStroke)

	r.anim.Add(grow)
	r.anim.Add(fill)
	r.anim.Add(stroke)
}

// Collapse thins the stroke to nothing while moving its path to toRadius.
// When this animation (and only this one) completes, the ring removes
// itself from its parent.
func (r *Ring) Collapse(toRadius, duration, delay float64) {
	g := NewTweenGroup(r.node, float32(duration), ease.OutQuad).
		Field(&r.radius, toRadius).
		Field(&r.strokeWidth, 0).
		After(float32(delay)).
		Tag(AnimRingCollapse).
		Then(r.animationDone)
	g.OnStart = func() { r.state = RingCollapsing }
	g.OnApply = r.refresh
	r.anim.Add(g)
}

func (r *Ring) animationDone(kind AnimationKind) {
	switch kind {
	case AnimRingExpand:
		if r.state == RingExpanding {
			r.state = RingExpanded
		}
	case AnimRingFill:
		r.fill.Visible = false
	case AnimRingCollapse:
		r.remove()
	}
}

func (r *Ring) remove() {
	if r.state == RingRemoved {
		return
	}
	r.state = RingRemoved
	logger.Debug("ring removed", "ring", r.node.Name)
	r.node.Dispose()
}

// refresh pushes radius and stroke width into the meshes.
func (r *Ring) refresh() {
	r.fill.SetScale(r.radius, r.radius)
	SetRingStroke(r.stroke, r.radius, r.strokeWidth)
}
