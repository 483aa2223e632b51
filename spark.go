package favebutton

import (
	"github.com/tanema/gween/ease"
)

// sparkGap is the distance between the two dots along the spark's axis.
const sparkGap = 4.0

// SparkState is a Spark's position in its one-way lifecycle.
type SparkState uint8

const (
	SparkHidden     SparkState = iota // alpha 0, waiting for IgniteShow
	SparkIgniting                     // growing outward
	SparkIgnited                      // fully grown
	SparkCollapsing                   // dots converging, swapping colors, shrinking
	SparkRemoved                      // detached and disposed; terminal
)

func (s SparkState) String() string {
	switch s {
	case SparkHidden:
		return "hidden"
	case SparkIgniting:
		return "igniting"
	case SparkIgnited:
		return "ignited"
	case SparkCollapsing:
		return "collapsing"
	case SparkRemoved:
		return "removed"
	}
	return "unknown"
}

// DotRadius holds the radii of a spark's two dots.
type DotRadius struct {
	First, Second float64
}

// Spark is one of the two-dot ornaments that radiate from a button when it
// gets selected. The spark's base sits on the button center and its axis
// points outward along its angle; the first dot is the outer one.
type Spark struct {
	node   *Node // base at the button center, rotated by angle
	first  *Node // outer dot
	second *Node // inner dot

	anim *Animator

	angle       float64 // degrees, clockwise from north
	dotRadius   DotRadius
	firstColor  Color
	secondColor Color

	length       float64 // base to outer end
	offset       float64 // extra spacing between the dots, <= 0 while converging
	firstRadius  float64 // current radius of the outer dot
	secondRadius float64 // current radius of the inner dot
	state        SparkState
}

// newSpark builds a hidden spark reaching radius from the center.
func newSpark(anim *Animator, name string, radius float64, colors DotColors, angle float64, dotRadius DotRadius) *Spark {
	s := &Spark{
		node:         NewContainer(name),
		first:        NewDisc(name + "-first"),
		second:       NewDisc(name + "-second"),
		anim:         anim,
		angle:        angle,
		dotRadius:    dotRadius,
		firstColor:   colors.First,
		secondColor:  colors.Second,
		length:       radius + dotRadius.diameters(),
		firstRadius:  dotRadius.First,
		secondRadius: dotRadius.Second,
	}
	s.node.Alpha = 0
	s.node.Rotation = degToRad(angle)
	s.first.Color = colors.First
	s.second.Color = colors.Second
	s.node.AddChild(s.second)
	s.node.AddChild(s.first)
	s.node.UserData = s
	s.layout()
	return s
}

func (d DotRadius) diameters() float64 {
	return d.First*2 + d.Second*2
}

// Node returns the spark's root node.
func (s *Spark) Node() *Node { return s.node }

// State returns the spark's lifecycle state.
func (s *Spark) State() SparkState { return s.state }

// Angle returns the spark's angle in degrees.
func (s *Spark) Angle() float64 { return s.angle }

// Colors returns the spark's configured dot colors.
func (s *Spark) Colors() DotColors { return DotColors{s.firstColor, s.secondColor} }

// Length returns the current distance from the base to the outer end.
func (s *Spark) Length() float64 { return s.length }

// DotColors returns the colors the dots currently show.
func (s *Spark) DotColors() DotColors { return DotColors{s.first.Color, s.second.Color} }

// DotRadii returns the dots' current radii.
func (s *Spark) DotRadii() DotRadius { return DotRadius{s.firstRadius, s.secondRadius} }

// IgniteShow makes the spark visible after delay and stretches it so the
// outer end reaches toRadius plus both dot diameters and the dot gap,
// easing out over 70% of duration.
func (s *Spark) IgniteShow(toRadius, duration, delay float64) {
	target := toRadius + s.dotRadius.diameters() + sparkGap

	reveal := NewTweenGroup(s.node, 0, ease.Linear).
		Field(&s.node.Alpha, 1).
		After(float32(delay)).
		Tag(AnimSparkReveal)

	grow := NewTweenGroup(s.node, float32(duration*0.7), ease.OutQuad).
		Field(&s.length, target).
		After(float32(delay)).
		Tag(AnimSparkShow).
		Then(s.animationDone)
	grow.OnStart = func() {
		if s.state == SparkHidden {
			s.state = SparkIgniting
		}
	}
	grow.OnApply = s.layout

	s.anim.Add(reveal)
	s.anim.Add(grow)
}

// IgniteHide closes the gap between the dots over half of duration, swaps
// their colors and shrinks the inner dot over duration, and shrinks the
// outer dot over 1.7x duration. Only that last animation removes the
// spark, so every shorter one gets to finish on screen.
func (s *Spark) IgniteHide(duration, delay float64) {
	converge := NewTweenGroup(s.node, float32(duration*0.5), ease.OutQuad).
		Field(&s.offset, -sparkGap).
		After(float32(delay)).
		Tag(AnimSparkConverge)
	converge.OnStart = func() { s.state = SparkCollapsing }
	converge.OnApply = s.layout

	swapFirst := NewTweenGroup(s.first, float32(duration), ease.OutQuad).
		FieldColor(&s.first.Color, s.secondColor).
		After(float32(delay)).
		Tag(AnimSparkSwap)
	swapSecond := NewTweenGroup(s.second, float32(duration), ease.OutQuad).
		FieldColor(&s.second.Color, s.firstColor).
		After(float32(delay)).
		Tag(AnimSparkSwap)

	shrink := NewTweenGroup(s.second, float32(duration), ease.OutQuad).
		Field(&s.secondRadius, 0).
		After(float32(delay)).
		Tag(AnimSparkShrink)
	shrink.OnApply = s.layout

	extinguish := NewTweenGroup(s.first, float32(duration*1.7), ease.OutQuad).
		Field(&s.firstRadius, 0).
		After(float32(delay)).
		Tag(AnimSparkExtinguish).
		Then(s.animationDone)
	extinguish.OnApply = s.layout

	s.anim.Add(converge)
	s.anim.Add(swapFirst)
	s.anim.Add(swapSecond)
	s.anim.Add(shrink)
	s.anim.Add(extinguish)
}

func (s *Spark) animationDone(kind AnimationKind) {
	switch kind {
	case AnimSparkShow:
		if s.state == SparkIgniting {
			s.state = SparkIgnited
		}
	case AnimSparkExtinguish:
		s.remove()
	}
}

func (s *Spark) remove() {
	if s.state == SparkRemoved {
		return
	}
	s.state = SparkRemoved
	logger.Debug("spark removed", "spark", s.node.Name, "angle", s.angle)
	s.node.Dispose()
}

// layout places the dots along the spark's axis. The axis points up
// (negative Y) before rotation. The inner dot keeps its slot below the
// outer end; the outer dot sits right above it, shifted by offset. Dots
// shrink around their own centers.
func (s *Spark) layout() {
	secondCenter := s.length - (s.dotRadius.First*2 + sparkGap) - s.dotRadius.Second
	firstCenter := secondCenter + s.dotRadius.Second + s.dotRadius.First + s.offset

	s.second.SetPosition(-s.dotRadius.First, -secondCenter)
	s.second.SetScale(s.secondRadius, s.secondRadius)
	s.first.SetPosition(s.dotRadius.Second, -firstCenter)
	s.first.SetScale(s.firstRadius, s.firstRadius)
}
