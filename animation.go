package favebutton

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationKind tags an animation so a completion callback can tell which
// of several concurrent animations on the same actor has finished.
type AnimationKind uint8

const (
	AnimGeneric         AnimationKind = iota
	AnimIconScale                     // glyph keyframe pulse
	AnimIconReveal                    // glyph visibility pulse
	AnimRingExpand                    // ring radius and stroke width grow
	AnimRingFill                      // ring fill cross-fade
	AnimRingStroke                    // ring stroke recolor
	AnimRingCollapse                  // ring stroke thins out; terminal
	AnimSparkReveal                   // spark becomes visible
	AnimSparkShow                     // spark grows outward
	AnimSparkConverge                 // dot gap closes
	AnimSparkSwap                     // dot colors swap
	AnimSparkShrink                   // second dot shrinks
	AnimSparkExtinguish               // first dot shrinks; terminal
	AnimSettle                        // delegate settle notification
)

var animationKindNames = [...]string{
	AnimGeneric:         "generic",
	AnimIconScale:       "icon-scale",
	AnimIconReveal:      "icon-reveal",
	AnimRingExpand:      "ring-expand",
	AnimRingFill:        "ring-fill",
	AnimRingStroke:      "ring-stroke",
	AnimRingCollapse:    "ring-collapse",
	AnimSparkReveal:     "spark-reveal",
	AnimSparkShow:       "spark-show",
	AnimSparkConverge:   "spark-converge",
	AnimSparkSwap:       "spark-swap",
	AnimSparkShrink:     "spark-shrink",
	AnimSparkExtinguish: "spark-extinguish",
	AnimSettle:          "settle",
}

func (k AnimationKind) String() string {
	if int(k) < len(animationKindNames) {
		return animationKindNames[k]
	}
	return "unknown"
}

// Animation is anything the Animator can advance once per frame.
type Animation interface {
	Update(dt float32)
	Finished() bool
}

// --- TweenGroup ---

// TweenGroup animates up to 4 float64 fields simultaneously with one
// duration and easing. Start values are captured when the delay elapses,
// not at construction, so a group picks up wherever an earlier animation
// left its fields. If the target node is disposed, the group stops
// without firing OnFinish.
type TweenGroup struct {
	Kind  AnimationKind
	Delay float32
	// OnStart runs once, right before start values are captured.
	OnStart func()
	// OnApply runs after every frame's field writes.
	OnApply func()
	// OnFinish runs once when every field reached its target.
	OnFinish func(AnimationKind)
	Done     bool

	tweens   [4]*gween.Tween
	fields   [4]*float64
	to       [4]float64
	count    int
	duration float32
	fn       ease.TweenFunc
	target   *Node
	elapsed  float32
	started  bool
}

// NewTweenGroup creates an empty group over duration seconds. Add fields
// with Field before handing it to an Animator.
func NewTweenGroup(target *Node, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenGroup{target: target, duration: duration, fn: fn}
}

// Field adds a field to animate towards to. Panics past 4 fields.
func (g *TweenGroup) Field(field *float64, to float64) *TweenGroup {
	if g.count == len(g.fields) {
		panic("favebutton: TweenGroup holds at most 4 fields")
	}
	g.fields[g.count] = field
	g.to[g.count] = to
	g.count++
	return g
}

// FieldColor adds all four channels of c, animating towards to.
func (g *TweenGroup) FieldColor(c *Color, to Color) *TweenGroup {
	return g.Field(&c.R, to.R).Field(&c.G, to.G).Field(&c.B, to.B).Field(&c.A, to.A)
}

// After sets the start delay in seconds.
func (g *TweenGroup) After(delay float32) *TweenGroup {
	g.Delay = delay
	return g
}

// Tag sets the group's kind.
func (g *TweenGroup) Tag(kind AnimationKind) *TweenGroup {
	g.Kind = kind
	return g
}

// Then sets the completion callback.
func (g *TweenGroup) Then(fn func(AnimationKind)) *TweenGroup {
	g.OnFinish = fn
	return g
}

// Finished reports whether the group completed or was cancelled.
func (g *TweenGroup) Finished() bool { return g.Done }

// Started reports whether the delay has elapsed.
func (g *TweenGroup) Started() bool { return g.started }

// Cancel stops the group where it is. OnFinish does not run.
func (g *TweenGroup) Cancel() { g.Done = true }

// Update advances the group by dt seconds and writes the new values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	if !g.started {
		g.elapsed += dt
		if g.elapsed < g.Delay {
			return
		}
		dt = g.elapsed - g.Delay
		g.start()
		if g.duration <= 0 {
			g.apply()
			g.finish()
			return
		}
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if finished {
			*g.fields[i] = g.to[i]
		} else {
			allDone = false
		}
	}
	g.apply()
	if allDone {
		g.finish()
	}
}

func (g *TweenGroup) start() {
	g.started = true
	if g.OnStart != nil {
		g.OnStart()
	}
	for i := 0; i < g.count; i++ {
		if g.duration <= 0 {
			*g.fields[i] = g.to[i]
			continue
		}
		g.tweens[i] = gween.New(float32(*g.fields[i]), float32(g.to[i]), g.duration, g.fn)
	}
}

func (g *TweenGroup) apply() {
	if g.target != nil {
		g.target.MarkDirty()
	}
	if g.OnApply != nil {
		g.OnApply()
	}
}

func (g *TweenGroup) finish() {
	g.Done = true
	if g.OnFinish != nil {
		g.OnFinish(g.Kind)
	}
}

// --- Keyframes ---

// Keyframes plays a precomputed value sequence into one or more fields,
// spreading the values evenly over the duration and interpolating linearly
// between neighbors. When playback ends the fields return to Rest.
type Keyframes struct {
	Kind     AnimationKind
	Delay    float32
	Rest     float64
	OnFinish func(AnimationKind)
	Done     bool

	values   []float64
	fields   []*float64
	duration float32
	target   *Node
	elapsed  float32
}

// NewKeyframes creates a keyframe track. values is read, never modified,
// so a cached slice may be shared between tracks.
func NewKeyframes(target *Node, values []float64, duration float32, fields ...*float64) *Keyframes {
	return &Keyframes{values: values, fields: fields, duration: duration, target: target, Rest: 1}
}

// Finished reports whether playback completed or was cancelled.
func (k *Keyframes) Finished() bool { return k.Done }

// Cancel stops playback and restores the rest value.
func (k *Keyframes) Cancel() {
	if k.Done {
		return
	}
	k.Done = true
	k.write(k.Rest)
}

// Update advances playback by dt seconds.
func (k *Keyframes) Update(dt float32) {
	if k.Done {
		return
	}
	if k.target != nil && k.target.IsDisposed() {
		k.Done = true
		return
	}
	k.elapsed += dt
	local := k.elapsed - k.Delay
	if local < 0 {
		return
	}
	if local >= k.duration || len(k.values) == 0 {
		k.write(k.Rest)
		k.Done = true
		if k.OnFinish != nil {
			k.OnFinish(k.Kind)
		}
		return
	}
	k.write(k.sample(float64(local / k.duration)))
}

// sample returns the interpolated value at normalized position u in [0, 1).
func (k *Keyframes) sample(u float64) float64 {
	if len(k.values) == 1 {
		return k.values[0]
	}
	pos := u * float64(len(k.values)-1)
	i := int(pos)
	if i >= len(k.values)-1 {
		return k.values[len(k.values)-1]
	}
	frac := pos - float64(i)
	return k.values[i] + (k.values[i+1]-k.values[i])*frac
}

func (k *Keyframes) write(v float64) {
	for _, f := range k.fields {
		*f = v
	}
	if k.target != nil {
		k.target.MarkDirty()
	}
}

// --- Timer ---

// Timer runs a function once after a delay.
type Timer struct {
	Kind  AnimationKind
	Delay float32
	Done  bool

	fn      func()
	elapsed float32
}

// Finished reports whether the timer fired or was cancelled.
func (t *Timer) Finished() bool { return t.Done }

// Cancel prevents the timer from firing.
func (t *Timer) Cancel() { t.Done = true }

// Update advances the timer by dt seconds and fires it once due.
func (t *Timer) Update(dt float32) {
	if t.Done {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.Delay {
		return
	}
	t.Done = true
	t.fn()
}

// --- Animator ---

// Animator advances every running animation of a scene once per frame and
// drops the finished ones. Animations added while the Animator is updating
// (from a callback) begin on the following Update.
type Animator struct {
	active   []Animation
	incoming []Animation
	updating bool
}

// Add schedules anim. A nil anim is ignored.
func (a *Animator) Add(anim Animation) {
	if anim == nil {
		return
	}
	if a.updating {
		a.incoming = append(a.incoming, anim)
		return
	}
	a.active = append(a.active, anim)
}

// After schedules fn to run once delay seconds from now.
func (a *Animator) After(delay float32, kind AnimationKind, fn func()) *Timer {
	t := &Timer{Kind: kind, Delay: delay, fn: fn}
	a.Add(t)
	return t
}

// Len returns the number of scheduled animations that have not finished.
func (a *Animator) Len() int {
	n := 0
	for _, anim := range a.active {
		if !anim.Finished() {
			n++
		}
	}
	for _, anim := range a.incoming {
		if !anim.Finished() {
			n++
		}
	}
	return n
}

// Update advances all animations by dt seconds.
func (a *Animator) Update(dt float32) {
	a.updating = true
	for _, anim := range a.active {
		anim.Update(dt)
	}
	a.updating = false

	kept := a.active[:0]
	for _, anim := range a.active {
		if !anim.Finished() {
			kept = append(kept, anim)
		}
	}
	clear(a.active[len(kept):])
	a.active = append(kept, a.incoming...)
	clear(a.incoming)
	a.incoming = a.incoming[:0]
}
