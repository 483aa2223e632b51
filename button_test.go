package favebutton

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
)

// stepFor runs the scene for at least seconds, one frame at a time.
func stepFor(s *Scene, seconds float64) {
	for i, n := 0, int(math.Ceil(seconds/frame)); i < n; i++ {
		s.Step(frame)
	}
}

func newTestButton(s *Scene, opts Options) *Button {
	b := s.NewButton("heart", ebiten.NewImage(8, 8), opts)
	b.Node().SetPosition(100, 100)
	s.Root().AddChild(b.Node())
	return b
}

// spawned returns the rings and sparks currently attached to parent.
func spawned(parent *Node) (rings []*Ring, sparks []*Spark) {
	for _, c := range parent.Children() {
		switch v := c.UserData.(type) {
		case *Ring:
			rings = append(rings, v)
		case *Spark:
			sparks = append(sparks, v)
		}
	}
	return rings, sparks
}

type settleRecorder struct {
	NopDelegate
	calls []bool
}

func (r *settleRecorder) SelectionSettled(_ *Button, selected bool) {
	r.calls = append(r.calls, selected)
}

func TestButtonStartsUnselected(t *testing.T) {
	s := NewScene()
	opts := DefaultOptions()
	b := newTestButton(s, opts)

	if b.Selected() {
		t.Error("new button should be unselected")
	}
	if b.Icon().Color() != opts.NormalColor {
		t.Errorf("icon color = %v, want normal", b.Icon().Color())
	}
	if b.Node().UserData != b || !b.Node().Interactable {
		t.Error("button node should be interactable and carry the button")
	}
}

func TestButtonSelectSpawnsRingAndSparks(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())
	b.Toggle()

	if !b.Selected() {
		t.Fatal("toggle should select")
	}
	rings, sparks := spawned(s.Root())
	if len(rings) != 1 || len(sparks) != 7 {
		t.Fatalf("spawned %d rings and %d sparks, want 1 and 7", len(rings), len(sparks))
	}

	// Effects stack below the button, centered on it.
	if last := s.Root().ChildAt(s.Root().NumChildren() - 1); last != b.Node() {
		t.Errorf("topmost child = %q, want the button", last.Name)
	}
	for _, c := range s.Root().Children() {
		if c.X != 100 || c.Y != 100 {
			t.Errorf("%s at (%v, %v), want (100, 100)", c.Name, c.X, c.Y)
		}
	}
	if rings[0].Node().Name != "heart-1-ring" {
		t.Errorf("ring name = %q", rings[0].Node().Name)
	}
}

func TestButtonEffectLifetimes(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())
	b.Toggle()

	stepFor(s, 0.15)
	rings, _ := spawned(s.Root())
	if len(rings) != 1 || rings[0].State() != RingCollapsing {
		t.Fatalf("ring should be collapsing at 0.15s, got %d rings", len(rings))
	}

	stepFor(s, 0.12)
	if rings, _ := spawned(s.Root()); len(rings) != 0 {
		t.Error("ring should be removed after expand and collapse")
	}

	stepFor(s, 0.93)
	if _, sparks := spawned(s.Root()); len(sparks) != 7 {
		t.Errorf("%d sparks at 1.2s, want 7", len(sparks))
	}

	stepFor(s, 0.25)
	if _, sparks := spawned(s.Root()); len(sparks) != 0 {
		t.Errorf("%d sparks left after their hide animation", len(sparks))
	}
	if s.Root().NumChildren() != 1 {
		t.Errorf("root has %d children, want only the button", s.Root().NumChildren())
	}
	if s.Animator().Len() != 0 {
		t.Errorf("%d animations still scheduled", s.Animator().Len())
	}
}

func TestButtonSparkAngles(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())
	b.Toggle()

	_, sparks := spawned(s.Root())
	// Spawned in order, each inserted just below the button.
	for i, sp := range sparks {
		want := float64(i)*360/7 + 10
		assertNear(t, sp.Node().Name, sp.Angle(), want)
		assertNear(t, sp.Node().Name+" rotation", sp.Node().Rotation, degToRad(want))
	}
}

func TestSparkAngleTable(t *testing.T) {
	tests := []struct {
		i, n int
		want float64
	}{
		{0, 7, 10},
		{1, 4, 100},
		{3, 4, 280},
		{0, 1, 10},
		{5, 6, 310},
	}
	for _, tt := range tests {
		assertNear(t, "angle", sparkAngle(tt.i, tt.n), tt.want)
	}
}

func TestButtonPaletteWraps(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())

	palette := []DotColors{
		{First: red, Second: blue},
		{First: blue, Second: red},
		{First: ColorWhite, Second: red},
	}
	queries := 0
	b.Delegate = DelegateFuncs{Palette: func(*Button) []DotColors {
		queries++
		return palette
	}}
	b.Toggle()

	if queries != 1 {
		t.Errorf("palette queried %d times, want once per selection", queries)
	}
	_, sparks := spawned(s.Root())
	var got []DotColors
	for _, sp := range sparks {
		got = append(got, sp.Colors())
	}
	want := []DotColors{palette[0], palette[1], palette[2], palette[0], palette[1], palette[2], palette[0]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spark colors (-want +got):\n%s", diff)
	}
}

func TestButtonDefaultDotColors(t *testing.T) {
	s := NewScene()
	opts := DefaultOptions()
	opts.SparkCount = 3
	b := newTestButton(s, opts)
	b.Delegate = DelegateFuncs{Palette: func(*Button) []DotColors { return []DotColors{} }}
	b.Toggle()

	_, sparks := spawned(s.Root())
	if len(sparks) != 3 {
		t.Fatalf("%d sparks, want 3", len(sparks))
	}
	want := DotColors{First: opts.DotFirstColor, Second: opts.DotSecondColor}
	for _, sp := range sparks {
		if diff := cmp.Diff(want, sp.Colors()); diff != "" {
			t.Errorf("%s colors (-want +got):\n%s", sp.Node().Name, diff)
		}
	}
}

func TestButtonSetSelectedIdempotent(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())

	b.SetSelected(false, true)
	if s.Animator().Len() != 0 || s.Root().NumChildren() != 1 {
		t.Error("setting the current state should do nothing")
	}

	b.SetSelected(true, false)
	if !b.Selected() || b.Icon().Color() != b.Options().SelectedColor {
		t.Error("SetSelected(true, false) should recolor at once")
	}
	if s.Animator().Len() != 0 || s.Root().NumChildren() != 1 {
		t.Error("unanimated selection should not animate or spawn")
	}

	b.SetSelected(true, true)
	if s.Animator().Len() != 0 {
		t.Error("repeating the current state should not animate")
	}
}

func TestButtonSetSelectedAnimated(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())
	rec := &settleRecorder{}
	b.Delegate = rec

	b.SetSelected(true, true)
	if rings, sparks := spawned(s.Root()); len(rings) != 1 || len(sparks) != 7 {
		t.Errorf("spawned %d rings and %d sparks", len(rings), len(sparks))
	}
	stepFor(s, 1.5)
	if len(rec.calls) != 0 {
		t.Errorf("SetSelected notified the delegate %d times", len(rec.calls))
	}
}

func TestButtonDeselectSpawnsNothing(t *testing.T) {
	s := NewScene()
	opts := DefaultOptions()
	b := newTestButton(s, opts)
	b.SetSelected(true, false)

	b.Toggle()
	if b.Selected() {
		t.Fatal("toggle should deselect")
	}
	if rings, sparks := spawned(s.Root()); len(rings) != 0 || len(sparks) != 0 {
		t.Errorf("deselect spawned %d rings and %d sparks", len(rings), len(sparks))
	}
	if b.Icon().Color() != opts.NormalColor {
		t.Errorf("icon color = %v, want normal", b.Icon().Color())
	}
}

func TestButtonSettleNotification(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())
	rec := &settleRecorder{}
	b.Delegate = rec

	b.Toggle()
	stepFor(s, 0.9)
	if len(rec.calls) != 0 {
		t.Fatal("settled before the select duration elapsed")
	}
	stepFor(s, 0.15)
	if diff := cmp.Diff([]bool{true}, rec.calls); diff != "" {
		t.Errorf("settle calls (-want +got):\n%s", diff)
	}
}

func TestButtonRapidToggleReportsCurrentState(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())
	rec := &settleRecorder{}
	b.Delegate = rec

	b.Toggle()
	stepFor(s, 0.1)
	b.Toggle()
	stepFor(s, 1.2)

	if diff := cmp.Diff([]bool{false, false}, rec.calls); diff != "" {
		t.Errorf("settle calls (-want +got):\n%s", diff)
	}
}

func TestButtonOverlappingSelections(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())

	b.Toggle()
	stepFor(s, 0.05)
	b.Toggle()
	b.Toggle()

	rings, sparks := spawned(s.Root())
	if len(rings) != 2 || len(sparks) != 14 {
		t.Fatalf("spawned %d rings and %d sparks, want 2 and 14", len(rings), len(sparks))
	}
	if rings[1].Node().Name != "heart-2-ring" {
		t.Errorf("second ring = %q, want heart-2-ring", rings[1].Node().Name)
	}
	stepFor(s, 2)
	if s.Root().NumChildren() != 1 {
		t.Errorf("root has %d children after all effects ended", s.Root().NumChildren())
	}
}

func TestButtonDisposedSkipsSettle(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())
	rec := &settleRecorder{}
	b.Delegate = rec

	b.Toggle()
	b.Node().Dispose()
	stepFor(s, 1.5)
	if len(rec.calls) != 0 {
		t.Error("disposed button should not notify")
	}
}

func TestButtonWithoutParent(t *testing.T) {
	s := NewScene()
	b := s.NewButton("orphan", ebiten.NewImage(8, 8), DefaultOptions())
	b.Toggle()
	stepFor(s, 0.5)
	if !b.Selected() {
		t.Error("toggle should still select")
	}
	if s.Root().NumChildren() != 0 {
		t.Error("nothing should be spawned into the scene")
	}
}

func TestNewButtonPanics(t *testing.T) {
	bad := DefaultOptions()
	bad.SparkCount = 0

	tests := []struct {
		name  string
		glyph *ebiten.Image
		opts  Options
	}{
		{"nil glyph", nil, DefaultOptions()},
		{"no sparks", ebiten.NewImage(8, 8), bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewScene().NewButton("b", tt.glyph, tt.opts)
		})
	}
}

func TestButtonClickToggles(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())

	s.InjectClick(105, 95)
	s.Step(frame)
	if b.Selected() {
		t.Fatal("click fired on press")
	}
	s.Step(frame)
	if !b.Selected() {
		t.Error("click inside the button should select it")
	}
}

func TestButtonClickOutsideIgnored(t *testing.T) {
	s := NewScene()
	b := newTestButton(s, DefaultOptions())

	// Inside the bounding box, outside the circle.
	s.InjectClick(100+20, 100+20)
	stepFor(s, 3*frame)
	if b.Selected() {
		t.Error("click outside the hit circle should not toggle")
	}
}
