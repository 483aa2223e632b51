package favebutton

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestSpark(a *Animator, angle float64) (*Spark, *Node) {
	parent := NewContainer("parent")
	sp := newSpark(a, "spark", 40, DotColors{First: red, Second: blue}, angle, DotRadius{First: 3, Second: 2})
	parent.AddChild(sp.Node())
	return sp, parent
}

func TestSparkConstruction(t *testing.T) {
	var a Animator
	sp, _ := newTestSpark(&a, 90)

	if sp.State() != SparkHidden || sp.Node().Alpha != 0 {
		t.Errorf("state=%v alpha=%v, want hidden", sp.State(), sp.Node().Alpha)
	}
	assertNear(t, "rotation", sp.Node().Rotation, math.Pi/2)
	// Reach plus both dot diameters.
	assertNear(t, "length", sp.Length(), 50)
	if diff := cmp.Diff(DotColors{First: red, Second: blue}, sp.DotColors()); diff != "" {
		t.Errorf("dot colors (-want +got):\n%s", diff)
	}
	if sp.Node().UserData != sp {
		t.Error("node should carry the spark as UserData")
	}
}

func TestSparkLayout(t *testing.T) {
	var a Animator
	sp, _ := newTestSpark(&a, 0)

	// Inner dot: 4px gap and the outer dot's diameter below the top.
	assertNear(t, "second x", sp.second.X, -3)
	assertNear(t, "second y", sp.second.Y, -38)
	assertNear(t, "second r", sp.second.ScaleX, 2)
	// Outer dot sits right above the inner one.
	assertNear(t, "first x", sp.first.X, 2)
	assertNear(t, "first y", sp.first.Y, -43)
	assertNear(t, "first r", sp.first.ScaleX, 3)
}

func TestSparkIgniteShow(t *testing.T) {
	var a Animator
	sp, _ := newTestSpark(&a, 10)
	sp.IgniteShow(60, 0.4, 0.1)

	advance(&a, 0.05)
	if sp.Node().Alpha != 0 || sp.State() != SparkHidden {
		t.Errorf("alpha=%v state=%v before delay", sp.Node().Alpha, sp.State())
	}

	advance(&a, 0.1)
	if sp.Node().Alpha != 1 {
		t.Errorf("alpha = %v after delay, want 1", sp.Node().Alpha)
	}
	if sp.State() != SparkIgniting {
		t.Errorf("state = %v, want igniting", sp.State())
	}

	advance(&a, 0.3)
	if sp.State() != SparkIgnited {
		t.Errorf("state = %v, want ignited", sp.State())
	}
	// Target reach, both diameters and the dot gap.
	assertNear(t, "length", sp.Length(), 60+10+4)
}

func TestSparkIgniteHide(t *testing.T) {
	var a Animator
	sp, parent := newTestSpark(&a, 10)
	sp.IgniteHide(0.5, 0)

	advance(&a, 0.3)
	if sp.State() != SparkCollapsing {
		t.Errorf("state = %v, want collapsing", sp.State())
	}
	assertNear(t, "offset", sp.offset, -sparkGap)

	advance(&a, 0.25)
	if diff := cmp.Diff(DotColors{First: blue, Second: red}, sp.DotColors()); diff != "" {
		t.Errorf("dots should swap colors (-want +got):\n%s", diff)
	}
	if got := sp.DotRadii().Second; got != 0 {
		t.Errorf("second radius = %v, want 0", got)
	}
	if sp.DotRadii().First <= 0 {
		t.Error("first dot shrank too early")
	}
	if parent.NumChildren() != 1 {
		t.Fatal("spark removed before its longest animation finished")
	}

	// Longest animation: 1.7 x duration.
	advance(&a, 0.35)
	if sp.State() != SparkRemoved || parent.NumChildren() != 0 || !sp.Node().IsDisposed() {
		t.Errorf("state=%v children=%d, want removed", sp.State(), parent.NumChildren())
	}
	if a.Len() != 0 {
		t.Errorf("%d animations still scheduled", a.Len())
	}
}

func TestSparkHideOverlapsShow(t *testing.T) {
	var a Animator
	sp, parent := newTestSpark(&a, 10)
	sp.IgniteShow(60, sparkShowDuration, sparkShowDelay)
	sp.IgniteHide(sparkHideDuration, sparkHideDelay)

	advance(&a, 0.5)
	if parent.NumChildren() != 1 || sp.Node().Alpha != 1 {
		t.Fatal("spark should still be showing")
	}
	advance(&a, sparkHideDelay+sparkHideDuration*1.7)
	if parent.NumChildren() != 0 {
		t.Error("spark should be gone after its hide animation")
	}
}

func TestSparkStateString(t *testing.T) {
	if SparkIgnited.String() != "ignited" || SparkState(99).String() != "unknown" {
		t.Error("unexpected SparkState names")
	}
}
