package favebutton

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestLocalTransformIdentity(t *testing.T) {
	assertMatrix(t, "identity", computeLocalTransform(NewContainer("n")), identityTransform)
}

func TestLocalTransformTranslateScale(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(10, 20)
	n.SetScale(2, 3)
	assertMatrix(t, "ts", computeLocalTransform(n), [6]float64{2, 0, 0, 3, 10, 20})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("n")
	n.SetRotation(math.Pi / 2)
	// cos(90)=0, sin(90)=1 -> a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", computeLocalTransform(n), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(100, 50)
	n.SetPivot(5, 5)
	n.SetScale(2, 2)
	m := computeLocalTransform(n)

	// The pivot lands on the position regardless of scale.
	x, y := transformPoint(m, 5, 5)
	assertNear(t, "pivot x", x, 100)
	assertNear(t, "pivot y", y, 50)
}

func TestRotationPointsClockwiseFromNorth(t *testing.T) {
	// Screen Y grows downward, so a positive angle turns "up" towards "right".
	n := NewContainer("n")
	n.SetRotation(degToRad(90))
	x, y := transformPoint(computeLocalTransform(n), 0, -1)
	assertNear(t, "x", x, 1)
	assertNear(t, "y", y, 0)
}

func TestInvertAffineRoundTrip(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(12, -4)
	n.SetRotation(0.7)
	n.SetScale(1.5, 0.5)
	m := computeLocalTransform(n)
	assertMatrix(t, "m*inv", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertSingular(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{}), identityTransform)
}

func TestWorldTransformChain(t *testing.T) {
	root := NewContainer("root")
	p := NewContainer("p")
	c := NewContainer("c")
	root.AddChild(p)
	p.AddChild(c)
	p.SetPosition(100, 100)
	p.SetScale(2, 2)
	p.SetAlpha(0.5)
	c.SetPosition(10, 0)
	c.SetAlpha(0.5)

	updateWorldTransform(root, identityTransform, 1, false)

	x, y := c.LocalToWorld(0, 0)
	assertNear(t, "x", x, 120)
	assertNear(t, "y", y, 100)
	assertNear(t, "alpha", c.worldAlpha, 0.25)

	lx, ly := c.WorldToLocal(120, 100)
	assertNear(t, "lx", lx, 0)
	assertNear(t, "ly", ly, 0)
}

func TestWorldTransformDirtyPropagates(t *testing.T) {
	root := NewContainer("root")
	p := NewContainer("p")
	c := NewContainer("c")
	root.AddChild(p)
	p.AddChild(c)
	updateWorldTransform(root, identityTransform, 1, false)

	p.SetPosition(30, 40)
	updateWorldTransform(root, identityTransform, 1, false)

	x, y := c.LocalToWorld(0, 0)
	assertNear(t, "x", x, 30)
	assertNear(t, "y", y, 40)
}

func TestDegToRad(t *testing.T) {
	assertNear(t, "180", degToRad(180), math.Pi)
	assertNear(t, "10", degToRad(10), math.Pi/18)
}
