package favebutton

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree, the animator,
// input state and render buffers. Everything runs on the goroutine that
// calls Update (or Step) and Draw.
type Scene struct {
	root  *Node
	anim  Animator
	debug bool

	// ClearColor fills the screen before drawing when its alpha is nonzero.
	ClearColor Color

	updateFunc func() error

	// Render state
	commands []renderCommand

	// Input state
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	testRunner *TestRunner

	screenshotQueue []string
	screenshotDir   string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:     root,
		commands: make([]renderCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Animator returns the scene's animator. Buttons built with NewButton
// schedule on it; callers may add their own animations too.
func (s *Scene) Animator() *Animator {
	return &s.anim
}

// SetUpdateFunc registers fn to run at the end of every Update. A non-nil
// error returned from fn stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick at Ebitengine's tick rate, reading
// the hardware mouse and touches.
func (s *Scene) Update() error {
	s.step(1.0/float64(ebiten.TPS()), true)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Step advances the scene by dt seconds without reading hardware input.
// Injected input is still processed. Tests drive the scene with it.
func (s *Scene) Step(dt float64) {
	s.step(dt, false)
}

func (s *Scene) step(dt float64, hardware bool) {
	// Refresh world transforms first so hit testing sees this frame's
	// positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput(hardware)
	s.anim.Update(float32(dt))
}
