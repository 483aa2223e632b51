// Package favebutton is an animated "favorite" toggle button for
// [Ebitengine].
//
// Selecting a [Button] plays a short choreography: the glyph recolors and
// pulses on an elastic curve, a [Ring] flashes out from behind it and a
// burst of two-tone [Spark] ornaments radiates and fades. Deselecting only
// pulses the glyph back to its normal color.
//
// # Quick start
//
//	scene := favebutton.NewScene()
//	btn := scene.NewButton("heart", favebutton.NewHeartGlyph(64), favebutton.DefaultOptions())
//	btn.Node().SetPosition(160, 120)
//	scene.Root().AddChild(btn.Node())
//	favebutton.Run(scene, favebutton.RunConfig{
//		Title: "Fave", Width: 320, Height: 240,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scene graph
//
// Buttons live in a small retained-mode scene graph. Every visual element
// is a [Node]; children inherit their parent's transform and alpha. Ring
// and sparks are inserted into the button's parent directly below the
// button and remove themselves when their last animation ends, so several
// selections can overlap without interfering.
//
// # Animation
//
// All animation runs on the scene's [Animator], advanced once per
// [Scene.Update] or [Scene.Step]. Field tweens use [gween]; the glyph
// pulse replays a sequence precomputed by [GenerateTween] with the
// extended elastic ease-out from this package.
//
// # Delegate
//
// Assign a [Delegate] to learn when a toggle has settled and to supply a
// per-spark color palette. [NopDelegate] and [DelegateFuncs] cover the
// common cases.
//
// # Themes
//
// [LoadTheme] reads colors, spark count and size from YAML.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package favebutton
