package favebutton

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// heartMargin is the blank border around the heart, as a share of the
// glyph size, so the anti-aliased edge is never clipped.
const heartMargin = 0.04

// heartStart is where the outline begins: the notch between the lobes.
var heartStart = [2]float32{50, 30}

// heartCurves is the heart outline in a 100x100 box, clockwise from the
// notch. Each entry is a cubic's two control points and its end point.
var heartCurves = [...][6]float32{
	{50, 0, 100, 0, 100, 35},   // right lobe
	{100, 65, 50, 80, 50, 100}, // right flank down to the tip
	{50, 80, 0, 65, 0, 35},     // left flank
	{0, 0, 50, 0, 50, 30},      // left lobe back to the notch
}

// NewHeartGlyph returns a size x size heart shape usable as a Button glyph.
// Only the alpha channel carries the shape. Panics if size is not positive.
func NewHeartGlyph(size int) *ebiten.Image {
	if size <= 0 {
		panic("favebutton: heart glyph size must be positive")
	}
	img := ebiten.NewImage(size, size)
	vector.FillPath(img, heartPath(float32(size)), nil, &vector.DrawPathOptions{AntiAlias: true})
	return img
}

// heartPath traces heartCurves fitted into a size x size image.
func heartPath(size float32) *vector.Path {
	off, k := heartFit(size)
	var p vector.Path
	p.MoveTo(off+heartStart[0]*k, off+heartStart[1]*k)
	for _, c := range heartCurves {
		p.CubicTo(off+c[0]*k, off+c[1]*k, off+c[2]*k, off+c[3]*k, off+c[4]*k, off+c[5]*k)
	}
	p.Close()
	return &p
}

// heartFit returns the offset and scale mapping the 100x100 outline box
// into a size x size image inside the margin.
func heartFit(size float32) (offset, scale float32) {
	offset = size * heartMargin
	return offset, (size - 2*offset) / 100
}
