package favebutton

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// circleSegments is the number of edge segments used for discs and rings.
const circleSegments = 48

// NewDisc creates an untextured disc mesh of radius 1 centered on the local
// origin. Scale the node by the desired radius; Color sets the fill.
func NewDisc(name string) *Node {
	verts, inds := buildDiscFan(circleSegments)
	return NewMesh(name, nil, verts, inds)
}

// NewStroke creates an empty annulus mesh. Call SetRingStroke to give it
// geometry.
func NewStroke(name string) *Node {
	return NewMesh(name, nil, nil, nil)
}

// buildDiscFan generates a unit disc: one hub vertex plus segments rim
// vertices, 3*segments indices.
func buildDiscFan(segments int) ([]ebiten.Vertex, []uint16) {
	verts := make([]ebiten.Vertex, segments+1)
	inds := make([]uint16, segments*3)
	verts[0] = whiteVertex(0, 0)
	for i := 0; i < segments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		verts[i+1] = whiteVertex(cos, sin)
	}
	for i := 0; i < segments; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16((i+1)%segments + 1)
	}
	return verts, inds
}

// SetRingStroke rebuilds n as a circular stroke of the given width centered
// on a path of the given radius. The stroke straddles the path, so the
// outer edge sits at radius + width/2. A non-positive width clears the mesh.
func SetRingStroke(n *Node, radius, width float64) {
	if width <= 0 || radius+width/2 <= 0 {
		n.Vertices = n.Vertices[:0]
		n.Indices = n.Indices[:0]
		return
	}
	inner := math.Max(radius-width/2, 0)
	outer := radius + width/2

	nv := circleSegments * 2
	ni := circleSegments * 6
	if cap(n.Vertices) < nv {
		n.Vertices = make([]ebiten.Vertex, nv)
	}
	n.Vertices = n.Vertices[:nv]
	if cap(n.Indices) < ni {
		n.Indices = make([]uint16, ni)
	}
	n.Indices = n.Indices[:ni]

	for i := 0; i < circleSegments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(circleSegments))
		n.Vertices[i*2] = whiteVertex(cos*inner, sin*inner)
		n.Vertices[i*2+1] = whiteVertex(cos*outer, sin*outer)

		j := (i + 1) % circleSegments
		in0, out0 := uint16(i*2), uint16(i*2+1)
		in1, out1 := uint16(j*2), uint16(j*2+1)
		k := i * 6
		n.Indices[k+0] = in0
		n.Indices[k+1] = out0
		n.Indices[k+2] = out1
		n.Indices[k+3] = in0
		n.Indices[k+4] = out1
		n.Indices[k+5] = in1
	}
}

// whiteVertex maps a position onto the center of the white pixel.
func whiteVertex(x, y float64) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
	}
}

// transformVertices applies an affine transform and color tint to src,
// writing into dst. Output colors are premultiplied by the tint alpha.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// ensureTransformedVerts grows the node's scratch vertex buffer to fit
// len(n.Vertices) and returns it. The buffer never shrinks.
func ensureTransformedVerts(n *Node) []ebiten.Vertex {
	need := len(n.Vertices)
	if cap(n.transformedVerts) < need {
		n.transformedVerts = make([]ebiten.Vertex, need)
	}
	n.transformedVerts = n.transformedVerts[:need]
	return n.transformedVerts
}

// --- White pixel singleton (no sync.Once; the scene is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
