package favebutton

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// commandType identifies the kind of render command.
type commandType uint8

const (
	commandSprite commandType = iota // DrawImage
	commandMesh                      // DrawTriangles
	commandMask                      // fill color painted through a sprite's alpha
)

// renderCommand is a single draw instruction emitted during traversal, in
// painter order.
type renderCommand struct {
	kind      commandType
	node      *Node
	transform [6]float64
	color     Color // alpha already includes the node's world alpha
	image     *ebiten.Image

	// Mesh-only fields (slice headers, not copies of vertex data).
	verts []ebiten.Vertex
	inds  []uint16
}

// Draw renders the scene tree onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.collectCommands()
	s.submit(screen)
	s.flushScreenshots(screen)
}

// collectCommands refreshes world transforms and rebuilds the command list.
func (s *Scene) collectCommands() []renderCommand {
	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1.0, false)
	return s.commands
}

// traverse walks the node tree depth-first, updating transforms and
// emitting commands for visible, renderable nodes. A hidden node hides its
// subtree.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.Renderable && n.worldAlpha > 0 {
		if n.mask != nil {
			fill := n.Color
			fill.A *= n.worldAlpha
			s.emitMask(n, n.mask, n.worldTransform, fill)
		}
		switch n.Type {
		case NodeTypeSprite:
			if n.Image != nil {
				tint := n.Color
				tint.A *= n.worldAlpha
				s.commands = append(s.commands, renderCommand{
					kind:      commandSprite,
					node:      n,
					transform: n.worldTransform,
					color:     tint,
					image:     n.Image,
				})
			}
		case NodeTypeMesh:
			if len(n.Vertices) > 0 && len(n.Indices) > 0 {
				tint := n.Color
				tint.A *= n.worldAlpha
				dst := ensureTransformedVerts(n)
				transformVertices(n.Vertices, dst, n.worldTransform, tint)
				s.commands = append(s.commands, renderCommand{
					kind:      commandMesh,
					node:      n,
					transform: n.worldTransform,
					color:     tint,
					image:     n.MeshImage,
					verts:     dst,
					inds:      n.Indices,
				})
			}
		}
	}

	for _, child := range n.children {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// emitMask emits one mask command per visible sprite in the mask subtree.
// Mask nodes live outside the scene tree, so their transforms are chained
// onto the masked node's here on every frame.
func (s *Scene) emitMask(owner, m *Node, parent [6]float64, fill Color) {
	if !m.Visible {
		return
	}
	world := multiplyAffine(parent, computeLocalTransform(m))
	fill.A *= m.Alpha
	if m.Type == NodeTypeSprite && m.Image != nil && fill.A > 0 {
		s.commands = append(s.commands, renderCommand{
			kind:      commandMask,
			node:      owner,
			transform: world,
			color:     fill,
			image:     m.Image,
		})
	}
	for _, child := range m.children {
		s.emitMask(owner, child, world, fill)
	}
}

// submit draws the collected commands in order.
func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	var mop colorm.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.kind {
		case commandSprite:
			op.GeoM = commandGeoM(cmd)
			op.ColorScale.Reset()
			c := cmd.color
			op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
			target.DrawImage(cmd.image, &op)
		case commandMask:
			// Drop the glyph's own color and keep its alpha, then paint
			// the fill color through it.
			var cm colorm.ColorM
			c := cmd.color
			cm.Scale(0, 0, 0, c.A)
			cm.Translate(c.R, c.G, c.B, 0)
			mop.GeoM = commandGeoM(cmd)
			colorm.DrawImage(target, cmd.image, cm, &mop)
		case commandMesh:
			img := cmd.image
			if img == nil {
				img = ensureWhitePixel()
			}
			var triOp ebiten.DrawTrianglesOptions
			triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
			target.DrawTriangles(cmd.verts, cmd.inds, img, &triOp)
		}
	}
}

// commandGeoM converts a command's affine transform into an ebiten.GeoM.
func commandGeoM(cmd *renderCommand) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, cmd.transform[0])
	m.SetElement(1, 0, cmd.transform[1])
	m.SetElement(0, 1, cmd.transform[2])
	m.SetElement(1, 1, cmd.transform[3])
	m.SetElement(0, 2, cmd.transform[4])
	m.SetElement(1, 2, cmd.transform[5])
	return m
}
