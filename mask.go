package favebutton

// SetMask sets a mask node for this node. The masked node paints its Color
// through the alpha of every sprite in the mask's subtree. The mask node is
// NOT part of the scene tree; its transforms are relative to the masked node.
func (n *Node) SetMask(maskNode *Node) {
	if maskNode != nil && maskNode.Parent != nil {
		panic("favebutton: mask node must not be attached to the scene tree")
	}
	n.mask = maskNode
}

// ClearMask removes the mask from this node.
func (n *Node) ClearMask() {
	n.mask = nil
}

// GetMask returns the current mask node, or nil if no mask is set.
func (n *Node) GetMask() *Node {
	return n.mask
}
