package scrubline

// NodeType selects how a Node draws itself.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // groups children, draws nothing
	NodeTypeSprite                    // solid rectangle
	NodeTypeText                      // draws its TextBlock
)

// Node is one element of the scene tree. The render sink writes styles into
// nodes; the renderer walks the tree each frame. All node kinds share one
// struct so drawing needs no interface dispatch.
type Node struct {
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	// Local transform. Scale and rotation apply about the pivot, which is
	// in local pixels.
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians
	SkewX, SkewY   float64 // radians
	PivotX, PivotY float64

	// Width and Height size a sprite before scaling. On a container they
	// are informational, except that Clip uses them.
	Width, Height float64

	Alpha   float64
	Visible bool
	// Clip restricts descendants to the Width x Height rectangle.
	Clip bool
	// ZIndex orders siblings; higher draws later.
	ZIndex int

	Color Color
	// Blur is a radius in pixels applied to the node and its subtree.
	Blur float64

	TextBlock *TextBlock

	world          affine
	worldAlpha     float64
	transformDirty bool

	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

func newNode(name string, typ NodeType) *Node {
	return &Node{
		Name:           name,
		Type:           typ,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Visible:        true,
		Color:          ColorWhite,
		transformDirty: true,
		childrenSorted: true,
	}
}

// NewContainer creates a node that only groups children.
func NewContainer(name string) *Node {
	return newNode(name, NodeTypeContainer)
}

// NewRect creates a w x h rectangle filled with c.
func NewRect(name string, w, h float64, c Color) *Node {
	n := newNode(name, NodeTypeSprite)
	n.Width, n.Height = w, h
	n.Color = c
	return n
}

// NewText creates a node drawing content with font.
func NewText(name, content string, font Font) *Node {
	n := newNode(name, NodeTypeText)
	n.TextBlock = &TextBlock{Content: content, Font: font, Color: ColorWhite}
	return n
}

// AddChild appends child, detaching it from any previous parent first.
// It panics on a nil child or when child is an ancestor of n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scrubline: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	for p := n; p != nil; p = p.Parent {
		if p == child {
			panic("scrubline: adding child would create a cycle")
		}
	}
	child.detach()
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// detach removes n from its parent's child list.
func (n *Node) detach() {
	p := n.Parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	p.childrenSorted = false
	n.Parent = nil
	markSubtreeDirty(n)
}

// RemoveChildren detaches every child without disposing it.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.Parent = nil
		markSubtreeDirty(c)
	}
	clear(n.children)
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the children in insertion order. Callers must not modify
// the slice.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns len(Children()).
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex changes the draw order among siblings.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// Dispose detaches n and marks it and its subtree unusable. The render sink
// ignores disposed nodes and the layout probe reports NotReady for them.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.detach()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, c := range n.children {
		c.Parent = nil
		c.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.TextBlock = nil
}

// IsDisposed reports whether Dispose was called on n or an ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

func markSubtreeDirty(n *Node) {
	n.transformDirty = true
	for _, c := range n.children {
		markSubtreeDirty(c)
	}
}

// nodeDimensions returns the unscaled local size: the measured text for text
// nodes, Width x Height otherwise.
func nodeDimensions(n *Node) (w, h float64) {
	if n.Type == NodeTypeText {
		if n.TextBlock == nil {
			return 0, 0
		}
		return n.TextBlock.Measure()
	}
	return n.Width, n.Height
}
