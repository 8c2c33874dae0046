package scrubline

// RenderSink receives computed styles. It is the only component allowed to
// mutate presentation state, and it must write only the fields named in
// style.Fields. The engine never waits on or reads back from a sink.
type RenderSink interface {
	Apply(id string, style Style)
}

// SinkFunc adapts a function to RenderSink.
type SinkFunc func(id string, style Style)

// Apply calls f(id, style).
func (f SinkFunc) Apply(id string, style Style) {
	f(id, style)
}

// MultiSink fans each mutation out to every sink in order.
type MultiSink []RenderSink

// Apply forwards to every sink.
func (m MultiSink) Apply(id string, style Style) {
	for _, s := range m {
		s.Apply(id, style)
	}
}

// NodeSink applies styles to scene nodes registered by id. Unknown ids are
// ignored. Node positions are written relative to the base position captured
// at Bind time, so a style X of 0 leaves the node where the layout put it.
type NodeSink struct {
	nodes map[string]*boundNode
}

type boundNode struct {
	node         *Node
	baseX, baseY float64
}

// NewNodeSink creates an empty NodeSink.
func NewNodeSink() *NodeSink {
	return &NodeSink{nodes: make(map[string]*boundNode)}
}

// Bind registers node under id, capturing its current position as the base.
// Rebinding an id replaces the previous node.
func (s *NodeSink) Bind(id string, node *Node) {
	s.nodes[id] = &boundNode{node: node, baseX: node.X, baseY: node.Y}
}

// Unbind removes every binding.
func (s *NodeSink) Unbind() {
	clear(s.nodes)
}

// Node returns the node bound to id, or nil.
func (s *NodeSink) Node(id string) *Node {
	if b, ok := s.nodes[id]; ok {
		return b.node
	}
	return nil
}

// Apply writes the declared fields of style into the bound node.
func (s *NodeSink) Apply(id string, style Style) {
	b, ok := s.nodes[id]
	if !ok || b.node.IsDisposed() {
		return
	}
	n := b.node
	if style.Has(FieldX) {
		n.X = b.baseX + style.X
	}
	if style.Has(FieldY) {
		n.Y = b.baseY + style.Y
	}
	if style.Has(FieldWidth) {
		n.Width = style.Width
	}
	if style.Has(FieldOpacity) {
		n.Alpha = style.Opacity
	}
	if style.Has(FieldScale) {
		n.ScaleX = style.Scale
		n.ScaleY = style.Scale
	}
	if style.Has(FieldRotation) {
		n.Rotation = degToRad(style.Rotation)
	}
	if style.Has(FieldBlur) {
		n.Blur = style.Blur
	}
	if style.Has(FieldTilt) {
		// A flat scene graph has no perspective; tilt is drawn as skew.
		n.SkewX = degToRad(style.TiltY) * tiltSkew
		n.SkewY = degToRad(style.TiltX) * tiltSkew
	}
	n.MarkDirty()
}

// tiltSkew scales tilt angles into skew angles.
const tiltSkew = 0.5
