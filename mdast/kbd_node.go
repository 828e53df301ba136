package mdast

import "github.com/Drolfothesgnir/kbdplus/kbd"

// KbdNode represents a key span. It always has exactly one TextNode child
// holding the key content, so other inline tooling can walk the content
// without special-casing key nodes.
type KbdNode struct {
	// RenderHint is the tag a markup projector should use, [kbd.RenderHint] by default.
	RenderHint string
	*BaseNode
}

// Append is a no-op to keep the single text child invariant.
func (n *KbdNode) Append(child Node) {}

// Splice is a no-op to keep the single text child invariant.
func (n *KbdNode) Splice(start, deleteCount int, nodes ...Node) {}

// Content returns the key content.
func (n *KbdNode) Content() string {
	return n.ChildNodes[0].Value()
}

// NewKbdNode creates new *KbdNode with the provided key content.
func NewKbdNode(content string) *KbdNode {
	return &KbdNode{
		RenderHint: kbd.RenderHint,
		BaseNode:   NewBaseNode(NodeKbd, NewTextNode(content)),
	}
}

// FromSpans converts scanner output into tree nodes.
func FromSpans(spans []kbd.Span) []Node {
	nodes := make([]Node, len(spans))

	for i, s := range spans {
		if s.Kind == kbd.KindKey {
			nodes[i] = NewKbdNode(s.Value)
		} else {
			nodes[i] = NewTextNode(s.Value)
		}
	}

	return nodes
}
