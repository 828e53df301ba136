package mdast

import (
	"slices"
	"strings"
)

// BaseNode represents a container element of the tree.
//
// It has core node logic and is embedded by the other container nodes.
type BaseNode struct {
	Type       NodeType
	ChildNodes []Node
}

// NodeType implements Node.NodeType method by returning BaseNode's type.
func (n *BaseNode) NodeType() NodeType {
	return n.Type
}

// Children implements Node.Children method by returning BaseNode's child nodes.
func (n *BaseNode) Children() []Node {
	return n.ChildNodes
}

// Append implements Node.Append method by attaching new Node to the BaseNode's child list.
func (n *BaseNode) Append(child Node) {
	n.ChildNodes = append(n.ChildNodes, child)
}

// Splice implements Container.Splice method.
// It panics if the range is out of the child list bounds.
func (n *BaseNode) Splice(start, deleteCount int, nodes ...Node) {
	n.ChildNodes = slices.Replace(n.ChildNodes, start, start+deleteCount, nodes...)
}

// DisplayText implements Node.DisplayText method by concatenating
// display texts of all of the BaseNode's children.
func (n *BaseNode) DisplayText() string {
	var b strings.Builder

	for _, c := range n.ChildNodes {
		b.WriteString(c.DisplayText())
	}

	return b.String()
}

// Value implements Node.Value method by concatenating
// values of all of the BaseNode's children.
func (n *BaseNode) Value() string {
	var b strings.Builder

	for _, c := range n.ChildNodes {
		b.WriteString(c.Value())
	}

	return b.String()
}

// TextLength returns combined text length of the node's children.
func (n *BaseNode) TextLength() int {
	sum := 0
	for _, c := range n.ChildNodes {
		sum += c.TextLength()
	}
	return sum
}

// NewBaseNode is a factory method for creating
// a BaseNode with a given type and children.
func NewBaseNode(nodeType NodeType, children ...Node) *BaseNode {
	return &BaseNode{Type: nodeType, ChildNodes: children}
}

// NewRoot creates the root of a tree.
func NewRoot(children ...Node) *BaseNode {
	return NewBaseNode(NodeRoot, children...)
}

// NewParagraph creates a paragraph node.
func NewParagraph(children ...Node) *BaseNode {
	return NewBaseNode(NodeParagraph, children...)
}
