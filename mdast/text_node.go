package mdast

import "unicode/utf8"

// TextNode represents plain text as a Node.
//
// It is the only node the walker hands over to the scanner.
type TextNode struct {
	// Content is a plain text stored in the node.
	Content string
}

// NodeType returns [NodeText].
func (n *TextNode) NodeType() NodeType {
	return NodeText
}

// Children returns nil, since a TextNode is always a leaf.
func (n *TextNode) Children() []Node {
	return nil
}

// Append is a no-op to forbid a TextNode from having children.
func (n *TextNode) Append(child Node) {}

// DisplayText returns plain text stored in the node.
func (n *TextNode) DisplayText() string {
	return n.Content
}

// Value returns plain text stored in the node.
func (n *TextNode) Value() string {
	return n.Content
}

// TextLength returns letter (not byte!) count of the plain text
// stored in the Content field.
func (n *TextNode) TextLength() int {
	return utf8.RuneCountInString(n.Content)
}

// NewTextNode creates new *TextNode with provided text content.
func NewTextNode(content string) *TextNode {
	return &TextNode{Content: content}
}
