package mdast

import "unicode/utf8"

// LiteralNode is a leaf produced by another inline construct, e.g. inline code
// or raw html. Its content is final and is never scanned for keys.
type LiteralNode struct {
	Type    NodeType
	Content string
}

func (n *LiteralNode) NodeType() NodeType {
	return n.Type
}

func (n *LiteralNode) Children() []Node {
	return nil
}

// Append is a no-op, a LiteralNode is always a leaf.
func (n *LiteralNode) Append(child Node) {}

// DisplayText returns the literal content. Raw html is not visible text.
func (n *LiteralNode) DisplayText() string {
	if n.Type == NodeHTML {
		return ""
	}
	return n.Content
}

func (n *LiteralNode) Value() string {
	return n.Content
}

func (n *LiteralNode) TextLength() int {
	return utf8.RuneCountInString(n.DisplayText())
}

// NewInlineCode creates a LiteralNode of type [NodeInlineCode].
func NewInlineCode(code string) *LiteralNode {
	return &LiteralNode{Type: NodeInlineCode, Content: code}
}

// NewHTML creates a LiteralNode of type [NodeHTML].
func NewHTML(raw string) *LiteralNode {
	return &LiteralNode{Type: NodeHTML, Content: raw}
}
