package mdast

// NodeType identifies the kind of node in the inline tree,
// e.g. "text", "kbd", "emphasis", "link", etc.
type NodeType string

// Node types understood by the walker and the JSON codec.
const (
	NodeRoot       NodeType = "root"
	NodeParagraph  NodeType = "paragraph"
	NodeEmphasis   NodeType = "emphasis"
	NodeStrong     NodeType = "strong"
	NodeDelete     NodeType = "delete"
	NodeLink       NodeType = "link"
	NodeText       NodeType = "text"
	NodeKbd        NodeType = "kbd"
	NodeInlineCode NodeType = "inlineCode"
	NodeHTML       NodeType = "html"
)

// containerTypes lists the types which are decoded into a plain [BaseNode].
var containerTypes = map[NodeType]struct{}{
	NodeRoot:      {},
	NodeParagraph: {},
	NodeEmphasis:  {},
	NodeStrong:    {},
	NodeDelete:    {},
}

// Node represents a part of the inline tree. Some nodes are leaves
// (text, inline code, raw html), and some are containers that carry
// child nodes (paragraph, emphasis, link, etc.).
type Node interface {
	// NodeType returns the node's type, e.g. "text", "kbd", "emphasis".
	NodeType() NodeType

	// Children returns this node's child nodes. Leaf nodes return nil.
	Children() []Node

	// Append adds a new child node to this node.
	// Leaf nodes ignore the call.
	Append(child Node)

	// DisplayText returns the visible text of the node.
	DisplayText() string

	// Value returns the semantic value of the node. For links it is the URL,
	// for every other node it is the same as DisplayText.
	Value() string

	// TextLength returns the count of letters (runes, not bytes) in DisplayText.
	TextLength() int
}

// Container is a Node whose child list can be edited in place.
type Container interface {
	Node

	// Splice replaces deleteCount children starting at index start with nodes.
	Splice(start, deleteCount int, nodes ...Node)
}
