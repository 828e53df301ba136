package mdast

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrMissingValue    = errors.New("node value is required")
	ErrMalformedKbd    = errors.New("kbd node must have exactly one text child")
	ErrLeafRoot        = errors.New("tree root must be a container node")
)

// wireNode is the JSON shape shared by every node type:
//
//	{"kind": "text", "value": "Press "}
//	{"kind": "kbd", "children": [{"kind": "text", "value": "Ctrl"}], "renderHint": "kbd"}
//	{"kind": "link", "url": "https://example.com", "children": [...]}
type wireNode struct {
	Kind       NodeType   `json:"kind"`
	Value      *string    `json:"value,omitempty"`
	URL        string     `json:"url,omitempty"`
	Children   []wireNode `json:"children,omitempty"`
	RenderHint string     `json:"renderHint,omitempty"`
}

func toWire(n Node) wireNode {
	switch node := n.(type) {
	case *TextNode:
		return wireNode{Kind: NodeText, Value: &node.Content}

	case *LiteralNode:
		return wireNode{Kind: node.Type, Value: &node.Content}

	case *KbdNode:
		return wireNode{
			Kind:       NodeKbd,
			Children:   childrenToWire(node.ChildNodes),
			RenderHint: node.RenderHint,
		}

	case *URLNode:
		return wireNode{
			Kind:     NodeLink,
			URL:      node.URL,
			Children: childrenToWire(node.ChildNodes),
		}
	}

	return wireNode{
		Kind:     n.NodeType(),
		Children: childrenToWire(n.Children()),
	}
}

func childrenToWire(children []Node) []wireNode {
	if len(children) == 0 {
		return nil
	}

	out := make([]wireNode, len(children))
	for i, c := range children {
		out[i] = toWire(c)
	}
	return out
}

func fromWire(w wireNode, path string) (Node, error) {
	switch w.Kind {
	case NodeText:
		if w.Value == nil {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingValue)
		}
		return NewTextNode(*w.Value), nil

	case NodeInlineCode, NodeHTML:
		if w.Value == nil {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingValue)
		}
		return &LiteralNode{Type: w.Kind, Content: *w.Value}, nil

	case NodeKbd:
		if len(w.Children) != 1 || w.Children[0].Kind != NodeText || w.Children[0].Value == nil {
			return nil, fmt.Errorf("%s: %w", path, ErrMalformedKbd)
		}
		node := NewKbdNode(*w.Children[0].Value)
		if w.RenderHint != "" {
			node.RenderHint = w.RenderHint
		}
		return node, nil

	case NodeLink:
		node := NewURLNode(w.URL)
		if err := appendWireChildren(node, w.Children, path); err != nil {
			return nil, err
		}
		return node, nil
	}

	if _, ok := containerTypes[w.Kind]; !ok {
		return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownNodeType, w.Kind)
	}

	node := NewBaseNode(w.Kind)
	if err := appendWireChildren(node, w.Children, path); err != nil {
		return nil, err
	}
	return node, nil
}

func appendWireChildren(parent Node, children []wireNode, path string) error {
	for i, c := range children {
		child, err := fromWire(c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return err
		}
		parent.Append(child)
	}
	return nil
}

// Encode marshals the tree into its JSON wire shape.
func Encode(n Node) ([]byte, error) {
	return json.Marshal(toWire(n))
}

// Decode rebuilds a tree from its JSON wire shape.
func Decode(data []byte) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("cannot decode tree: %w", err)
	}

	return fromWire(w, "tree")
}

// DecodeRoot is like Decode but only accepts trees whose root can hold
// children. Leaf and kbd roots are rejected with ErrLeafRoot.
func DecodeRoot(data []byte) (Container, error) {
	tree, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if _, ok := tree.(*KbdNode); ok {
		return nil, fmt.Errorf("tree: %w: %q", ErrLeafRoot, NodeKbd)
	}

	root, ok := tree.(Container)
	if !ok {
		return nil, fmt.Errorf("tree: %w: %q", ErrLeafRoot, tree.NodeType())
	}

	return root, nil
}

// MarshalJSON implements json.Marshaler.
func (n *BaseNode) MarshalJSON() ([]byte, error) { return Encode(n) }

// MarshalJSON implements json.Marshaler.
func (n *TextNode) MarshalJSON() ([]byte, error) { return Encode(n) }

// MarshalJSON implements json.Marshaler.
func (n *LiteralNode) MarshalJSON() ([]byte, error) { return Encode(n) }

// MarshalJSON implements json.Marshaler.
func (n *KbdNode) MarshalJSON() ([]byte, error) { return Encode(n) }

// MarshalJSON implements json.Marshaler.
func (n *URLNode) MarshalJSON() ([]byte, error) { return Encode(n) }
