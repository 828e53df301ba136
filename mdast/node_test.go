package mdast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNode_DisplayTextAndLength(t *testing.T) {
	p := NewParagraph(
		NewTextNode("Нажми "),
		NewKbdNode("⌘"),
		NewBaseNode(NodeStrong, NewTextNode("now")),
		NewURLNode("https://example.com", NewTextNode(" docs")),
		NewInlineCode(" x"),
		NewHTML("<br>"),
	)

	require.Equal(t, "Нажми ⌘now docs x", p.DisplayText())
	require.Equal(t, 17, p.TextLength())
	require.Equal(t, NodeParagraph, p.NodeType())
}

func TestURLNode_Value(t *testing.T) {
	link := NewURLNode("https://example.com", NewTextNode("docs"))

	require.Equal(t, NodeLink, link.NodeType())
	require.Equal(t, "https://example.com", link.Value())
	require.Equal(t, "docs", link.DisplayText())
}

func TestLiteralNode(t *testing.T) {
	code := NewInlineCode("++x++")
	require.Equal(t, NodeInlineCode, code.NodeType())
	require.Equal(t, "++x++", code.DisplayText())
	require.Equal(t, "++x++", code.Value())
	require.Nil(t, code.Children())

	html := NewHTML("<kbd>")
	require.Empty(t, html.DisplayText())
	require.Equal(t, "<kbd>", html.Value())
	require.Zero(t, html.TextLength())

	html.Append(NewTextNode("ignored"))
	require.Nil(t, html.Children())
}

func TestKbdNode_SingleChild(t *testing.T) {
	n := NewKbdNode("Ctrl")

	require.Equal(t, NodeKbd, n.NodeType())
	require.Equal(t, "kbd", n.RenderHint)
	require.Equal(t, "Ctrl", n.Content())
	require.Len(t, n.Children(), 1)
	require.Equal(t, NodeText, n.Children()[0].NodeType())

	n.Append(NewTextNode("Alt"))
	n.Splice(0, 1)
	require.Len(t, n.Children(), 1)
	require.Equal(t, "Ctrl", n.DisplayText())
}

func TestTextNode_IsLeaf(t *testing.T) {
	n := NewTextNode("hello")
	n.Append(NewTextNode("world"))

	require.Nil(t, n.Children())
	require.Equal(t, "hello", n.Value())
	require.Equal(t, 5, n.TextLength())
}

func TestBaseNode_Splice(t *testing.T) {
	a, b, c := NewTextNode("a"), NewTextNode("b"), NewTextNode("c")
	x, y := NewTextNode("x"), NewTextNode("y")

	n := NewParagraph(a, b, c)

	n.Splice(1, 1, x, y)
	require.Equal(t, []Node{a, x, y, c}, n.Children())

	n.Splice(0, 2)
	require.Equal(t, []Node{y, c}, n.Children())

	n.Splice(2, 0, a)
	require.Equal(t, []Node{y, c, a}, n.Children())
}
