package gmkbd

import (
	"github.com/Drolfothesgnir/kbdplus/kbd"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// KindKbd is the NodeKind of a key span.
var KindKbd = ast.NewNodeKind("Kbd")

// Kbd is an inline node for a single key span. Its only child holds the key
// content: an *ast.Text over the source when the position is known, an
// *ast.String otherwise.
type Kbd struct {
	ast.BaseInline

	// RenderHint names the element a renderer should emit.
	RenderHint string

	content string
}

// Kind implements ast.Node.
func (n *Kbd) Kind() ast.NodeKind {
	return KindKbd
}

// Dump implements ast.Node.
func (n *Kbd) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"RenderHint": n.RenderHint,
		"Content":    n.content,
	}, nil)
}

// Content returns the key text with escapes resolved.
func (n *Kbd) Content() string {
	return n.content
}

// NewKbd returns a new Kbd node wrapping the given content.
func NewKbd(content string) *Kbd {
	n := &Kbd{RenderHint: kbd.RenderHint, content: content}
	n.AppendChild(n, ast.NewString([]byte(content)))
	return n
}

// NewKbdSegment returns a new Kbd node whose child points at the raw key
// content in the source, so escapes are rendered the way goldmark renders them.
func NewKbdSegment(content string, seg text.Segment) *Kbd {
	n := &Kbd{RenderHint: kbd.RenderHint, content: content}
	n.AppendChild(n, ast.NewTextSegment(seg))
	return n
}
