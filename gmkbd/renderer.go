package gmkbd

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// kbdRenderer writes Kbd nodes as HTML elements named by their RenderHint.
// The content is written by the renderer of the child node.
type kbdRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *kbdRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindKbd, r.renderKbd)
}

func (r *kbdRenderer) renderKbd(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	node := n.(*Kbd)

	tag := node.RenderHint
	if tag == "" {
		return ast.WalkContinue, nil
	}

	if entering {
		_ = w.WriteByte('<')
	} else {
		_, _ = w.WriteString("</")
	}
	_, _ = w.WriteString(tag)
	_ = w.WriteByte('>')

	return ast.WalkContinue, nil
}
