package gmkbd

import (
	"github.com/Drolfothesgnir/kbdplus/kbd"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultPriority is the priority of the AST transformer and the node renderer
// registered by the extension.
const DefaultPriority = 500

var warningsKey = parser.NewContextKey()

// Warnings returns the warnings collected while parsing with the given context.
// Warning positions are byte offsets into the parsed source.
func Warnings(pc parser.Context) []kbd.Warning {
	ws, _ := pc.Get(warningsKey).([]kbd.Warning)
	return ws
}

// Option configures the extension.
type Option func(*extender)

// WithSegmenter replaces the default scanner.
func WithSegmenter(seg kbd.Segmenter) Option {
	return func(e *extender) {
		e.seg = seg
	}
}

// WithPriority sets the priority of the AST transformer and the node renderer.
func WithPriority(priority int) Option {
	return func(e *extender) {
		e.priority = priority
	}
}

type extender struct {
	seg      kbd.Segmenter
	priority int
}

// Extension turns key spans into Kbd nodes using the default scanner.
var Extension = New()

// New returns a goldmark extension that turns key spans of inline text into
// Kbd nodes once the inline structure of the document is resolved.
func New(opts ...Option) goldmark.Extender {
	e := &extender{
		seg:      kbd.Default,
		priority: DefaultPriority,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extend implements goldmark.Extender.
func (e *extender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&transformer{seg: e.seg}, e.priority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&kbdRenderer{}, e.priority),
	))
}

type transformer struct {
	seg kbd.Segmenter
}

// Transform implements parser.ASTTransformer.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	// the tree is modified only after the walk
	var leaves []*ast.Text

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.CodeSpan, *ast.RawHTML, *ast.AutoLink, *Kbd:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if !n.IsRaw() {
				leaves = append(leaves, n)
			}
		}

		return ast.WalkContinue, nil
	})

	warns := Warnings(pc)

	for _, leaf := range leaves {
		value := string(leaf.Segment.Value(source))
		res := t.seg.Scan(value)

		for _, w := range res.Warnings {
			w.Pos += leaf.Segment.Start
			warns = append(warns, w)
		}

		// leaves without keys keep their source bytes
		if res.Keys() == 0 {
			continue
		}

		replace(leaf, res)
	}

	if len(warns) > 0 {
		pc.Set(warningsKey, warns)
	}
}

// replace substitutes the leaf with the nodes built from the scan result.
//
// When the result carries byte ranges, plain text stays a segment of the
// source and goldmark resolves its escapes and entities itself. Otherwise the
// span values are used as they are.
func replace(leaf *ast.Text, res kbd.Result) {
	parent := leaf.Parent()
	start := leaf.Segment.Start

	withRanges := len(res.Ranges) == len(res.Spans)

	for i, s := range res.Spans {
		var n ast.Node

		switch {
		case withRanges && s.IsKey():
			inner := res.Ranges[i].Inner()
			n = NewKbdSegment(s.Value, text.NewSegment(start+inner.Start, start+inner.Stop))
		case withRanges:
			r := res.Ranges[i]
			n = ast.NewTextSegment(text.NewSegment(start+r.Start, start+r.Stop))
		case s.IsKey():
			n = NewKbd(s.Value)
		default:
			n = ast.NewString([]byte(s.Value))
		}

		parent.InsertBefore(parent, leaf, n)
	}

	// line breaks belong to the end of the replaced text
	if leaf.SoftLineBreak() || leaf.HardLineBreak() {
		stop := leaf.Segment.Stop
		br := ast.NewTextSegment(text.NewSegment(stop, stop))
		br.SetSoftLineBreak(leaf.SoftLineBreak())
		br.SetHardLineBreak(leaf.HardLineBreak())
		parent.InsertBefore(parent, leaf, br)
	}

	parent.RemoveChild(parent, leaf)
}
