package mdast

import (
	"context"

	"github.com/Drolfothesgnir/kbdplus/kbd"
	"golang.org/x/sync/errgroup"
)

// Stats summarizes a single pass over a tree.
type Stats struct {
	Leaves   int `json:"leaves"`   // text leaves handed over to the segmenter
	Replaced int `json:"replaced"` // leaves replaced by the scanned spans
	Keys     int `json:"keys"`     // key nodes inserted
	Warnings int `json:"warnings"` // warnings reported by the segmenter
}

func (s *Stats) add(res kbd.Result) {
	s.Leaves++
	s.Warnings += len(res.Warnings)
}

func (s *Stats) replaced(res kbd.Result) {
	s.Replaced++
	s.Keys += res.Keys()
}

// Transform visits every text leaf of the tree in document order, scans it and,
// unless the scan result is the identity, replaces the leaf with the resulting
// spans in place. The walk resumes right after the inserted nodes, so the
// segmenter's own output is never scanned again during the pass.
//
// Key nodes, inline code and raw html are never scanned.
func Transform(root Node, seg kbd.Segmenter) Stats {
	var st Stats
	transform(root, seg, &st)
	return st
}

func transform(n Node, seg kbd.Segmenter, st *Stats) {
	c, ok := n.(Container)
	if !ok {
		return
	}

	for i := 0; i < len(c.Children()); {
		switch child := c.Children()[i].(type) {
		case *TextNode:
			res := seg.Scan(child.Content)
			st.add(res)

			if res.Unchanged(child.Content) {
				i++
				continue
			}

			nodes := FromSpans(res.Spans)
			c.Splice(i, 1, nodes...)
			st.replaced(res)

			i += len(nodes)

		case *KbdNode, *LiteralNode:
			i++

		default:
			transform(child, seg, st)
			i++
		}
	}
}

// leaf is a text node together with its position in the parent's child list.
type leaf struct {
	parent Container
	index  int
	node   *TextNode
}

// collectLeaves returns the scannable text leaves in document order.
func collectLeaves(n Node, out []leaf) []leaf {
	c, ok := n.(Container)
	if !ok {
		return out
	}

	for i, child := range c.Children() {
		switch child := child.(type) {
		case *TextNode:
			out = append(out, leaf{parent: c, index: i, node: child})
		case *KbdNode, *LiteralNode:
		default:
			out = collectLeaves(child, out)
		}
	}

	return out
}

// TransformConcurrent does the same as [Transform], but scans the leaves in
// parallel using at most workers goroutines (no limit if workers <= 0).
//
// The tree is only modified after every leaf was scanned. If the context is
// canceled before that, the tree is left untouched and the context error is returned.
func TransformConcurrent(ctx context.Context, root Node, seg kbd.Segmenter, workers int) (Stats, error) {
	leaves := collectLeaves(root, nil)
	results := make([]kbd.Result, len(leaves))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, l := range leaves {
		i, l := i, l
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = seg.Scan(l.node.Content)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	var st Stats

	for _, res := range results {
		st.add(res)
	}

	// splicing from the last leaf keeps the recorded indices of the earlier ones valid
	for i := len(leaves) - 1; i >= 0; i-- {
		l, res := leaves[i], results[i]

		if res.Unchanged(l.node.Content) {
			continue
		}

		l.parent.Splice(l.index, 1, FromSpans(res.Spans)...)
		st.replaced(res)
	}

	return st, nil
}
