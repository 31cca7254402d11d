package tree

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Parse builds a syntax tree for src.
//
// The block pass is the marker-table scanner in blocks.go; the inline pass
// delegates to goldmark and maps its emphasis, strikethrough, link, and
// inline-footnote nodes onto byte spans. Inline shapes goldmark cannot
// anchor to the source (for example links with an empty label) are dropped
// rather than guessed at.
func Parse(src string) *Node {
	root := parseBlocks(src)
	attachInline(root, src)
	root.Walk(func(n *Node) bool {
		n.sortChildren()
		return true
	})
	return root
}

var inlineParser = goldmark.New(goldmark.WithExtensions(
	extension.Strikethrough,
	InlineFootnotes,
))

func attachInline(root *Node, src string) {
	source := []byte(src)
	doc := inlineParser.Parser().Parse(text.NewReader(source))

	_ = ast.Walk(doc, func(gn ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := gn.(type) {
		case *ast.Emphasis:
			if n := emphasisNode(v, src); n != nil {
				attach(root, n)
			}
		case *extast.Strikethrough:
			if n := strikethroughNode(v, src); n != nil {
				attach(root, n)
			}
		case *ast.Link:
			if n := linkNode(v, src); n != nil {
				attach(root, n)
			}
		case *footnoteNode:
			n := NewNode(KindInlineFootnote, v.from, v.to)
			n.Append(NewNode(KindFootnoteMark, v.from, v.from+2))
			n.Append(NewNode(KindFootnoteMark, v.to-1, v.to))
			attach(root, n)
		}
		return ast.WalkContinue, nil
	})
}

// textSpan returns the span covered by the text segments below gn.
func textSpan(gn ast.Node) (int, int, bool) {
	from, to := -1, -1
	_ = ast.Walk(gn, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			if from < 0 || t.Segment.Start < from {
				from = t.Segment.Start
			}
			if t.Segment.Stop > to {
				to = t.Segment.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	return from, to, from >= 0
}

func emphasisNode(v *ast.Emphasis, src string) *Node {
	inFrom, inTo, ok := textSpan(v)
	if !ok {
		return nil
	}
	w := v.Level
	from, to := inFrom-w, inTo+w
	if from < 0 || to > len(src) {
		return nil
	}
	delim := src[from]
	if delim != '*' && delim != '_' {
		return nil
	}
	for i := from; i < from+w; i++ {
		if src[i] != delim {
			return nil
		}
	}
	kind := KindEmphasis
	if w >= 2 {
		kind = KindStrong
	}
	n := NewNode(kind, from, to)
	n.Append(NewNode(KindEmphasisMark, from, from+w))
	n.Append(NewNode(KindEmphasisMark, to-w, to))
	return n
}

func strikethroughNode(v *extast.Strikethrough, src string) *Node {
	inFrom, inTo, ok := textSpan(v)
	if !ok {
		return nil
	}
	w := 0
	for i := inFrom - 1; i >= 0 && src[i] == '~' && w < 2; i-- {
		w++
	}
	if w == 0 {
		return nil
	}
	from, to := inFrom-w, inTo+w
	if to > len(src) || src[inTo] != '~' {
		return nil
	}
	n := NewNode(KindStrikethrough, from, to)
	n.Append(NewNode(KindEmphasisMark, from, from+w))
	n.Append(NewNode(KindEmphasisMark, to-w, to))
	return n
}

func linkNode(v *ast.Link, src string) *Node {
	labelFrom, labelTo, ok := textSpan(v)
	if !ok {
		return nil
	}
	from := labelFrom - 1
	if from < 0 || src[from] != '[' {
		return nil
	}
	if labelTo+1 >= len(src) || src[labelTo] != ']' || src[labelTo+1] != '(' {
		return nil
	}
	urlFrom := labelTo + 2
	depth := 1
	end := -1
	for i := urlFrom; i < len(src) && src[i] != '\n'; i++ {
		switch src[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil
	}
	n := NewNode(KindLink, from, end+1)
	n.Append(NewNode(KindLinkMark, from, from+1))
	n.Append(NewNode(KindLinkMark, labelTo, labelTo+1))
	n.Append(NewNode(KindLinkMark, labelTo+1, labelTo+2))
	if urlFrom < end {
		n.Append(NewNode(KindLinkURL, urlFrom, end))
	}
	n.Append(NewNode(KindLinkMark, end, end+1))
	return n
}

func isMarkerKind(k Kind) bool { return k >= KindQuoteMark }

// attach inserts n into the deepest non-marker node containing its span.
func attach(root *Node, n *Node) {
	cur := root
descend:
	for {
		for _, c := range cur.Children {
			if isMarkerKind(c.Kind) {
				continue
			}
			if c.From <= n.From && n.To <= c.To {
				cur = c
				continue descend
			}
		}
		break
	}
	cur.Append(n)
}
