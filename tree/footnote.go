package tree

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// InlineFootnotes is a goldmark extension recognizing inline footnotes of
// the form `^[note text]`.
var InlineFootnotes goldmark.Extender = inlineFootnotes{}

type inlineFootnotes struct{}

func (inlineFootnotes) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&inlineFootnoteParser{}, 150),
	))
}

var kindInlineFootnote = ast.NewNodeKind("InlineFootnote")

// footnoteNode carries the absolute source span of one `^[...]` occurrence.
type footnoteNode struct {
	ast.BaseInline
	from int
	to   int
}

func (n *footnoteNode) Kind() ast.NodeKind { return kindInlineFootnote }

func (n *footnoteNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type inlineFootnoteParser struct{}

func (*inlineFootnoteParser) Trigger() []byte { return []byte{'^'} }

func (*inlineFootnoteParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	if len(line) < 3 || line[0] != '^' || line[1] != '[' {
		return nil
	}
	end := -1
	depth := 0
scan:
	for i := 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				end = i
				break scan
			}
		}
	}
	if end < 0 {
		return nil
	}
	node := &footnoteNode{from: seg.Start, to: seg.Start + end + 1}
	node.AppendChild(node, ast.NewTextSegment(text.NewSegment(seg.Start+2, seg.Start+end)))
	block.Advance(end + 1)
	return node
}
