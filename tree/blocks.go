package tree

import (
	"regexp"
	"strings"
)

// Block structure is recognized with the same marker grammar the editing
// commands use, so the tree and the context resolver never disagree about
// what a marker is. The scanner keeps a stack of open containers and matches
// their continuation prefix line by line, CommonMark style: quotes need a
// fresh ">", list items need indentation up to their content column, and
// paragraph text may continue lazily.

var (
	fenceOpenRE   = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})[^`]*$")
	headingRE     = regexp.MustCompile(`^ {0,3}#{1,6}([ \t].*)?$`)
	thematicRE    = regexp.MustCompile(`^ {0,3}(-( *-){2,}|\*( *\*){2,}|_( *_){2,}) *$`)
	orderedOpenRE = regexp.MustCompile(`^( {0,3})(\d{1,9})([.)])( +|$)`)
	bulletOpenRE  = regexp.MustCompile(`^( {0,3})([-+*])( +|$)`)
	taskBoxRE     = regexp.MustCompile(`^\[[ xX]\]([ \t]|$)`)
	tableRowRE    = regexp.MustCompile(`^ {0,3}\|`)
	quoteOpenRE   = regexp.MustCompile(`^( {0,3})>`)
)

const tabWidth = 4

type openBlock struct {
	node       *Node
	contentCol int
	lastEnd    int
}

type blockParser struct {
	src   string
	open  []openBlock
	para  *Node
	table *Node

	fence     *Node
	fenceChar byte
	fenceLen  int
}

func parseBlocks(src string) *Node {
	root := NewNode(KindDocument, 0, len(src))
	p := &blockParser{src: src}
	p.open = []openBlock{{node: root, lastEnd: 0}}

	for start := 0; ; {
		nl := strings.IndexByte(src[start:], '\n')
		if nl < 0 {
			p.line(start, len(src))
			break
		}
		p.line(start, start+nl)
		start += nl + 1
	}
	p.closeDown(1)
	root.To = len(src)
	return root
}

func (p *blockParser) line(from, to int) {
	text := p.src[from:to]

	pos, matched := p.matchContainers(from, text)

	if p.fence != nil {
		p.fenceLine(from, to, text, pos, matched)
		return
	}

	rest := text[pos:]
	if isBlank(rest) {
		p.closePara()
		p.closeTable()
		p.closeDown(matched)
		if pos > 0 {
			// Quote markers consumed on an otherwise blank line keep the
			// whole line, trailing padding included, inside the container.
			p.touch(to)
		}
		return
	}

	if matched < len(p.open) {
		if p.para != nil && !startsNewBlock(rest) {
			// Lazy paragraph continuation keeps the unmatched containers alive.
			p.para.To = to
			p.touch(to)
			return
		}
		p.closeDown(matched)
	}

	pos = p.openContainers(from, text, pos)
	p.leaf(from, to, text, pos)
}

// matchContainers consumes the continuation prefix of the open container
// stack. It returns the byte position after the consumed prefix and the
// number of stack entries (including the document) that matched.
func (p *blockParser) matchContainers(from int, text string) (int, int) {
	pos := 0
	for i := 1; i < len(p.open); i++ {
		b := &p.open[i]
		switch b.node.Kind {
		case KindBlockQuote:
			j, sp := pos, 0
			for j < len(text) && text[j] == ' ' && sp < 3 {
				j, sp = j+1, sp+1
			}
			if j >= len(text) || text[j] != '>' {
				return pos, i
			}
			b.node.Append(NewNode(KindQuoteMark, from+j, from+j+1))
			j++
			if j < len(text) && text[j] == ' ' {
				j++
			}
			pos = j
		case KindListItem:
			if isBlank(text[pos:]) {
				continue
			}
			j := pos
			col := columnAt(text, pos)
			for j < len(text) && (text[j] == ' ' || text[j] == '\t') && col < b.contentCol {
				col = advanceColumn(col, text[j])
				j++
			}
			if col < b.contentCol {
				return pos, i
			}
			pos = j
		case KindListOrdered, KindListUnordered, KindCodeFenced:
			// Stays open as long as its enclosing containers match; the
			// item below (or the fence handler) decides its fate.
		}
	}
	return pos, len(p.open)
}

func (p *blockParser) fenceLine(from, to int, text string, pos, matched int) {
	fenceIdx := len(p.open) - 1
	for fenceIdx > 0 && p.open[fenceIdx].node != p.fence {
		fenceIdx--
	}
	if matched <= fenceIdx {
		p.closeDown(matched)
		rest := text[pos:]
		if isBlank(rest) {
			return
		}
		pos = p.openContainers(from, text, pos)
		p.leaf(from, to, text, pos)
		return
	}

	rest := text[pos:]
	trimmed := strings.TrimLeft(rest, " ")
	indent := len(rest) - len(trimmed)
	if indent <= 3 && len(trimmed) > 0 && trimmed[0] == p.fenceChar {
		run := 0
		for run < len(trimmed) && trimmed[run] == p.fenceChar {
			run++
		}
		if run >= p.fenceLen && isBlank(trimmed[run:]) {
			markFrom := from + pos + indent
			p.fence.Append(NewNode(KindCodeMark, markFrom, markFrom+run))
			p.touch(to)
			p.closeDown(fenceIdx)
			return
		}
	}
	p.touch(to)
}

// openContainers starts new blockquote and list containers at pos.
func (p *blockParser) openContainers(from int, text string, pos int) int {
	for {
		rest := text[pos:]
		if m := quoteOpenRE.FindStringSubmatch(rest); m != nil {
			p.closePara()
			p.closeTable()
			markPos := pos + len(m[1])
			node := NewNode(KindBlockQuote, from+markPos, from+markPos+1)
			p.push(node, 0, from+markPos)
			node.Append(NewNode(KindQuoteMark, from+markPos, from+markPos+1))
			pos = markPos + 1
			if pos < len(text) && text[pos] == ' ' {
				pos++
			}
			continue
		}
		if thematicRE.MatchString(rest) {
			return pos
		}
		var kind Kind
		var markerLen, lead, trail int
		if m := orderedOpenRE.FindStringSubmatch(rest); m != nil {
			kind, lead = KindListOrdered, len(m[1])
			markerLen = len(m[2]) + len(m[3])
			trail = len(m[4])
		} else if m := bulletOpenRE.FindStringSubmatch(rest); m != nil {
			kind, lead = KindListUnordered, len(m[1])
			markerLen = len(m[2])
			trail = len(m[3])
		} else {
			return pos
		}

		p.closePara()
		p.closeTable()
		markStart := pos + lead
		markEnd := markStart + markerLen

		list := p.top()
		if list.Kind == KindListOrdered || list.Kind == KindListUnordered {
			if list.Kind != kind {
				p.closeDown(len(p.open) - 1)
				list = nil
			}
		} else {
			list = nil
		}
		if list == nil {
			list = NewNode(kind, from+markStart, from+markEnd)
			p.push(list, 0, from+markStart)
		}

		item := NewNode(KindListItem, from+markStart, from+markEnd)
		w := trail
		if w < 1 || w > 4 {
			w = 1
		}
		contentCol := columnAt(text, markEnd) + w
		list.Append(item)
		p.open = append(p.open, openBlock{node: item, contentCol: contentCol, lastEnd: from + markEnd})
		item.Append(NewNode(KindListMark, from+markStart, from+markEnd))

		pos = markEnd
		for pos < len(text) && text[pos] == ' ' {
			pos++
		}
		if m := taskBoxRE.FindString(text[pos:]); m != "" {
			item.Append(NewNode(KindTaskMarker, from+pos, from+pos+3))
		}
	}
}

func (p *blockParser) leaf(from, to int, text string, pos int) {
	rest := text[pos:]
	if isBlank(rest) {
		// Only freshly opened markers on this line: their extent ends with
		// the consumed marker text.
		p.touch(from + pos)
		return
	}

	switch {
	case fenceOpenRE.MatchString(rest):
		p.closePara()
		p.closeTable()
		trimmed := strings.TrimLeft(rest, " ")
		indent := len(rest) - len(trimmed)
		ch := trimmed[0]
		run := 0
		for run < len(trimmed) && trimmed[run] == ch {
			run++
		}
		markFrom := from + pos + indent
		node := NewNode(KindCodeFenced, markFrom, to)
		p.push(node, 0, to)
		node.Append(NewNode(KindCodeMark, markFrom, markFrom+run))
		p.fence, p.fenceChar, p.fenceLen = node, ch, run
		p.touch(to)
	case headingRE.MatchString(rest):
		p.closePara()
		p.closeTable()
		trimmed := strings.TrimLeft(rest, " ")
		indent := len(rest) - len(trimmed)
		p.top().Append(NewNode(KindHeading, from+pos+indent, to))
		p.touch(to)
	case tableRowRE.MatchString(rest):
		p.closePara()
		if p.table == nil {
			trimmed := strings.TrimLeft(rest, " ")
			indent := len(rest) - len(trimmed)
			p.table = NewNode(KindTable, from+pos+indent, to)
			p.top().Append(p.table)
		}
		p.table.To = to
		p.touch(to)
	default:
		p.closeTable()
		if p.para == nil {
			p.para = NewNode(KindParagraph, from+pos, to)
			p.top().Append(p.para)
		}
		p.para.To = to
		p.touch(to)
	}
}

func (p *blockParser) top() *Node { return p.open[len(p.open)-1].node }

func (p *blockParser) push(node *Node, contentCol, lastEnd int) {
	p.top().Append(node)
	p.open = append(p.open, openBlock{node: node, contentCol: contentCol, lastEnd: lastEnd})
}

// touch marks end as the latest content extent of every open container.
func (p *blockParser) touch(end int) {
	for i := range p.open {
		if p.open[i].lastEnd < end {
			p.open[i].lastEnd = end
		}
	}
}

func (p *blockParser) closePara() { p.para = nil }

func (p *blockParser) closeTable() { p.table = nil }

// closeDown closes open containers so that only p.open[:n] remain.
func (p *blockParser) closeDown(n int) {
	if n < 1 {
		n = 1
	}
	if n >= len(p.open) {
		return
	}
	p.closePara()
	p.closeTable()
	for i := len(p.open) - 1; i >= n; i-- {
		b := p.open[i]
		b.node.To = b.lastEnd
		if b.node == p.fence {
			p.fence = nil
		}
	}
	p.open = p.open[:n]
}

func startsNewBlock(rest string) bool {
	return quoteOpenRE.MatchString(rest) ||
		orderedOpenRE.MatchString(rest) ||
		bulletOpenRE.MatchString(rest) ||
		fenceOpenRE.MatchString(rest) ||
		headingRE.MatchString(rest) ||
		thematicRE.MatchString(rest)
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

func advanceColumn(col int, ch byte) int {
	if ch == '\t' {
		return col + tabWidth - col%tabWidth
	}
	return col + 1
}

func columnAt(text string, upto int) int {
	col := 0
	for i := 0; i < upto && i < len(text); i++ {
		col = advanceColumn(col, text[i])
	}
	return col
}
