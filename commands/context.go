// Package commands implements the structural Markdown editing commands:
// newline continuation, backward markup deletion, and the inline/block
// toggles. Every command is a pure function from an editor state to a
// transaction plus a handled flag; a false flag means the host should apply
// its default behavior instead.
package commands

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

// Command computes a transaction for the given state. The boolean reports
// whether the command applies; when false the transaction is empty and the
// host falls back to its default handling of the keystroke.
type Command func(*edit.State) (edit.Transaction, bool)

// The marker grammar. The resolver and every toggle consume these same
// patterns so marker detection cannot diverge between commands.
var (
	quoteMarkerRE   = regexp.MustCompile(`^ *>( ?)`)
	orderedMarkerRE = regexp.MustCompile(`^( *)(\d+)([.)])( *)`)
	bulletMarkerRE  = regexp.MustCompile(`^( *)([-+*])( {1,4}\[[ xX]\])?( +)`)
	itemNumberRE    = regexp.MustCompile(`^(\s*)(\d+)[.)]`)
	taskContentRE   = regexp.MustCompile(`^\[[ xX]\]`)
)

// Markdown caps block indentation at four columns; deeper indentation would
// re-parse as an indented code block.
const maxMarkerIndent = 4

// blockContext describes one enclosing list or blockquote level at the line
// owning its marker. from/to are column offsets relative to that line.
type blockContext struct {
	node        *tree.Node
	from        int
	to          int
	spaceBefore string
	spaceAfter  string
	marker      string
	item        *tree.Node
}

// resolveContext walks node's ancestors and rebuilds the textual marker of
// every enclosing listItem/blockQuote level, outermost first. Levels whose
// line no longer matches the expected marker pattern are silently omitted.
func resolveContext(doc *edit.Doc, node *tree.Node) []blockContext {
	var nodes []*tree.Node
	for cur := node; cur != nil && cur.Kind != tree.KindDocument; cur = cur.Parent {
		switch cur.Kind {
		case tree.KindListItem, tree.KindBlockQuote, tree.KindCodeFenced:
			nodes = append(nodes, cur)
		}
	}

	var context []blockContext
	for i := len(nodes) - 1; i >= 0; i-- {
		cur := nodes[i]
		line := doc.LineAt(cur.From)
		startPos := cur.From - line.From
		if startPos < 0 || startPos > len(line.Text) {
			continue
		}
		rest := line.Text[startPos:]

		switch {
		case cur.Kind == tree.KindCodeFenced:
			context = append(context, blockContext{
				node: cur, from: startPos, to: startPos,
			})
		case cur.Kind == tree.KindBlockQuote:
			m := quoteMarkerRE.FindStringSubmatch(rest)
			if m == nil {
				continue
			}
			context = append(context, blockContext{
				node: cur, from: startPos, to: startPos + len(m[0]),
				spaceAfter: m[1], marker: ">",
			})
		case cur.Parent != nil && cur.Parent.Kind == tree.KindListOrdered:
			m := orderedMarkerRE.FindStringSubmatch(rest)
			if m == nil {
				continue
			}
			after, width := m[4], len(m[0])
			if len(after) >= maxMarkerIndent {
				after = after[:len(after)-maxMarkerIndent]
				width -= maxMarkerIndent
			}
			context = append(context, blockContext{
				node: cur.Parent, from: startPos, to: startPos + width,
				spaceBefore: m[1], spaceAfter: after, marker: m[3], item: cur,
			})
		case cur.Parent != nil && cur.Parent.Kind == tree.KindListUnordered:
			m := bulletMarkerRE.FindStringSubmatch(rest)
			if m == nil {
				continue
			}
			after, width := m[4], len(m[0])
			if len(after) > maxMarkerIndent {
				after = after[:len(after)-maxMarkerIndent]
				width -= maxMarkerIndent
			}
			// A continued task item starts out unchecked.
			marker := m[2] + strings.NewReplacer("x", " ", "X", " ").Replace(m[3])
			context = append(context, blockContext{
				node: cur.Parent, from: startPos, to: startPos + width,
				spaceBefore: m[1], spaceAfter: after, marker: marker, item: cur,
			})
		}
	}
	return context
}

// blank renders the continuation whitespace for this level: a blockquote
// contributes its ">", a list level pure spaces. maxWidth < 0 pads to the
// level's own width instead.
func (c *blockContext) blank(maxWidth int, trailing bool) string {
	result := c.spaceBefore
	if c.node.Kind == tree.KindBlockQuote {
		result += ">"
	}
	if maxWidth >= 0 {
		for len(result) < maxWidth {
			result += " "
		}
		return result
	}
	for i := c.to - c.from - len(result) - len(c.spaceAfter); i > 0; i-- {
		result += " "
	}
	if trailing {
		result += c.spaceAfter
	}
	return result
}

// renderMarker re-renders the live marker text, adding add to an ordered
// list's numeral.
func (c *blockContext) renderMarker(doc *edit.Doc, add int) string {
	number := ""
	if c.node.Kind == tree.KindListOrdered {
		if n, ok := itemNumber(c.item, doc); ok {
			number = strconv.Itoa(n + add)
		}
	}
	return c.spaceBefore + number + c.marker + c.spaceAfter
}

// itemNumber reads the numeral of an ordered-list item.
func itemNumber(item *tree.Node, doc *edit.Doc) (int, bool) {
	if item == nil {
		return 0, false
	}
	m := itemNumberRE.FindStringSubmatch(doc.Slice(item.From, item.From+10))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return n, true
}

// renumberList rewrites the numerals of the items following after so they
// stay a strictly increasing run. offset biases the rewritten numerals; the
// walk stops at the first numbering discontinuity.
func renumberList(after *tree.Node, doc *edit.Doc, changes *[]edit.Change, offset int) {
	prev := -1
	for node := after; node != nil; node = node.NextSibling() {
		if node.Kind != tree.KindListItem {
			continue
		}
		m := itemNumberRE.FindStringSubmatch(doc.Slice(node.From, node.From+10))
		if m == nil {
			return
		}
		from, err := strconv.Atoi(m[2])
		if err != nil {
			return
		}
		if prev >= 0 {
			if from != prev+1 {
				return
			}
			numFrom := node.From + len(m[1])
			*changes = append(*changes, edit.Change{
				From:   numFrom,
				To:     numFrom + len(m[2]),
				Insert: strconv.Itoa(prev + 2 + offset),
			})
		}
		prev = from
	}
}

// nonTightList reports whether the list keeps a blank separator line between
// its first and second item.
func nonTightList(node *tree.Node, doc *edit.Doc) bool {
	if node.Kind != tree.KindListOrdered && node.Kind != tree.KindListUnordered {
		return false
	}
	first := node.NthChildOfKind(tree.KindListItem, 0)
	second := node.NthChildOfKind(tree.KindListItem, 1)
	if first == nil || second == nil {
		return false
	}
	return doc.LineAt(second.From).Number > doc.LineAt(first.To).Number+1
}

// countColumn computes the column of byte offset upto within text.
func countColumn(text string, tabSize, upto int) int {
	col := 0
	for i := 0; i < upto && i < len(text); i++ {
		if text[i] == '\t' {
			col += tabSize - col%tabSize
		} else {
			col++
		}
	}
	return col
}

// normalizeIndent re-expresses the leading whitespace of content in the
// host's indent unit. Only a "\t" unit changes anything; the tab width is
// the common Markdown width of four columns.
func normalizeIndent(content string, st *edit.State) string {
	blank := 0
	for blank < len(content) && (content[blank] == ' ' || content[blank] == '\t') {
		blank++
	}
	if blank == 0 || st.IndentUnit != "\t" {
		return content
	}
	col := countColumn(content, 4, blank)
	indent := ""
	for col > 0 {
		if col >= 4 {
			indent += "\t"
			col -= 4
		} else {
			indent += " "
			col--
		}
	}
	return indent + content[blank:]
}
