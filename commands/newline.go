package commands

import (
	"regexp"

	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

var (
	leadingMarkupRE = regexp.MustCompile(`^[\s\d.)\-+*>]*`)
	trailingQuoteRE = regexp.MustCompile(`>\s*$`)
)

// InsertNewlineContinueMarkup splits the line at each cursor and re-emits the
// enclosing list and blockquote markup on the new line. Pressing it on an
// item that holds nothing but its marker removes one level of markup instead,
// and on a trailing empty quote line it collapses the quote tail. Reports
// false, leaving the document untouched, when any range is non-empty or sits
// outside continuable markup.
func InsertNewlineContinueMarkup(st *edit.State) (edit.Transaction, bool) {
	if st.Tree == nil || len(st.Selection) == 0 {
		return edit.Transaction{}, false
	}
	doc := st.Doc
	var results []rangeResult
	for _, r := range st.Selection {
		if !r.Empty() {
			return edit.Transaction{}, false
		}
		pos := r.From
		line := doc.LineAt(pos)
		context := resolveContext(doc, st.Tree.Resolve(pos, -1))
		for len(context) > 0 && context[len(context)-1].from > pos-line.From {
			context = context[:len(context)-1]
		}
		if len(context) == 0 {
			return edit.Transaction{}, false
		}
		inner := &context[len(context)-1]
		posCol := pos - line.From
		if inner.to-len(inner.spaceAfter) > posCol {
			// The cursor sits inside the markup itself.
			return edit.Transaction{}, false
		}

		emptyLine := posCol >= inner.to-len(inner.spaceAfter) &&
			(inner.to >= len(line.Text) || blankString(line.Text[inner.to:]))

		if inner.item != nil && emptyLine {
			results = append(results, deleteItemLevel(doc, r, line, context))
			continue
		}
		if inner.node.Kind == tree.KindBlockQuote && emptyLine && line.From > 0 {
			if res, ok := collapseQuoteTail(doc, r, line, inner); ok {
				results = append(results, res)
				continue
			}
		}

		var changes []edit.Change
		if inner.node.Kind == tree.KindListOrdered {
			renumberList(inner.item, doc, &changes, 0)
		}
		// Lines that continue an item without restating its markup get a plain
		// split unless even their leading text looks like markup.
		continued := inner.item != nil && inner.item.From < line.From
		insert := ""
		if !continued || len(leadingMarkupRE.FindString(line.Text)) >= inner.to {
			for i := range context {
				if i == len(context)-1 && !continued {
					insert += context[i].renderMarker(doc, 1)
				} else {
					maxWidth := -1
					if i+1 < len(context) {
						// from columns are absolute, blank widths are not.
						maxWidth = countColumn(line.Text, 4, context[i+1].from) - len(insert)
					}
					insert += context[i].blank(maxWidth, true)
				}
			}
		}
		from := pos
		for from > line.From && isSpaceByte(line.Text[from-line.From-1]) {
			from--
		}
		insert = normalizeIndent(insert, st)
		if inner.item != nil && nonTightList(inner.node, doc) {
			insert = blankLineFill(context, st, line) + "\n" + insert
		}
		results = append(results, rangeResult{
			orig:    r,
			rang:    edit.Cursor(from + 1 + len(insert)),
			changes: append(changes, edit.Change{From: from, To: pos, Insert: "\n" + insert}),
		})
	}
	return mergeResults(results, edit.EventInput), true
}

// deleteItemLevel handles Enter on a list item that carries no content: the
// innermost marker goes away and, when a parent item exists, its markup takes
// the line over.
func deleteItemLevel(doc *edit.Doc, r edit.Range, line edit.Line, context []blockContext) rangeResult {
	pos := r.From
	inner := &context[len(context)-1]
	var next *blockContext
	if len(context) > 1 {
		next = &context[len(context)-2]
	}

	delTo := line.From
	insert := ""
	renumberOuter := false
	if next != nil {
		if next.item != nil {
			delTo = line.From + next.from
			add := 1
			if next.item.From >= line.From {
				// The parent marker already sits on this very line, so it is
				// re-emitted verbatim rather than incremented.
				add = 0
			} else {
				renumberOuter = true
			}
			insert = next.renderMarker(doc, add)
		} else {
			delTo = line.From + next.to
		}
	}

	changes := []edit.Change{{From: delTo, To: pos, Insert: insert}}
	if inner.node.Kind == tree.KindListOrdered {
		renumberList(inner.item, doc, &changes, -2)
	}
	if renumberOuter && next.node.Kind == tree.KindListOrdered {
		renumberList(next.item, doc, &changes, 0)
	}
	return rangeResult{orig: r, rang: edit.Cursor(delTo + len(insert)), changes: changes}
}

// collapseQuoteTail handles Enter on a quote line that is empty past its
// markers when the previous line ends in the same empty markers: both runs of
// trailing quote markup vanish and the cursor lands after the shortened
// previous line.
func collapseQuoteTail(doc *edit.Doc, r edit.Range, line edit.Line, inner *blockContext) (rangeResult, bool) {
	prev := doc.LineAt(line.From - 1)
	loc := trailingQuoteRE.FindStringIndex(prev.Text)
	if loc == nil || loc[0] != inner.from {
		return rangeResult{}, false
	}
	cut := prev.To - (prev.From + loc[0])
	changes := []edit.Change{
		{From: prev.From + loc[0], To: prev.To},
		{From: line.From + inner.from, To: line.To},
	}
	return rangeResult{
		orig:    r,
		rang:    edit.Cursor(line.From + inner.from - cut),
		changes: changes,
	}, true
}

// blankLineFill renders the markup for the separator line inserted into a
// loose list: every context except the item itself, without trailing space.
func blankLineFill(context []blockContext, st *edit.State, line edit.Line) string {
	insert := ""
	for i := 0; i+1 < len(context); i++ {
		maxWidth := -1
		if i+2 < len(context) {
			maxWidth = countColumn(line.Text, 4, context[i+1].from) - len(insert)
		}
		insert += context[i].blank(maxWidth, i+2 < len(context))
	}
	return normalizeIndent(insert, st)
}

func isSpaceByte(b byte) bool { return b == ' ' || b == '\t' }
