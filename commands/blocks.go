package commands

import (
	"strings"

	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

// ToggleBlockQuote prefixes every touched line with "> ", or strips the
// quote markup of the quotes the selection intersects.
func ToggleBlockQuote(st *edit.State) (edit.Transaction, bool) {
	return toggle(st, toggleSpec{
		inSelection: kindIn(tree.KindBlockQuote),
		enable: func(st *edit.State, r edit.Range) rangeResult {
			doc := st.Doc
			first := doc.LineAt(r.From).Number
			last := doc.LineAt(r.To).Number
			rang := r
			var changes []edit.Change
			for n := first; n <= last; n++ {
				line := doc.Line(n)
				c := edit.Change{From: line.From, To: line.From, Insert: "> "}
				changes = append(changes, c)
				rang = edit.MoveRangeInsert(rang, r, c)
			}
			return rangeResult{orig: r, rang: rang, changes: changes}
		},
		disable: func(st *edit.State, r edit.Range, nodes []*tree.Node) rangeResult {
			doc := st.Doc
			rang := r
			var changes []edit.Change
			// Nested quotes report the same continuation marker once per
			// level; it must only be deleted and remapped once.
			seen := map[edit.Change]bool{}
			add := func(c edit.Change) {
				if seen[c] {
					return
				}
				seen[c] = true
				changes = append(changes, c)
				rang = edit.MoveRangeDelete(rang, r, c)
			}
			for _, node := range nodes {
				line := doc.LineAt(node.From)
				rest := line.Text[node.From-line.From:]
				if m := quoteMarkerRE.FindString(rest); m != "" {
					add(edit.Change{From: node.From, To: node.From + len(m)})
				}
				// Continuation lines restate the marker; strip those too, but
				// only inside the selection when the selection has extent.
				body := doc.Slice(node.From, node.To)
				for i := 0; ; {
					j := strings.Index(body[i:], "\n> ")
					if j < 0 {
						break
					}
					i += j + 1
					at := node.From + i
					if r.Empty() || (at < r.To && at+2 > r.From) {
						add(edit.Change{From: at, To: at + 2})
					}
				}
			}
			return rangeResult{orig: r, rang: rang, changes: changes}
		},
	})
}

// InsertCodeBlock wraps the touched lines in a fenced code block. It is an
// inserter rather than a toggle: invoking it inside an existing fence adds
// another one.
func InsertCodeBlock(st *edit.State) (edit.Transaction, bool) {
	return toggle(st, toggleSpec{
		enable: func(st *edit.State, r edit.Range) rangeResult {
			doc := st.Doc
			from := doc.LineAt(r.From).From
			to := doc.LineAt(r.To).To
			changes := []edit.Change{
				{From: from, To: from, Insert: "```\n"},
				{From: to, To: to, Insert: "\n```"},
			}
			// Only the opening fence moves the range; the closing one lands
			// past it even when the range is an empty cursor.
			rang := edit.MoveRangeInsert(r, r, changes[0])
			return rangeResult{orig: r, rang: rang, changes: changes}
		},
	})
}

var tableTemplate = strings.Join([]string{
	"",
	"| Column1 | Column2 | Column3 |",
	"| ------- | ------- | ------- |",
	"| Text | Text | Text |",
	"",
}, "\n")

// InsertTable appends a templated three-column table after the line holding
// the selection end and puts the cursor in the first header cell.
func InsertTable(st *edit.State) (edit.Transaction, bool) {
	return toggle(st, toggleSpec{
		enable: func(st *edit.State, r edit.Range) rangeResult {
			line := st.Doc.LineAt(r.To)
			cell := strings.Index(tableTemplate, "Column1")
			return rangeResult{
				orig:    r,
				rang:    edit.Range{From: line.To + cell, To: line.To + cell + len("Column1")},
				changes: []edit.Change{{From: line.To, To: line.To, Insert: tableTemplate}},
			}
		},
	})
}
