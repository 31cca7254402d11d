package commands

import (
	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

// placeholder is selected after wrapping an empty cursor so the next
// keystroke overwrites it.
const placeholder = "text"

// ToggleStrong wraps the selection in ** markers or removes them.
func ToggleStrong(st *edit.State) (edit.Transaction, bool) {
	return toggleInline(st, tree.KindStrong, "**", "**")
}

// ToggleEmphasis wraps the selection in _ markers or removes them.
func ToggleEmphasis(st *edit.State) (edit.Transaction, bool) {
	return toggleInline(st, tree.KindEmphasis, "_", "_")
}

// ToggleStrikethrough wraps the selection in ~~ markers or removes them.
func ToggleStrikethrough(st *edit.State) (edit.Transaction, bool) {
	return toggleInline(st, tree.KindStrikethrough, "~~", "~~")
}

// ToggleFootnote wraps the selection in an inline footnote or unwraps it.
func ToggleFootnote(st *edit.State) (edit.Transaction, bool) {
	return toggleInline(st, tree.KindInlineFootnote, "^[", "]")
}

func toggleInline(st *edit.State, kind tree.Kind, open, closing string) (edit.Transaction, bool) {
	markKind := tree.KindEmphasisMark
	if kind == tree.KindInlineFootnote {
		markKind = tree.KindFootnoteMark
	}
	return toggle(st, toggleSpec{
		inSelection: kindIn(kind),
		enable: func(st *edit.State, r edit.Range) rangeResult {
			if r.Empty() {
				insert := open + placeholder + closing
				return rangeResult{
					orig:    r,
					rang:    edit.Range{From: r.From + len(open), To: r.From + len(open) + len(placeholder)},
					changes: []edit.Change{{From: r.From, To: r.From, Insert: insert}},
				}
			}
			changes := []edit.Change{
				{From: r.From, To: r.From, Insert: open},
				{From: r.To, To: r.To, Insert: closing},
			}
			rang := r
			for _, c := range changes {
				rang = edit.MoveRangeInsert(rang, r, c)
			}
			return rangeResult{orig: r, rang: rang, changes: changes}
		},
		disable: func(st *edit.State, r edit.Range, nodes []*tree.Node) rangeResult {
			return removeMarks(r, nodes, markKind)
		},
	})
}

// removeMarks deletes every markKind child of the found nodes and keeps the
// range aligned with the surviving text. Nested and overlapping results
// flattening to direct children keeps one deletion per marker even when two
// nodes share a run.
func removeMarks(r edit.Range, nodes []*tree.Node, markKind tree.Kind) rangeResult {
	var changes []edit.Change
	rang := r
	for _, node := range nodes {
		for _, mark := range node.Children {
			if mark.Kind != markKind {
				continue
			}
			c := edit.Change{From: mark.From, To: mark.To}
			changes = append(changes, c)
			rang = edit.MoveRangeDelete(rang, r, c)
		}
	}
	return rangeResult{orig: r, rang: rang, changes: changes}
}

// ToggleLink wraps the selection as a Markdown link, reusing selected text as
// both the label and the URL (selecting a pasted URL and toggling makes it a
// link). With the selection fully inside an existing link's label the link
// markup is removed instead and the label text survives.
func ToggleLink(st *edit.State) (edit.Transaction, bool) {
	return toggle(st, toggleSpec{
		inSelection: kindIn(tree.KindLink),
		enable: func(st *edit.State, r edit.Range) rangeResult {
			sel := st.Doc.Slice(r.From, r.To)
			url := sel
			if sel == "" {
				url = "https://"
			}
			insert := "[" + sel + "](" + url + ")"
			return rangeResult{
				orig:    r,
				rang:    edit.Range{From: r.From + 1, To: r.From + 1 + len(sel)},
				changes: []edit.Change{{From: r.From, To: r.To, Insert: insert}},
			}
		},
		disable: func(st *edit.State, r edit.Range, nodes []*tree.Node) rangeResult {
			for _, node := range nodes {
				open := node.NthChildOfKind(tree.KindLinkMark, 0)
				labelEnd := node.NthChildOfKind(tree.KindLinkMark, 1)
				if open == nil || labelEnd == nil {
					continue
				}
				if r.From < open.To || r.To > labelEnd.From {
					continue
				}
				changes := []edit.Change{
					{From: node.From, To: open.To},
					{From: labelEnd.From, To: node.To},
				}
				rang := r
				for _, c := range changes {
					rang = edit.MoveRangeDelete(rang, r, c)
				}
				return rangeResult{orig: r, rang: rang, changes: changes}
			}
			return rangeResult{orig: r, rang: r}
		},
	})
}
