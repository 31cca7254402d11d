package commands

import (
	"strconv"

	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

// ToggleListUnordered turns the touched lines into bullet items, or strips
// the bullet markers when the selection already sits in an unordered list.
func ToggleListUnordered(st *edit.State) (edit.Transaction, bool) {
	return toggle(st, toggleSpec{
		inSelection: func(n *tree.Node) bool {
			return n.Kind == tree.KindListUnordered && !taskList(n)
		},
		enable: func(st *edit.State, r edit.Range) rangeResult {
			return enableList(st, r, func(int) string { return "* " })
		},
		disable: disableListItems,
	})
}

// ToggleListOrdered turns the touched lines into a numbered list counted
// from 1, or strips the numbering when the selection already sits in one.
func ToggleListOrdered(st *edit.State) (edit.Transaction, bool) {
	return toggle(st, toggleSpec{
		inSelection: kindIn(tree.KindListOrdered),
		enable: func(st *edit.State, r edit.Range) rangeResult {
			return enableList(st, r, func(n int) string { return strconv.Itoa(n) + ". " })
		},
		disable: disableListItems,
	})
}

// ToggleListTask turns the touched lines into unchecked task items, or
// strips the task markers when the selection already sits in a task list.
func ToggleListTask(st *edit.State) (edit.Transaction, bool) {
	return toggle(st, toggleSpec{
		inSelection: kindIn(tree.KindTaskMarker),
		enable: func(st *edit.State, r edit.Range) rangeResult {
			return enableList(st, r, func(int) string { return "* [ ] " })
		},
		disable: disableListItems,
	})
}

func taskList(list *tree.Node) bool {
	for _, item := range list.Children {
		if item.Kind == tree.KindListItem && item.NthChildOfKind(tree.KindTaskMarker, 0) != nil {
			return true
		}
	}
	return false
}

// markerSpan locates an existing list marker at the start of rest. The span
// is capped at the alignment threshold the way the context resolver caps it,
// so replacing the span never swallows intentional alignment spaces.
func markerSpan(rest string) (indent, width int, ok bool) {
	if m := orderedMarkerRE.FindStringSubmatch(rest); m != nil {
		w := len(m[0])
		if len(m[4]) >= maxMarkerIndent {
			w -= maxMarkerIndent
		}
		return len(m[1]), w, true
	}
	if m := bulletMarkerRE.FindStringSubmatch(rest); m != nil {
		w := len(m[0])
		if len(m[4]) > maxMarkerIndent {
			w -= maxMarkerIndent
		}
		return len(m[1]), w, true
	}
	return 0, 0, false
}

// enableList rewrites every line touched by r: an existing marker of another
// list kind is replaced in place, any other line gets the rendered marker
// inserted at its start.
func enableList(st *edit.State, r edit.Range, render func(n int) string) rangeResult {
	doc := st.Doc
	first := doc.LineAt(r.From).Number
	last := doc.LineAt(r.To).Number
	rang := r
	var changes []edit.Change
	for n := first; n <= last; n++ {
		line := doc.Line(n)
		marker := render(n - first + 1)
		c := edit.Change{From: line.From, To: line.From, Insert: marker}
		if indent, width, ok := markerSpan(line.Text); ok {
			c.From = line.From + indent
			c.To = line.From + width
		}
		changes = append(changes, c)
		rang = edit.MoveRange(rang, r, c)
	}
	return rangeResult{orig: r, rang: rang, changes: changes}
}

// disableListItems removes the marker prefix of every found item whose line
// intersects the range.
func disableListItems(st *edit.State, r edit.Range, nodes []*tree.Node) rangeResult {
	doc := st.Doc
	rang := r
	var changes []edit.Change
	seen := map[int]bool{}
	for _, item := range listItems(nodes) {
		line := doc.LineAt(item.From)
		if seen[line.From] || line.From > r.To || line.To < r.From {
			continue
		}
		seen[line.From] = true
		rest := line.Text[item.From-line.From:]
		indent, width, ok := markerSpan(rest)
		if !ok {
			continue
		}
		c := edit.Change{From: item.From + indent, To: item.From + width}
		changes = append(changes, c)
		rang = edit.MoveRangeDelete(rang, r, c)
	}
	return rangeResult{orig: r, rang: rang, changes: changes}
}

// listItems normalizes toggle targets to the list items carrying the
// markers: lists contribute their item children, task markers their owning
// item.
func listItems(nodes []*tree.Node) []*tree.Node {
	var items []*tree.Node
	for _, n := range nodes {
		switch n.Kind {
		case tree.KindListOrdered, tree.KindListUnordered:
			for _, c := range n.Children {
				if c.Kind == tree.KindListItem {
					items = append(items, c)
				}
			}
		case tree.KindTaskMarker:
			if n.Parent != nil {
				items = append(items, n.Parent)
			}
		case tree.KindListItem:
			items = append(items, n)
		}
	}
	return items
}
