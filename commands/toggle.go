package commands

import (
	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

// toggleSpec drives the shared enable/disable dispatch behind every toggle
// command. inSelection picks the tree nodes the toggle targets; a range that
// intersects at least one such node is disabled, any other range enabled.
// Handlers return the range's changes in original-document coordinates with
// the range already remapped across them.
type toggleSpec struct {
	inSelection func(*tree.Node) bool
	enable      func(st *edit.State, r edit.Range) rangeResult
	disable     func(st *edit.State, r edit.Range, nodes []*tree.Node) rangeResult
}

// toggle applies spec to every selection range and merges the results.
// Toggles are explicit actions rather than ambiguous key presses, so the
// command always handles the invocation even when nothing changed.
func toggle(st *edit.State, spec toggleSpec) (edit.Transaction, bool) {
	results := make([]rangeResult, 0, len(st.Selection))
	for _, r := range st.Selection {
		var nodes []*tree.Node
		if st.Tree != nil && spec.inSelection != nil {
			nodes = nodesInRange(st.Tree, r, spec.inSelection)
		}
		switch {
		case len(nodes) > 0 && spec.disable != nil:
			results = append(results, spec.disable(st, r, nodes))
		case spec.enable != nil:
			results = append(results, spec.enable(st, r))
		default:
			results = append(results, rangeResult{orig: r, rang: r})
		}
	}
	return mergeResults(results, edit.EventInput), true
}

// nodesInRange collects the nodes matched by want that touch [r.From, r.To],
// in document order.
func nodesInRange(root *tree.Node, r edit.Range, want func(*tree.Node) bool) []*tree.Node {
	var nodes []*tree.Node
	root.IterateRange(r.From, r.To, func(n *tree.Node) bool {
		if want(n) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

func kindIn(kind tree.Kind) func(*tree.Node) bool {
	return func(n *tree.Node) bool { return n.Kind == kind }
}
