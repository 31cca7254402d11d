package commands

import (
	"sort"

	"github.com/iw2rmb/markedit/edit"
)

// rangeResult is the outcome for one selection range: its accumulated
// changes (expressed against the original document) and the resulting range
// in coordinates that already account for the range's own changes.
type rangeResult struct {
	orig    edit.Range
	rang    edit.Range
	changes []edit.Change
}

// mergeResults folds the per-range results into one transaction. Ranges are
// processed independently, so each result range still has to absorb the
// length deltas of changes that other ranges contributed before it.
// Identical changes contributed twice (renumbering overlaps between nearby
// cursors) collapse to one.
func mergeResults(results []rangeResult, event edit.Event) edit.Transaction {
	var all []edit.Change
	seen := map[edit.Change]bool{}
	for _, res := range results {
		for _, c := range res.changes {
			if seen[c] {
				continue
			}
			seen[c] = true
			all = append(all, c)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].From < all[j].From })

	sel := make(edit.Selection, 0, len(results))
	for i, res := range results {
		delta := 0
		for j, other := range results {
			if j == i {
				continue
			}
			for _, c := range other.changes {
				if c.From < res.orig.From || (c.From == res.orig.From && j < i) {
					delta += len(c.Insert) - (c.To - c.From)
				}
			}
		}
		sel = append(sel, edit.Range{From: res.rang.From + delta, To: res.rang.To + delta})
	}

	return edit.Transaction{
		Changes:        all,
		Selection:      sel,
		ScrollIntoView: true,
		Event:          event,
	}
}

func blankString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}
