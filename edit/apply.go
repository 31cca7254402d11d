package edit

import (
	"fmt"
	"sort"
	"strings"
)

// Apply applies a change set to doc and returns the new snapshot.
//
// Changes must be expressed against doc and must not overlap; touching spans
// are fine. Violations are caller contract errors, reported as such rather
// than silently reordered away. The input slice is not modified.
func Apply(doc *Doc, changes []Change) (*Doc, error) {
	if len(changes) == 0 {
		return doc, nil
	}

	sorted := make([]Change, len(changes))
	copy(sorted, changes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].From == sorted[j].From {
			return sorted[i].To < sorted[j].To
		}
		return sorted[i].From < sorted[j].From
	})

	for i, c := range sorted {
		if c.From < 0 || c.To < c.From {
			return nil, fmt.Errorf("apply: invalid change [%d,%d)", c.From, c.To)
		}
		if c.To > doc.Len() {
			return nil, fmt.Errorf("apply: change [%d,%d) out of bounds (len %d)", c.From, c.To, doc.Len())
		}
		if i > 0 && c.From < sorted[i-1].To {
			return nil, fmt.Errorf("apply: overlapping changes at %d", c.From)
		}
	}

	var sb strings.Builder
	pos := 0
	for _, c := range sorted {
		sb.WriteString(doc.Slice(pos, c.From))
		sb.WriteString(c.Insert)
		pos = c.To
	}
	sb.WriteString(doc.Slice(pos, doc.Len()))
	return NewDoc(sb.String()), nil
}

// Apply applies the transaction to doc.
func (t *Transaction) Apply(doc *Doc) (*Doc, error) {
	return Apply(doc, t.Changes)
}
