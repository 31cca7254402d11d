package edit

// The engine frequently emits several discrete changes that fall inside one
// logical selection range. Tree-level remapping cannot recover the intended
// selection in that situation, so commands carry the range through an explicit
// fold: after computing each change (always expressed against the original
// document), the working range is nudged by MoveRangeInsert or MoveRangeDelete
// while the original range supplies the comparison boundaries.

// MoveRangeInsert shifts r to account for an insertion-only change c.
//
// The start boundary moves when the insertion lands at or before the original
// start; the end boundary moves when the insertion lands strictly inside the
// original range, or at the position of an originally empty range.
func MoveRangeInsert(r, orig Range, c Change) Range {
	n := len(c.Insert)
	if n == 0 {
		return r
	}
	if c.From <= orig.From {
		r.From += n
	}
	if c.From < orig.To || (c.From == orig.To && orig.Empty()) {
		r.To += n
	}
	return r
}

// MoveRangeDelete shifts and shrinks r to account for a deletion-only change
// c, under the same original-boundary ordering rule as MoveRangeInsert.
func MoveRangeDelete(r, orig Range, c Change) Range {
	if c.To <= c.From {
		return r
	}
	if c.From <= orig.From {
		if cut := min(c.To, orig.From) - c.From; cut > 0 {
			r.From -= cut
		}
	}
	if c.From <= orig.To {
		if cut := min(c.To, orig.To) - c.From; cut > 0 {
			r.To -= cut
		}
	}
	return r
}

// MoveRange folds a replacement change into r: the deleted span first, then
// the insertion at the change position.
func MoveRange(r, orig Range, c Change) Range {
	r = MoveRangeDelete(r, orig, Change{From: c.From, To: c.To})
	return MoveRangeInsert(r, orig, Change{From: c.From, Insert: c.Insert})
}
