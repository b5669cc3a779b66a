package accordion

// applyTap computes the next open set after a header tap. The open set is
// ordered oldest-opened first, newest last.
//
// Tapping an open section closes it, leaving the relative order of the others
// untouched. Tapping a closed section appends it; if that pushes the set past
// maxOpen, the oldest entries are evicted from the front until the cap holds.
//
// The function is pure: the result depends only on its arguments, and the
// input slice is never mutated.
func applyTap(open []SectionID, maxOpen int, tapped SectionID) []SectionID {
	if maxOpen < 1 {
		maxOpen = 1
	}

	for i, id := range open {
		if id == tapped {
			// Toggle-close.
			next := make([]SectionID, 0, len(open)-1)
			next = append(next, open[:i]...)
			next = append(next, open[i+1:]...)
			return next
		}
	}

	next := make([]SectionID, 0, len(open)+1)
	next = append(next, open...)
	next = append(next, tapped)
	if excess := len(next) - maxOpen; excess > 0 {
		next = next[excess:]
	}
	return next
}

// containsID reports whether id is a member of the open set.
func containsID(open []SectionID, id SectionID) bool {
	for _, v := range open {
		if v == id {
			return true
		}
	}
	return false
}
