// Package route - route invariant checks shared by solvers and tests.

package route

// ValidateRoute verifies the structural invariants of r against inst.
//
// Checks, in priority order:
//  1. inst non-nil and non-empty (ErrNilInstance / ErrEmptyInstance).
//  2. r non-empty, all members known (ErrEmptyRoute / ErrUnknownLocation).
//  3. no location visited twice (ErrRepeatedLocation).
//  4. visit-all instances: r covers every location, i.e. len(r)==inst.Len()
//     (ErrIncompleteRoute).
//  5. terminal instances: r starts at the instance start and finishes at the
//     instance end; closed is rejected (ErrTerminalMismatch).
//
// Arc definedness along the route is the business of Cost; ValidateRoute is
// purely structural so the two can be reported independently.
//
// Complexity: O(len(r)) time, O(n) extra space.
func ValidateRoute(inst *Instance, r Route, closed bool) error {
	if inst == nil {
		return ErrNilInstance
	}
	if inst.Len() == 0 {
		return ErrEmptyInstance
	}
	if len(r) == 0 {
		return ErrEmptyRoute
	}

	var (
		seen = make([]bool, inst.Len())
		idx  int
		ok   bool
	)
	for _, id := range r {
		if idx, ok = inst.index[id]; !ok {
			return ErrUnknownLocation
		}
		if seen[idx] {
			return ErrRepeatedLocation
		}
		seen[idx] = true
	}

	if !inst.TerminalMode() {
		if len(r) != inst.Len() {
			return ErrIncompleteRoute
		}

		return nil
	}

	// Terminal mode: endpoints fixed, closure meaningless.
	if closed {
		return ErrTerminalMismatch
	}
	if inst.index[r[0]] != inst.start || inst.index[r[len(r)-1]] != inst.end {
		return ErrTerminalMismatch
	}

	return nil
}
