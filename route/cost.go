// Package route - cost utilities shared by every solver.
//
// Cost is the single authority for route totals: solvers recompute their
// reported TotalDistance through it, so heuristic and exact results are
// always comparable bit-for-bit. Sums are stabilized to 1e-9 to avoid
// cross-platform FP noise.

package route

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Cost sums the directed arc costs along r. When closed is true the arc from
// the last location back to the first is included as well.
//
// Contract:
//   - every consecutive pair (and the closing pair, when closed) must be a
//     defined arc, otherwise ErrUndefinedEdge;
//   - every location must belong to inst (ErrUnknownLocation);
//   - a single-location route costs 0; an empty route is ErrEmptyRoute.
//
// Complexity: O(len(r)).
func Cost(inst *Instance, r Route, closed bool) (float64, error) {
	if inst == nil {
		return 0, ErrNilInstance
	}
	if len(r) == 0 {
		return 0, ErrEmptyRoute
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		ok   bool
		err  error
	)
	// Resolve the first location up front; the loop then advances pairwise.
	if u, ok = inst.index[r[0]]; !ok {
		return 0, ErrUnknownLocation
	}
	for i = 1; i < len(r); i++ {
		if v, ok = inst.index[r[i]]; !ok {
			return 0, ErrUnknownLocation
		}
		if w, err = inst.At(u, v); err != nil {
			return 0, err
		}
		sum += w
		u = v
	}
	if closed && len(r) > 1 {
		first := inst.index[r[0]]
		if w, err = inst.At(u, first); err != nil {
			return 0, err
		}
		sum += w
	}

	return Round(sum), nil
}

// Round returns x rounded to 1e-9 absolute precision. Exposed so that solver
// packages stabilize derived quantities (e.g. optimality gaps) the same way.
func Round(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
