// Package lp is the generic linear / mixed-integer programming layer behind
// the exact route solver.
//
// It deliberately knows nothing about routing: a Model is just bounded
// variables, a minimize objective and two-sided linear row constraints
// (lower <= a*x <= upper, the row shape HiGHS uses). Callers hand a Model to
// a Backend and get back a Result: a Status, the objective value and one
// value per variable.
//
// Two backends are provided, both driving the same deterministic
// branch-and-bound search over LP relaxations:
//
//   - NewBranchBound: pure Go; relaxations are solved with gonum's simplex
//     (optimize/convex/lp) after an in-package standard-form conversion.
//   - NewBranchBoundHiGHS: relaxations are solved by the HiGHS solver through
//     the gohighs bindings (cgo); branching bounds are passed as column
//     bounds, so only the plain LP surface of HiGHS is exercised.
//
// Both honor context cancellation and deadlines: when ctx expires the search
// stops and Solve returns ctx.Err() - callers map that to their own timeout
// or interruption sentinel.
//
// The search itself is intentionally simple: depth-first, branch on the most
// fractional integer variable, prune by incumbent. It is exact (StatusOptimal
// means proven optimal) and deterministic: identical models yield identical
// results.
package lp
