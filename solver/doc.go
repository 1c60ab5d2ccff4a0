// Package solver contains the two route-minimization strategies and the
// comparator that evaluates them on one shared instance.
//
// Both strategies implement the same capability contract:
//
//	Solve(ctx, *route.Instance) (route.Solution, error)
//
// so further heuristics can be added without touching the comparator.
//
//   - MILP encodes the instance as a mixed-integer program - one binary
//     variable per directed arc, degree constraints, and MTZ position
//     variables for subtour elimination - and delegates to a generic lp.Backend.
//     Its solutions are provably optimal for the given distances.
//   - Greedy builds a route by always walking the cheapest defined arc to an
//     unvisited location. Fast (O(n^2)), deterministic (ties break on the
//     lexicographically smallest identifier), and documented as the baseline:
//     no optimality guarantee.
//
// Compare runs both on the same read-only instance, sequentially, and
// reports each outcome independently: a failure on one side never suppresses
// the other side's solution (the report is partial instead).
//
// Route semantics follow the instance: visit-all instances yield Hamiltonian
// routes (open path by default, closed cycle via Options.ClosedCycle);
// terminal instances yield start-to-end routes over defined arcs with
// optional interior stops.
//
// Determinism: for a fixed instance and options both solvers return the same
// total distance on every run; Greedy also returns the identical sequence.
// MILP tie-breaks among equal-cost optima depend only on the deterministic
// backend search, never on map iteration or time.
package solver
