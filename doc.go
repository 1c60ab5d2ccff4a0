// Package optiroute computes minimum-distance directed routes over a fixed
// set of locations and compares an exact optimizer against a fast heuristic
// on identical input.
//
// 🚀 What is optiroute?
//
//	A small, deterministic route-minimization toolkit built from four pieces:
//		• route/ : the shared problem model: locations, directed distances,
//		  instances (visit-all or terminal start→end), routes, solutions,
//		  cost & validity helpers, exact JSON round-trip
//		• lp/    : a generic MILP layer: bounded variables, linear rows,
//		  pluggable backends (pure-Go branch-and-bound over gonum's simplex,
//		  or HiGHS via gohighs)
//		• solver/: the two strategies under one contract: MILP (provably
//		  optimal, degree + MTZ subtour-elimination formulation) and Greedy
//		  (nearest neighbor, documented baseline), plus Compare which runs
//		  both and reports the optimality gap
//		• render/: Graphviz DOT diagrams of instances and solutions
//
// ✨ Why choose optiroute?
//
//   - Identical input, honest comparison: both solvers consume one
//     read-only instance and totals are stabilized the same way
//   - Strict sentinels: every failure is a package-level error matched
//     via errors.Is; nothing is swallowed, partial reports stay usable
//   - Deterministic: fixed tie-breaks and deterministic search, no
//     time-based randomness anywhere
//   - Pluggable exact engine: swap LP/MILP backends without touching the
//     constraint construction
//
// Quick ASCII picture of the canonical example (terminals A→B):
//
//	A ──2──▶ P1 ──30──▶ B
//	 ╲        │╲        ▲
//	  7      10 10      5
//	   ╲      ▼  ╲      │
//	    ▶ P2 ──8──▶ P3 ─┘
//
// The exact route A→P2→P3→B costs 20; the greedy walk A→P1→P2→P3→B costs
// 25; Compare reports an optimality gap of 5.
package optiroute
