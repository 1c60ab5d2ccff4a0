// Package solver - baseline strategy: greedy nearest neighbor.

package solver

import (
	"context"

	"github.com/katalvlaran/optiroute/route"
)

// Greedy is the heuristic solver: from the current location always walk the
// cheapest defined arc toward a not-yet-visited location.
//
//   - Visit-all instances: append the nearest unvisited location until every
//     location is on the route; with Options.ClosedCycle the arc back to the
//     start must exist and is added to the total.
//   - Terminal instances: walk cheapest-first from the start terminal until
//     the end terminal is reached (interior stops are whatever the walk
//     happens to pass, mirroring the documented baseline).
//
// Tie-break: among equally cheap candidates the lexicographically smallest
// location identifier wins, making every run reproducible.
//
// No optimality guarantee - this is the comparison baseline. A location with
// no usable outgoing arc aborts the walk with ErrDeadEnd, which does not
// prove infeasibility.
type Greedy struct {
	Opts Options
}

// Compile-time capability check.
var _ Solver = (*Greedy)(nil)

// NewGreedy returns a heuristic solver with the given options.
func NewGreedy(opts Options) *Greedy { return &Greedy{Opts: opts} }

// Solve implements Solver.
//
// Errors: route.ErrNilInstance, route.ErrEmptyInstance,
// route.ErrUnknownLocation (bad Options.Start), ErrClosedTerminal,
// ErrDeadEnd, ErrInterrupted.
//
// Complexity: O(n^2) time, O(n) space.
func (g *Greedy) Solve(ctx context.Context, inst *route.Instance) (route.Solution, error) {
	if inst == nil {
		return route.Solution{}, route.ErrNilInstance
	}
	n := inst.Len()
	if n == 0 {
		return route.Solution{}, route.ErrEmptyInstance
	}
	if inst.TerminalMode() && g.Opts.ClosedCycle {
		return route.Solution{}, ErrClosedTerminal
	}
	if err := ctx.Err(); err != nil {
		// The walk is O(n^2) and never blocks; honoring an already-dead
		// context at entry is all the cancellation greedy needs.
		return route.Solution{}, ErrInterrupted
	}

	start, err := startIndexOf(inst, g.Opts)
	if err != nil {
		return route.Solution{}, err
	}

	var (
		ids     = inst.Locations()
		visited = make([]bool, n)
		r       = make(route.Route, 1, n)
		cur     = start
		endIdx  = -1
	)
	if inst.TerminalMode() {
		_, endIdx = inst.TerminalIndexes()
	}
	r[0] = ids[start]
	visited[start] = true

	for {
		if inst.TerminalMode() {
			if cur == endIdx {
				break
			}
		} else if len(r) == n {
			break
		}

		next := nearestUnvisited(inst, ids, cur, visited)
		if next < 0 {
			return route.Solution{}, ErrDeadEnd
		}
		r = append(r, ids[next])
		visited[next] = true
		cur = next
	}

	total, err := route.Cost(inst, r, g.Opts.ClosedCycle)
	if err != nil {
		// Only the closing arc can be missing at this point.
		return route.Solution{}, ErrDeadEnd
	}

	return route.Solution{Route: r, TotalDistance: total, Closed: g.Opts.ClosedCycle}, nil
}

// nearestUnvisited returns the unvisited location with the cheapest defined
// arc from cur, breaking cost ties on the lexicographically smallest
// identifier. Returns -1 when no candidate is reachable.
func nearestUnvisited(inst *route.Instance, ids []route.Location, cur int, visited []bool) int {
	var (
		best     = -1
		bestCost float64
		j        int
		w        float64
		err      error
	)
	for j = 0; j < inst.Len(); j++ {
		if visited[j] {
			continue
		}
		if w, err = inst.At(cur, j); err != nil {
			continue // undefined arc
		}
		switch {
		case best < 0, w < bestCost:
			best, bestCost = j, w
		case w == bestCost && ids[j] < ids[best]:
			best = j
		}
	}

	return best
}
