// Package solver - exact strategy: mixed-integer programming.
//
// Formulation, shared by both instance modes:
//
//   - one binary variable per usable directed arc, objective = arc cost;
//   - degree rows pin the route shape (visit-all: every location has exactly
//     one selected outgoing and one incoming arc; terminal: one arc leaves
//     start, one enters end, interior locations balance in/out and are
//     entered at most once);
//   - MTZ position variables u (continuous, u_start = 0) with
//     u_i - u_j + n*x_ij <= n-1 on every arc not entering the start, so the
//     selected arcs can never decompose into disjoint sub-cycles.
//
// Open Hamiltonian paths reuse the cycle formulation through zero-cost
// virtual closure arcs v->start: the cycle pays nothing to return, which is
// exactly "end the path anywhere". The virtual arc is dropped on extraction.
//
// The backend is pluggable (lp.Backend); swapping engines never touches the
// constraint construction above.

package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/optiroute/lp"
	"github.com/katalvlaran/optiroute/route"
)

// MILP is the exact solver. Construct with NewMILP; the zero value is also
// usable and equivalent to NewMILP(DefaultOptions()).
type MILP struct {
	Opts Options
}

// Compile-time capability check.
var _ Solver = (*MILP)(nil)

// NewMILP returns an exact solver with the given options.
func NewMILP(opts Options) *MILP { return &MILP{Opts: opts} }

// arcVar ties one model column to its directed arc. Virtual columns are the
// zero-cost closure arcs of open-path mode and never appear in routes.
type arcVar struct {
	from    int
	to      int
	idx     int
	virtual bool
}

// Solve implements Solver.
//
// Errors: route.ErrNilInstance, route.ErrEmptyInstance,
// route.ErrUnknownLocation (bad Options.Start), ErrClosedTerminal,
// ErrInfeasible, ErrTimeout, ErrInterrupted, ErrBackend; backend model
// errors (lp.Err*) propagate unchanged.
//
// Complexity: model construction O(n^2); the solve itself is exponential in
// the worst case (exact MILP), bounded by Options.TimeLimit.
func (s *MILP) Solve(ctx context.Context, inst *route.Instance) (route.Solution, error) {
	if inst == nil {
		return route.Solution{}, route.ErrNilInstance
	}
	n := inst.Len()
	if n == 0 {
		return route.Solution{}, route.ErrEmptyInstance
	}
	if inst.TerminalMode() && s.Opts.ClosedCycle {
		return route.Solution{}, ErrClosedTerminal
	}

	start, err := startIndexOf(inst, s.Opts)
	if err != nil {
		return route.Solution{}, err
	}

	// Trivial boundary: a single location is a zero-cost route; the backend
	// is never consulted.
	if n == 1 {
		only, _ := inst.LocationAt(0)

		return route.Solution{Route: route.Route{only}, TotalDistance: 0, Closed: s.Opts.ClosedCycle}, nil
	}

	// Stage 1 - formulation.
	var (
		model *lp.Model
		arcs  []arcVar
	)
	if inst.TerminalMode() {
		model, arcs = buildTerminalModel(inst)
	} else {
		model, arcs = buildVisitAllModel(inst, start, s.Opts.ClosedCycle)
	}

	// Stage 2 - backend invocation under the configured budget.
	solveCtx := ctx
	if s.Opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, s.Opts.TimeLimit)
		defer cancel()
	}
	res, err := backendOf(s.Opts).Solve(solveCtx, model)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return route.Solution{}, ErrTimeout
		case errors.Is(err, context.Canceled):
			return route.Solution{}, ErrInterrupted
		default:
			return route.Solution{}, err
		}
	}
	switch res.Status {
	case lp.StatusOptimal:
		// fall through to extraction
	case lp.StatusInfeasible:
		return route.Solution{}, ErrInfeasible
	case lp.StatusNodeLimit:
		return route.Solution{}, ErrTimeout
	default:
		return route.Solution{}, fmt.Errorf("%w: status %v", ErrBackend, res.Status)
	}

	// Stage 3 - route extraction and independent re-validation.
	r, err := extractRoute(inst, arcs, res.Values, start)
	if err != nil {
		return route.Solution{}, err
	}
	if err = route.ValidateRoute(inst, r, s.Opts.ClosedCycle); err != nil {
		return route.Solution{}, fmt.Errorf("%w: %w", ErrBackend, err)
	}
	total, err := route.Cost(inst, r, s.Opts.ClosedCycle)
	if err != nil {
		return route.Solution{}, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return route.Solution{Route: r, TotalDistance: total, Closed: s.Opts.ClosedCycle}, nil
}

// buildVisitAllModel encodes the Hamiltonian cycle/path formulation.
// For open paths (closed=false) real arcs into start are dropped and
// replaced by zero-cost virtual closure arcs from every other location.
func buildVisitAllModel(inst *route.Instance, start int, closed bool) (*lp.Model, []arcVar) {
	var (
		n     = inst.Len()
		ids   = inst.Locations()
		m     = lp.NewModel()
		arcs  []arcVar
		i, j  int
		w     float64
		wider = float64(n) // MTZ big-M
	)

	// Arc columns.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || !inst.Defined(i, j) {
				continue
			}
			if j == start && !closed {
				continue // replaced by the virtual closure below
			}
			w, _ = inst.At(i, j)
			idx := m.AddVariable(fmt.Sprintf("x(%s,%s)", ids[i], ids[j]), 0, 1, w, true)
			arcs = append(arcs, arcVar{from: i, to: j, idx: idx})
		}
	}
	if !closed {
		for i = 0; i < n; i++ {
			if i == start {
				continue
			}
			idx := m.AddVariable(fmt.Sprintf("end(%s)", ids[i]), 0, 1, 0, true)
			arcs = append(arcs, arcVar{from: i, to: start, idx: idx, virtual: true})
		}
	}

	// MTZ position columns; the start is pinned to position 0.
	u := make([]int, n)
	for i = 0; i < n; i++ {
		hi := float64(n - 1)
		if i == start {
			hi = 0
		}
		u[i] = m.AddVariable(fmt.Sprintf("u(%s)", ids[i]), 0, hi, 0, false)
	}

	// Degree rows: exactly one selected arc out of and into every location.
	var (
		out = make([][]lp.Coef, n)
		in  = make([][]lp.Coef, n)
		a   arcVar
	)
	for _, a = range arcs {
		out[a.from] = append(out[a.from], lp.Coef{Var: a.idx, Value: 1})
		in[a.to] = append(in[a.to], lp.Coef{Var: a.idx, Value: 1})
	}
	for i = 0; i < n; i++ {
		m.AddConstraint(1, out[i], 1)
		m.AddConstraint(1, in[i], 1)
	}

	// Subtour elimination on real arcs not entering the start.
	for _, a = range arcs {
		if a.virtual || a.to == start {
			continue
		}
		m.AddConstraint(math.Inf(-1), []lp.Coef{
			{Var: u[a.from], Value: 1},
			{Var: u[a.to], Value: -1},
			{Var: a.idx, Value: wider},
		}, wider-1)
	}

	return m, arcs
}

// buildTerminalModel encodes the start-to-end formulation from the flow
// picture: one arc leaves start, one enters end, interior locations balance
// in/out and are entered at most once. Arcs into start and out of end are
// unusable and never become columns.
func buildTerminalModel(inst *route.Instance) (*lp.Model, []arcVar) {
	var (
		n          = inst.Len()
		ids        = inst.Locations()
		start, end = inst.TerminalIndexes()
		m          = lp.NewModel()
		arcs       []arcVar
		i, j       int
		w          float64
		bigM       = float64(n)
	)

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || j == start || i == end || !inst.Defined(i, j) {
				continue
			}
			w, _ = inst.At(i, j)
			idx := m.AddVariable(fmt.Sprintf("x(%s,%s)", ids[i], ids[j]), 0, 1, w, true)
			arcs = append(arcs, arcVar{from: i, to: j, idx: idx})
		}
	}

	u := make([]int, n)
	for i = 0; i < n; i++ {
		hi := float64(n - 1)
		if i == start {
			hi = 0
		}
		u[i] = m.AddVariable(fmt.Sprintf("u(%s)", ids[i]), 0, hi, 0, false)
	}

	var (
		out = make([][]lp.Coef, n)
		in  = make([][]lp.Coef, n)
		a   arcVar
	)
	for _, a = range arcs {
		out[a.from] = append(out[a.from], lp.Coef{Var: a.idx, Value: 1})
		in[a.to] = append(in[a.to], lp.Coef{Var: a.idx, Value: 1})
	}

	// Terminal degrees.
	m.AddConstraint(1, out[start], 1)
	m.AddConstraint(1, in[end], 1)

	// Interior balance and at-most-once visits.
	for i = 0; i < n; i++ {
		if i == start || i == end {
			continue
		}
		balance := make([]lp.Coef, 0, len(out[i])+len(in[i]))
		balance = append(balance, out[i]...)
		for _, c := range in[i] {
			balance = append(balance, lp.Coef{Var: c.Var, Value: -1})
		}
		m.AddConstraint(0, balance, 0)
		m.AddConstraint(0, in[i], 1)
	}

	// No cycles among the selected arcs.
	for _, a = range arcs {
		m.AddConstraint(math.Inf(-1), []lp.Coef{
			{Var: u[a.from], Value: 1},
			{Var: u[a.to], Value: -1},
			{Var: a.idx, Value: bigM},
		}, bigM-1)
	}

	return m, arcs
}

// extractRoute rebuilds the visiting sequence from the selected arc columns.
// Virtual closure arcs are skipped; any structural anomaly in the assignment
// (double successor, early revisit, broken chain) is ErrBackend.
func extractRoute(inst *route.Instance, arcs []arcVar, values []float64, start int) (route.Route, error) {
	var (
		n    = inst.Len()
		succ = make([]int, n)
		i    int
	)
	for i = 0; i < n; i++ {
		succ[i] = -1
	}
	for _, a := range arcs {
		if a.virtual || values[a.idx] < 0.5 {
			continue
		}
		if succ[a.from] != -1 {
			return nil, ErrBackend
		}
		succ[a.from] = a.to
	}

	var (
		ids     = inst.Locations()
		visited = make([]bool, n)
		r       = make(route.Route, 0, n)
		cur     = start
	)
	if inst.TerminalMode() {
		_, end := inst.TerminalIndexes()
		for steps := 0; steps < n; steps++ {
			r = append(r, ids[cur])
			visited[cur] = true
			if cur == end {
				return r, nil
			}
			cur = succ[cur]
			if cur < 0 || visited[cur] {
				return nil, ErrBackend
			}
		}

		return nil, ErrBackend // end never reached within n steps
	}

	for steps := 0; steps < n; steps++ {
		r = append(r, ids[cur])
		visited[cur] = true
		if steps == n-1 {
			break
		}
		cur = succ[cur]
		if cur < 0 || visited[cur] {
			return nil, ErrBackend
		}
	}

	return r, nil
}
