package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/optiroute/route"
	"github.com/katalvlaran/optiroute/solver"
	"github.com/stretchr/testify/require"
)

// TestMILP_CourierOptimal reproduces the expected result: the exact route
// through the terminal diagram costs 20 and skips P1.
func TestMILP_CourierOptimal(t *testing.T) {
	inst := courierInstance(t)

	sol, err := solver.NewMILP(solver.DefaultOptions()).Solve(context.Background(), inst)
	require.NoError(t, err)

	require.Equal(t, 20.0, sol.TotalDistance)
	require.Equal(t, route.Route{"A", "P2", "P3", "B"}, sol.Route)
	require.NoError(t, route.ValidateRoute(inst, sol.Route, false))
}

// TestMILP_OpenPath finds the optimal Hamiltonian path on the ring: 3 hops
// of cost 1 each.
func TestMILP_OpenPath(t *testing.T) {
	inst := denseInstance(t, ringIDs, ringDist)

	sol, err := solver.NewMILP(solver.DefaultOptions()).Solve(context.Background(), inst)
	require.NoError(t, err)

	require.Equal(t, 3.0, sol.TotalDistance)
	require.Len(t, sol.Route, 4)
	require.Equal(t, route.Location("a"), sol.Route[0])
	require.False(t, sol.Closed)
	require.NoError(t, route.ValidateRoute(inst, sol.Route, false))
}

// TestMILP_ClosedCycle finds the optimal Hamiltonian cycle on the ring.
func TestMILP_ClosedCycle(t *testing.T) {
	inst := denseInstance(t, ringIDs, ringDist)

	opts := solver.DefaultOptions()
	opts.ClosedCycle = true
	sol, err := solver.NewMILP(opts).Solve(context.Background(), inst)
	require.NoError(t, err)

	require.Equal(t, 4.0, sol.TotalDistance)
	require.Len(t, sol.Route, 4)
	require.Equal(t, route.Location("a"), sol.Route[0])
	require.True(t, sol.Closed)
	require.NoError(t, route.ValidateRoute(inst, sol.Route, true))
}

// TestMILP_StartOverride pins the open path to a non-default start.
func TestMILP_StartOverride(t *testing.T) {
	inst := denseInstance(t, ringIDs, ringDist)

	opts := solver.DefaultOptions()
	opts.Start = "c"
	sol, err := solver.NewMILP(opts).Solve(context.Background(), inst)
	require.NoError(t, err)

	require.Equal(t, route.Location("c"), sol.Route[0])
	require.Equal(t, 3.0, sol.TotalDistance)
}

// TestMILP_Determinism: re-running on an unchanged instance returns the
// identical cost and, for the unique optimum, the identical route.
func TestMILP_Determinism(t *testing.T) {
	inst := courierInstance(t)
	s := solver.NewMILP(solver.DefaultOptions())

	first, err := s.Solve(context.Background(), inst)
	require.NoError(t, err)
	second, err := s.Solve(context.Background(), inst)
	require.NoError(t, err)

	require.Equal(t, first.TotalDistance, second.TotalDistance)
	require.Equal(t, first.Route, second.Route)
}

// TestMILP_Boundaries: single location is trivially optimal, zero locations
// is the empty-instance sentinel.
func TestMILP_Boundaries(t *testing.T) {
	s := solver.NewMILP(solver.DefaultOptions())

	one, err := route.New([]route.Location{"only"}, nil)
	require.NoError(t, err)
	sol, err := s.Solve(context.Background(), one)
	require.NoError(t, err)
	require.Equal(t, 0.0, sol.TotalDistance)
	require.Equal(t, route.Route{"only"}, sol.Route)

	empty, err := route.New(nil, nil)
	require.NoError(t, err)
	_, err = s.Solve(context.Background(), empty)
	require.ErrorIs(t, err, route.ErrEmptyInstance)

	_, err = s.Solve(context.Background(), nil)
	require.ErrorIs(t, err, route.ErrNilInstance)
}

// TestMILP_Infeasible: a visit-all instance with an unreachable location has
// no valid route.
func TestMILP_Infeasible(t *testing.T) {
	inst, err := route.NewFromArcs(
		[]route.Location{"a", "b", "c"},
		[]route.Arc{
			{From: "a", To: "b", Distance: 1},
			{From: "b", To: "a", Distance: 1},
		},
	)
	require.NoError(t, err)

	_, err = solver.NewMILP(solver.DefaultOptions()).Solve(context.Background(), inst)
	require.ErrorIs(t, err, solver.ErrInfeasible)
}

// TestMILP_Timeout: an expired budget surfaces as ErrTimeout.
func TestMILP_Timeout(t *testing.T) {
	inst := courierInstance(t)

	opts := solver.DefaultOptions()
	opts.TimeLimit = time.Nanosecond
	_, err := solver.NewMILP(opts).Solve(context.Background(), inst)
	require.ErrorIs(t, err, solver.ErrTimeout)
}

// TestMILP_Interrupted: external cancellation surfaces as ErrInterrupted.
func TestMILP_Interrupted(t *testing.T) {
	inst := courierInstance(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solver.NewMILP(solver.DefaultOptions()).Solve(ctx, inst)
	require.ErrorIs(t, err, solver.ErrInterrupted)
}

// TestMILP_OptionRejections: closed cycles on terminal instances and unknown
// start overrides are refused up front.
func TestMILP_OptionRejections(t *testing.T) {
	term := courierInstance(t)
	opts := solver.DefaultOptions()
	opts.ClosedCycle = true
	_, err := solver.NewMILP(opts).Solve(context.Background(), term)
	require.ErrorIs(t, err, solver.ErrClosedTerminal)

	all := denseInstance(t, ringIDs, ringDist)
	opts = solver.DefaultOptions()
	opts.Start = "nope"
	_, err = solver.NewMILP(opts).Solve(context.Background(), all)
	require.ErrorIs(t, err, route.ErrUnknownLocation)
}
