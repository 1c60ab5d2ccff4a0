package lp_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/optiroute/lp"
	"github.com/stretchr/testify/require"
)

// TestBranchBound_PureLP solves a relaxation-only model (no integer columns):
// min -x-y subject to x+y <= 1.5, x,y in [0,1].
func TestBranchBound_PureLP(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x", 0, 1, -1, false)
	y := m.AddVariable("y", 0, 1, -1, false)
	m.AddConstraint(math.Inf(-1), []lp.Coef{{Var: x, Value: 1}, {Var: y, Value: 1}}, 1.5)

	res, err := lp.NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, res.Status)
	require.InDelta(t, -1.5, res.Objective, 1e-6)
}

// TestBranchBound_Knapsack checks a tiny 0/1 knapsack:
// max 5a+4b+3c (min the negation) with 2a+3b+c <= 5. Optimum picks a and b.
func TestBranchBound_Knapsack(t *testing.T) {
	m := lp.NewModel()
	a := m.AddVariable("a", 0, 1, -5, true)
	b := m.AddVariable("b", 0, 1, -4, true)
	c := m.AddVariable("c", 0, 1, -3, true)
	m.AddConstraint(math.Inf(-1), []lp.Coef{{Var: a, Value: 2}, {Var: b, Value: 3}, {Var: c, Value: 1}}, 5)

	res, err := lp.NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, res.Status)
	require.InDelta(t, -9, res.Objective, 1e-6)
	require.Equal(t, 1.0, res.Values[a])
	require.Equal(t, 1.0, res.Values[b])
	require.Equal(t, 0.0, res.Values[c])
}

// TestBranchBound_IntegerRounding forces branching: min x, x integer in
// [0,10], x >= 1.5. The LP relaxation sits at 1.5; the answer must be 2.
func TestBranchBound_IntegerRounding(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x", 0, 10, 1, true)
	m.AddConstraint(1.5, []lp.Coef{{Var: x, Value: 1}}, math.Inf(1))

	res, err := lp.NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, res.Status)
	require.Equal(t, 2.0, res.Values[x])
	require.InDelta(t, 2, res.Objective, 1e-6)
}

// TestBranchBound_Infeasible: a binary variable cannot reach 2.
func TestBranchBound_Infeasible(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x", 0, 1, 1, true)
	m.AddConstraint(2, []lp.Coef{{Var: x, Value: 1}}, math.Inf(1))

	res, err := lp.NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, lp.StatusInfeasible, res.Status)
}

// TestBranchBound_Unbounded: min -x with x unbounded above and no rows.
func TestBranchBound_Unbounded(t *testing.T) {
	m := lp.NewModel()
	m.AddVariable("x", 0, math.Inf(1), -1, false)

	res, err := lp.NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, lp.StatusUnbounded, res.Status)
}

// TestBranchBound_Cancellation: a canceled context surfaces as ctx.Err().
func TestBranchBound_Cancellation(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x", 0, 1, 1, true)
	m.AddConstraint(0, []lp.Coef{{Var: x, Value: 1}}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lp.NewBranchBound().Solve(ctx, m)
	require.ErrorIs(t, err, context.Canceled)
}

// TestBranchBound_NodeLimit: a one-node budget on a model that needs
// branching reports StatusNodeLimit.
func TestBranchBound_NodeLimit(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x", 0, 10, 1, true)
	m.AddConstraint(1.5, []lp.Coef{{Var: x, Value: 1}}, math.Inf(1))

	bb := lp.NewBranchBound()
	bb.MaxNodes = 1

	res, err := bb.Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, lp.StatusNodeLimit, res.Status)
}

// TestBranchBound_Determinism: identical models yield identical results.
func TestBranchBound_Determinism(t *testing.T) {
	build := func() *lp.Model {
		m := lp.NewModel()
		a := m.AddVariable("a", 0, 1, -3, true)
		b := m.AddVariable("b", 0, 1, -2, true)
		c := m.AddVariable("c", 0, 1, -2, true)
		m.AddConstraint(math.Inf(-1), []lp.Coef{{Var: a, Value: 1}, {Var: b, Value: 1}, {Var: c, Value: 1}}, 2)
		return m
	}

	r1, err := lp.NewBranchBound().Solve(context.Background(), build())
	require.NoError(t, err)
	r2, err := lp.NewBranchBound().Solve(context.Background(), build())
	require.NoError(t, err)

	require.Equal(t, r1.Status, r2.Status)
	require.Equal(t, r1.Objective, r2.Objective)
	require.Equal(t, r1.Values, r2.Values)
}

// TestBranchBound_ModelValidation walks the structural sentinels.
func TestBranchBound_ModelValidation(t *testing.T) {
	bb := lp.NewBranchBound()
	ctx := context.Background()

	_, err := bb.Solve(ctx, nil)
	require.ErrorIs(t, err, lp.ErrNilModel)

	_, err = bb.Solve(ctx, lp.NewModel())
	require.ErrorIs(t, err, lp.ErrNoVariables)

	m := lp.NewModel()
	m.AddVariable("x", 5, 1, 0, false) // lower > upper
	_, err = bb.Solve(ctx, m)
	require.ErrorIs(t, err, lp.ErrBadBounds)

	m = lp.NewModel()
	m.AddVariable("x", 0, 1, 0, false)
	m.AddConstraint(0, []lp.Coef{{Var: 7, Value: 1}}, 1) // index out of range
	_, err = bb.Solve(ctx, m)
	require.ErrorIs(t, err, lp.ErrBadCoef)
}
