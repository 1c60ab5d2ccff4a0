// Package lp - HiGHS-backed relaxation engine (cgo).
//
// Only the plain LP surface of gohighs is used: column costs and bounds plus
// dense rows. Integrality is handled entirely by the branch-and-bound driver
// through the per-node column bounds, so the two engines are interchangeable
// and produce identical search trees.

package lp

import (
	"fmt"

	"github.com/bartolsthoorn/gohighs/highs"
)

// highsRelaxation solves node relaxations with the HiGHS solver.
// The zero value is ready to use.
type highsRelaxation struct{}

// relax implements relaxSolver.
func (highsRelaxation) relax(m *Model, lower, upper []float64) (*relaxed, error) {
	var (
		n     = len(m.vars)
		costs = make([]float64, n)
		lo    = make([]float64, n)
		hi    = make([]float64, n)
		i     int
	)
	for i = 0; i < n; i++ {
		costs[i] = m.vars[i].Cost
	}
	// Copy the node bounds: highs.Model keeps the slices.
	copy(lo, lower)
	copy(hi, upper)

	model := highs.Model{
		ColCosts: costs,
		ColLower: lo,
		ColUpper: hi,
	}

	var (
		c   Constraint
		cf  Coef
		row []float64
	)
	for _, c = range m.cons {
		row = make([]float64, n)
		for _, cf = range c.Coefs {
			row[cf.Var] += cf.Value
		}
		model.AddDenseRow(c.Lower, row, c.Upper)
	}

	sol, err := model.Solve(highs.WithOutput(false))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumeric, err)
	}
	switch {
	case sol.IsOptimal():
		values := make([]float64, n)
		copy(values, sol.ColValues)

		return &relaxed{status: StatusOptimal, objective: sol.Objective, values: values}, nil
	case sol.IsInfeasible():
		return &relaxed{status: StatusInfeasible}, nil
	case sol.IsUnbounded():
		return &relaxed{status: StatusUnbounded}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected HiGHS status %v", ErrNumeric, sol.Status)
	}
}
