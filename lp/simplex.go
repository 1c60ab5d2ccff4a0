// Package lp - gonum-backed relaxation engine.
//
// The general model (box bounds + two-sided rows) is converted to standard
// form (min c*y, A*y = b, y >= 0) by hand:
//
//   - each variable is shifted by its lower bound: y_i = x_i - lo_i;
//   - each finite upper bound becomes a row y_i + s = hi_i - lo_i;
//   - each row splits into a*y + s = Upper' and a*y - s = Lower' (equalities
//     included), every row owning its own non-negative slack - that keeps the
//     standard-form matrix at full row rank even when the logical constraints
//     are linearly dependent.
//
// gonum's Phase-I/Phase-II simplex then handles negative right-hand sides,
// so no sign juggling is needed here.

package lp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// simplexTol is the convergence tolerance handed to gonum's Simplex.
const simplexTol = 1e-10

// gonumRelaxation solves node relaxations with gonum's dense simplex.
// The zero value is ready to use.
type gonumRelaxation struct{}

// relax implements relaxSolver.
//
// Complexity: standard-form assembly is O(rows*cols); the simplex itself is
// exponential in the worst case but fast on the small dense models the route
// formulation produces.
func (gonumRelaxation) relax(m *Model, lower, upper []float64) (*relaxed, error) {
	nVar := len(m.vars)

	// Count standard-form columns and rows up front: one slack per finite
	// upper bound and per inequality side.
	var (
		rows int
		cols = nVar
		i    int
		c    Constraint
	)
	for i = 0; i < nVar; i++ {
		if !math.IsInf(upper[i], 1) {
			rows++
			cols++
		}
	}
	for _, c = range m.cons {
		// Equalities are split into <= and >= as well: every row then owns a
		// private slack column, which keeps A at full row rank even when the
		// logical constraints are linearly dependent (degree systems are).
		if !math.IsInf(c.Upper, 1) {
			rows++
			cols++
		}
		if !math.IsInf(c.Lower, -1) {
			rows++
			cols++
		}
	}

	if rows == 0 {
		// Degenerate: no rows at all. Minimize each column independently.
		return relaxBoxOnly(m, lower, upper)
	}

	var (
		a     = mat.NewDense(rows, cols, nil)
		b     = make([]float64, rows)
		obj   = make([]float64, cols)
		shift float64 // objective offset from the variable shift
		row   int
		slack = nVar // next free slack column
	)
	for i = 0; i < nVar; i++ {
		obj[i] = m.vars[i].Cost
		shift += m.vars[i].Cost * lower[i]
	}

	// Upper-bound rows: y_i + s = hi - lo.
	for i = 0; i < nVar; i++ {
		if math.IsInf(upper[i], 1) {
			continue
		}
		a.Set(row, i, 1)
		a.Set(row, slack, 1)
		b[row] = upper[i] - lower[i]
		row++
		slack++
	}

	// Constraint rows over the shifted variables.
	var (
		cf  Coef
		rhs float64
	)
	for _, c = range m.cons {
		// rhs correction: a*x = a*y + a*lo.
		rhs = 0
		for _, cf = range c.Coefs {
			rhs += cf.Value * lower[cf.Var]
		}

		if !math.IsInf(c.Upper, 1) {
			for _, cf = range c.Coefs {
				a.Set(row, cf.Var, a.At(row, cf.Var)+cf.Value)
			}
			a.Set(row, slack, 1)
			b[row] = c.Upper - rhs
			row++
			slack++
		}
		if !math.IsInf(c.Lower, -1) {
			for _, cf = range c.Coefs {
				a.Set(row, cf.Var, a.At(row, cf.Var)+cf.Value)
			}
			a.Set(row, slack, -1)
			b[row] = c.Lower - rhs
			row++
			slack++
		}
	}

	opt, y, err := gonumlp.Simplex(obj, a, b, simplexTol, nil)
	switch {
	case err == nil:
		// fallthrough to extraction
	case errors.Is(err, gonumlp.ErrInfeasible):
		return &relaxed{status: StatusInfeasible}, nil
	case errors.Is(err, gonumlp.ErrUnbounded):
		return &relaxed{status: StatusUnbounded}, nil
	default:
		return nil, fmt.Errorf("%w: %w", ErrNumeric, err)
	}

	// Undo the shift: x_i = y_i + lo_i.
	values := make([]float64, nVar)
	for i = 0; i < nVar; i++ {
		values[i] = y[i] + lower[i]
	}

	return &relaxed{status: StatusOptimal, objective: opt + shift, values: values}, nil
}

// relaxBoxOnly minimizes a model with no rows: each variable independently
// sits at the bound its cost prefers. Unbounded when a negatively priced
// variable has no finite upper bound.
func relaxBoxOnly(m *Model, lower, upper []float64) (*relaxed, error) {
	var (
		values = make([]float64, len(m.vars))
		obj    float64
		i      int
	)
	for i = range m.vars {
		if m.vars[i].Cost >= 0 {
			values[i] = lower[i]
		} else {
			if math.IsInf(upper[i], 1) {
				return &relaxed{status: StatusUnbounded}, nil
			}
			values[i] = upper[i]
		}
		obj += m.vars[i].Cost * values[i]
	}

	return &relaxed{status: StatusOptimal, objective: obj, values: values}, nil
}
