package lp

import "math"

// Variable is one decision column: box bounds, objective cost and an
// integrality flag.
type Variable struct {
	Name    string
	Lower   float64
	Upper   float64
	Cost    float64
	Integer bool
}

// Coef is a single sparse entry of a constraint row.
type Coef struct {
	Var   int
	Value float64
}

// Constraint is a two-sided linear row: Lower <= sum(Coefs) <= Upper.
// Use math.Inf for one-sided rows and Lower==Upper for equalities.
type Constraint struct {
	Lower float64
	Coefs []Coef
	Upper float64
}

// Model is a minimize-only MILP: variables plus row constraints. Build it
// once with AddVariable/AddConstraint and hand it to a Backend; backends
// treat it as read-only.
type Model struct {
	vars []Variable
	cons []Constraint
}

// NewModel returns an empty model.
func NewModel() *Model { return &Model{} }

// AddVariable appends a column and returns its index.
func (m *Model) AddVariable(name string, lower, upper, cost float64, integer bool) int {
	m.vars = append(m.vars, Variable{Name: name, Lower: lower, Upper: upper, Cost: cost, Integer: integer})

	return len(m.vars) - 1
}

// AddConstraint appends a row lower <= coefs*x <= upper.
// The coefficient slice is retained; callers must not mutate it afterwards.
func (m *Model) AddConstraint(lower float64, coefs []Coef, upper float64) {
	m.cons = append(m.cons, Constraint{Lower: lower, Coefs: coefs, Upper: upper})
}

// NumVariables returns the number of columns.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumConstraints returns the number of rows.
func (m *Model) NumConstraints() int { return len(m.cons) }

// Variable returns a copy of column i.
func (m *Model) Variable(i int) Variable { return m.vars[i] }

// validate enforces the structural contract shared by all backends.
// Error priority: nil model -> empty model -> bounds -> coefficients.
func (m *Model) validate() error {
	if m == nil {
		return ErrNilModel
	}
	if len(m.vars) == 0 {
		return ErrNoVariables
	}

	var v Variable
	for _, v = range m.vars {
		// Lower must be finite: the simplex conversion shifts variables to
		// a zero lower bound. Upper may be +Inf.
		if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) || math.IsInf(v.Lower, 0) {
			return ErrBadBounds
		}
		if v.Lower > v.Upper {
			return ErrBadBounds
		}
	}

	var (
		c  Constraint
		cf Coef
	)
	for _, c = range m.cons {
		if math.IsNaN(c.Lower) || math.IsNaN(c.Upper) || c.Lower > c.Upper {
			return ErrBadCoef
		}
		for _, cf = range c.Coefs {
			if cf.Var < 0 || cf.Var >= len(m.vars) {
				return ErrBadCoef
			}
			if math.IsNaN(cf.Value) || math.IsInf(cf.Value, 0) {
				return ErrBadCoef
			}
		}
	}

	return nil
}
