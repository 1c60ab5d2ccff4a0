// SPDX-License-Identifier: MIT
// Package lp: sentinel error set. All backends return these sentinels (or
// ctx.Err()); tests match via errors.Is. No panics on user input.

package lp

import "errors"

var (
	// ErrNilModel indicates a nil *Model was handed to a backend.
	ErrNilModel = errors.New("lp: model is nil")

	// ErrNoVariables indicates a model without variables.
	ErrNoVariables = errors.New("lp: model has no variables")

	// ErrBadBounds indicates a variable with lower > upper, a non-finite
	// lower bound, or NaN anywhere in the bounds.
	ErrBadBounds = errors.New("lp: invalid variable bounds")

	// ErrBadCoef indicates a constraint coefficient referencing a variable
	// index outside the model, or a non-finite coefficient.
	ErrBadCoef = errors.New("lp: invalid constraint coefficient")

	// ErrNumeric wraps an unexpected failure of the underlying LP engine
	// (singular basis, iteration blow-up, ...).
	ErrNumeric = errors.New("lp: relaxation solver failed")
)
