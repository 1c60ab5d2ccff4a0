// SPDX-License-Identifier: MIT
// Package route: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the route
// package. All helpers MUST return these sentinels and tests MUST check them
// via errors.Is. No helper panics on user-triggered error conditions.

package route

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "route: ..." for consistency. Do not %w wrap
// these sentinels when returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary - callers still match
// via errors.Is.

var (
	// ErrNilInstance indicates that a nil *Instance was passed to a helper
	// or solver.
	ErrNilInstance = errors.New("route: instance is nil")

	// ErrEmptyInstance is returned when an operation requires at least one
	// location but the instance holds none.
	ErrEmptyInstance = errors.New("route: instance has no locations")

	// ErrBadLocation signals an empty location identifier.
	ErrBadLocation = errors.New("route: empty location identifier")

	// ErrDuplicateLocation signals that the same identifier appears twice in
	// the location list of an instance under construction.
	ErrDuplicateLocation = errors.New("route: duplicate location identifier")

	// ErrUnknownLocation indicates a reference to a location that is not part
	// of the instance.
	ErrUnknownLocation = errors.New("route: unknown location")

	// ErrUndefinedEdge is returned when a directed pair has no defined cost.
	// Self-loops are always undefined by contract.
	ErrUndefinedEdge = errors.New("route: undefined edge")

	// ErrSelfLoop rejects an explicit Arc whose endpoints coincide.
	ErrSelfLoop = errors.New("route: self-loop arc")

	// ErrNegativeDistance rejects a negative arc cost.
	ErrNegativeDistance = errors.New("route: negative distance")

	// ErrBadDistance rejects NaN or -Inf costs (only finite values and +Inf,
	// meaning "no arc", are representable).
	ErrBadDistance = errors.New("route: NaN or -Inf distance")

	// ErrBadTerminals signals that WithTerminals referenced an unknown
	// location or that start and end coincide.
	ErrBadTerminals = errors.New("route: terminals must be two distinct known locations")

	// ErrEmptyRoute is returned when a route holds no locations.
	ErrEmptyRoute = errors.New("route: empty route")

	// ErrRepeatedLocation signals that a route visits some location twice.
	ErrRepeatedLocation = errors.New("route: location visited twice")

	// ErrIncompleteRoute signals that a visit-all route misses at least one
	// location of its instance.
	ErrIncompleteRoute = errors.New("route: route does not visit every location")

	// ErrTerminalMismatch signals that a terminal-mode route does not start
	// at the instance start or does not finish at the instance end, or that
	// a closed cycle was requested on a terminal instance.
	ErrTerminalMismatch = errors.New("route: route endpoints do not match instance terminals")

	// ErrBadPayload is returned by the JSON codec on malformed input.
	ErrBadPayload = errors.New("route: malformed instance payload")
)
