// Package route defines the shared problem representation consumed by every
// solver in optiroute: locations, directed distances, instances, routes and
// solutions.
//
// The central type is Instance - an immutable set of Locations together with
// a dense directed cost table. A cost of math.Inf(1) means "no such arc";
// the diagonal is always undefined (travelling from a location to itself is
// excluded by contract). Instances come in two flavours:
//
//   - visit-all (default): a valid Route visits every Location exactly once,
//     optionally closing back to its first Location;
//   - terminal: built with WithTerminals(start, end); a valid Route runs from
//     start to end over defined arcs, touching each Location at most once -
//     interior locations are optional.
//
// Instances are constructed once (New / NewFromArcs), validated eagerly, and
// never mutated afterwards; solvers treat them as read-only. All lookups are
// pure and return sentinel errors from errors.go - no panics on user input.
//
// Cost and ValidateRoute are the single source of truth for route totals and
// route invariants; solvers recompute totals through Cost so that every
// reported TotalDistance is stabilized the same way (1e-9 rounding).
package route
