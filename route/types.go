package route

// Location identifies a node to visit. Identifiers are plain strings; they
// must be non-empty and unique within an Instance.
type Location string

// Arc is a single directed edge with its cost. Distance must be finite and
// non-negative; From and To must differ.
type Arc struct {
	From     Location `json:"from"`
	To       Location `json:"to"`
	Distance float64  `json:"distance"`
}

// DistanceFunc yields the directed cost from one location to another.
// Return math.Inf(1) for pairs with no arc. The function is consulted once
// per ordered pair at construction time; the diagonal is never queried.
type DistanceFunc func(from, to Location) float64

// Route is an ordered visiting sequence of locations. A route never repeats
// a location; whether it must cover the whole instance depends on the
// instance mode (see ValidateRoute).
type Route []Location

// Solution pairs a Route with its total distance. Closed reports whether the
// total includes the arc from the last location back to the first.
// Solutions are produced by exactly one solver invocation and never mutated.
type Solution struct {
	Route         Route
	TotalDistance float64
	Closed        bool
}
