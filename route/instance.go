package route

import "math"

// Instance is a read-only routing problem: an ordered location list plus a
// dense directed cost table. Undefined arcs (including the whole diagonal)
// are stored as +Inf.
//
// Construction validates everything eagerly; afterwards an Instance is safe
// for concurrent readers and is never mutated by solvers.
type Instance struct {
	ids   []Location       // canonical order, index -> identifier
	index map[Location]int // identifier -> index
	w     []float64        // dense n*n cost buffer, w[i*n+j]; +Inf = no arc

	// Terminal mode: start/end indices, or -1 when the instance is visit-all.
	start int
	end   int
}

// Option configures Instance construction.
type Option func(*instanceConfig)

// instanceConfig accumulates optional construction parameters.
type instanceConfig struct {
	hasTerminals bool
	start        Location
	end          Location
}

// WithTerminals switches the instance into terminal mode: routes must run
// from start to end, visiting each location at most once. start and end must
// be distinct members of the location list; violations surface as
// ErrBadTerminals from New/NewFromArcs.
func WithTerminals(start, end Location) Option {
	return func(c *instanceConfig) {
		c.hasTerminals = true
		c.start = start
		c.end = end
	}
}

// New builds an Instance from an ordered location list and a distance rule.
//
// Contracts:
//   - identifiers must be non-empty and unique (ErrBadLocation /
//     ErrDuplicateLocation);
//   - dist is queried once per ordered pair (i != j); it must return a
//     finite non-negative cost or +Inf for "no arc" (ErrNegativeDistance /
//     ErrBadDistance otherwise);
//   - a zero-location instance is constructible; solvers reject it with
//     ErrEmptyInstance at solve time.
//
// Complexity: O(n^2) time and space.
func New(locations []Location, dist DistanceFunc, opts ...Option) (*Instance, error) {
	inst, err := newSkeleton(locations, opts...)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		// No rule means no arcs; the table stays all-undefined.
		return inst, nil
	}

	var (
		n = len(inst.ids)
		i int
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays undefined
			}
			d = dist(inst.ids[i], inst.ids[j])
			if err = checkDistance(d); err != nil {
				return nil, err
			}
			inst.w[i*n+j] = d
		}
	}

	return inst, nil
}

// NewFromArcs builds an Instance from an explicit arc list; pairs absent from
// arcs stay undefined. A repeated (From,To) pair keeps the last cost given.
//
// Errors: those of New, plus ErrUnknownLocation for an arc endpoint outside
// locations and ErrSelfLoop for From==To.
//
// Complexity: O(n^2 + len(arcs)).
func NewFromArcs(locations []Location, arcs []Arc, opts ...Option) (*Instance, error) {
	inst, err := newSkeleton(locations, opts...)
	if err != nil {
		return nil, err
	}

	var (
		n      = len(inst.ids)
		a      Arc
		fi, ti int
		ok     bool
	)
	for _, a = range arcs {
		if fi, ok = inst.index[a.From]; !ok {
			return nil, ErrUnknownLocation
		}
		if ti, ok = inst.index[a.To]; !ok {
			return nil, ErrUnknownLocation
		}
		if fi == ti {
			return nil, ErrSelfLoop
		}
		if err = checkDistance(a.Distance); err != nil {
			return nil, err
		}
		inst.w[fi*n+ti] = a.Distance
	}

	return inst, nil
}

// newSkeleton allocates the instance, indexes the identifiers and resolves
// terminal options. The cost buffer starts all-undefined (+Inf).
func newSkeleton(locations []Location, opts ...Option) (*Instance, error) {
	var cfg instanceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(locations)
	inst := &Instance{
		ids:   make([]Location, n),
		index: make(map[Location]int, n),
		w:     make([]float64, n*n),
		start: -1,
		end:   -1,
	}

	var (
		i   int
		id  Location
		inf = math.Inf(1)
	)
	for i, id = range locations {
		if id == "" {
			return nil, ErrBadLocation
		}
		if _, dup := inst.index[id]; dup {
			return nil, ErrDuplicateLocation
		}
		inst.ids[i] = id
		inst.index[id] = i
	}
	for i = range inst.w {
		inst.w[i] = inf
	}

	if cfg.hasTerminals {
		si, sok := inst.index[cfg.start]
		ei, eok := inst.index[cfg.end]
		if !sok || !eok || si == ei {
			return nil, ErrBadTerminals
		}
		inst.start, inst.end = si, ei
	}

	return inst, nil
}

// checkDistance enforces the numeric policy for a single cost value:
// finite non-negative, or +Inf meaning "no arc".
func checkDistance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, -1) {
		return ErrBadDistance
	}
	if d < 0 {
		return ErrNegativeDistance
	}

	return nil
}

// Len returns the number of locations.
func (in *Instance) Len() int { return len(in.ids) }

// Locations returns a copy of the canonical location order.
func (in *Instance) Locations() []Location {
	out := make([]Location, len(in.ids))
	copy(out, in.ids)

	return out
}

// LocationAt returns the identifier at canonical index i.
// Out-of-range indices yield ErrUnknownLocation.
func (in *Instance) LocationAt(i int) (Location, error) {
	if i < 0 || i >= len(in.ids) {
		return "", ErrUnknownLocation
	}

	return in.ids[i], nil
}

// IndexOf resolves an identifier to its canonical index.
func (in *Instance) IndexOf(id Location) (int, bool) {
	i, ok := in.index[id]

	return i, ok
}

// TerminalMode reports whether the instance carries start/end terminals.
func (in *Instance) TerminalMode() bool { return in.start >= 0 }

// Terminals returns the start and end locations of a terminal-mode instance.
// ok is false for visit-all instances.
func (in *Instance) Terminals() (start, end Location, ok bool) {
	if in.start < 0 {
		return "", "", false
	}

	return in.ids[in.start], in.ids[in.end], true
}

// TerminalIndexes returns the canonical indices of start and end, or (-1,-1)
// for visit-all instances.
func (in *Instance) TerminalIndexes() (start, end int) { return in.start, in.end }

// Distance returns the directed cost from one location to another.
//
// Errors: ErrUnknownLocation for identifiers outside the instance,
// ErrUndefinedEdge for self-loops and pairs with no defined arc.
//
// Complexity: O(1). Purely a lookup; no side effects.
func (in *Instance) Distance(from, to Location) (float64, error) {
	fi, ok := in.index[from]
	if !ok {
		return 0, ErrUnknownLocation
	}
	ti, ok := in.index[to]
	if !ok {
		return 0, ErrUnknownLocation
	}

	return in.At(fi, ti)
}

// At is the index-based counterpart of Distance, used on solver hot paths.
func (in *Instance) At(i, j int) (float64, error) {
	n := len(in.ids)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrUnknownLocation
	}
	if i == j {
		return 0, ErrUndefinedEdge
	}
	w := in.w[i*n+j]
	if math.IsInf(w, 1) {
		return 0, ErrUndefinedEdge
	}

	return w, nil
}

// Defined reports whether the directed arc i->j carries a finite cost.
// Out-of-range indices and the diagonal report false.
func (in *Instance) Defined(i, j int) bool {
	n := len(in.ids)
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return false
	}

	return !math.IsInf(in.w[i*n+j], 1)
}

// Arcs returns every defined arc in deterministic row-major order.
func (in *Instance) Arcs() []Arc {
	var (
		n   = len(in.ids)
		out = make([]Arc, 0, n)
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || math.IsInf(in.w[i*n+j], 1) {
				continue
			}
			out = append(out, Arc{From: in.ids[i], To: in.ids[j], Distance: in.w[i*n+j]})
		}
	}

	return out
}
