// Package route - JSON codec for instances.
//
// The wire shape is deliberately minimal: the canonical location order, the
// defined arcs in row-major order, and the optional terminals. Costs are
// emitted as float64 and round-trip exactly (Go's encoder writes the
// shortest representation that parses back to the same value).

package route

import (
	"encoding/json"
	"fmt"
)

// instancePayload is the serialized form of an Instance.
type instancePayload struct {
	Locations []Location `json:"locations"`
	Arcs      []Arc      `json:"arcs"`
	Start     *Location  `json:"start,omitempty"`
	End       *Location  `json:"end,omitempty"`
}

// MarshalJSON encodes the instance deterministically: locations in canonical
// order, arcs in row-major order.
func (in *Instance) MarshalJSON() ([]byte, error) {
	p := instancePayload{
		Locations: in.Locations(),
		Arcs:      in.Arcs(),
	}
	if s, e, ok := in.Terminals(); ok {
		p.Start, p.End = &s, &e
	}

	return json.Marshal(p)
}

// UnmarshalJSON reconstructs an instance previously produced by MarshalJSON.
// All pairwise distances are preserved exactly. Malformed payloads yield
// ErrBadPayload (wrapped with the underlying cause); semantic violations
// surface as the usual construction sentinels.
func (in *Instance) UnmarshalJSON(data []byte) error {
	var p instancePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %w", ErrBadPayload, err)
	}
	if (p.Start == nil) != (p.End == nil) {
		return ErrBadPayload
	}

	var opts []Option
	if p.Start != nil {
		opts = append(opts, WithTerminals(*p.Start, *p.End))
	}
	rebuilt, err := NewFromArcs(p.Locations, p.Arcs, opts...)
	if err != nil {
		return err
	}
	*in = *rebuilt

	return nil
}
