package solver_test

import (
	"testing"

	"github.com/katalvlaran/optiroute/route"
	"github.com/stretchr/testify/require"
)

// courierInstance rebuilds the directed diagram from the package docs:
// terminals A -> B with three interior stops and seven arcs. The optimal
// route costs 20 (A-P2-P3-B); the greedy walk costs 25 (A-P1-P2-P3-B).
func courierInstance(t *testing.T) *route.Instance {
	t.Helper()

	inst, err := route.NewFromArcs(
		[]route.Location{"A", "P1", "P2", "P3", "B"},
		[]route.Arc{
			{From: "A", To: "P1", Distance: 2},
			{From: "A", To: "P2", Distance: 7},
			{From: "P1", To: "P2", Distance: 10},
			{From: "P2", To: "P1", Distance: 10},
			{From: "P1", To: "B", Distance: 30},
			{From: "P2", To: "P3", Distance: 8},
			{From: "P3", To: "B", Distance: 5},
		},
		route.WithTerminals("A", "B"),
	)
	require.NoError(t, err)

	return inst
}

// denseInstance builds a visit-all instance from a full matrix; +Inf entries
// stay undefined. Row/column order follows ids.
func denseInstance(t *testing.T, ids []route.Location, w [][]float64) *route.Instance {
	t.Helper()

	pos := make(map[route.Location]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	inst, err := route.New(ids, func(from, to route.Location) float64 {
		return w[pos[from]][pos[to]]
	})
	require.NoError(t, err)

	return inst
}

// ringIDs and ringDist describe the 4-location ring used across tests:
// neighbors cost 1, the diagonal pair costs 2. Optimal closed cycle: 4;
// optimal open path from "a": 3.
var (
	ringIDs  = []route.Location{"a", "b", "c", "d"}
	ringDist = [][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}
)

// trapInstance is a visit-all instance where the cheap first arc strands the
// greedy walk: a->c is tempting but c has no outgoing arcs. The exact route
// a->b->c costs 7.
func trapInstance(t *testing.T) *route.Instance {
	t.Helper()

	inst, err := route.NewFromArcs(
		[]route.Location{"a", "b", "c"},
		[]route.Arc{
			{From: "a", To: "c", Distance: 1},
			{From: "a", To: "b", Distance: 5},
			{From: "b", To: "c", Distance: 2},
		},
	)
	require.NoError(t, err)

	return inst
}
