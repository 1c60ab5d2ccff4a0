// Package solver_test - runnable, deterministic example comparing the exact
// and the greedy strategy on the terminal diagram from the package docs.
package solver_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/optiroute/route"
	"github.com/katalvlaran/optiroute/solver"
)

// joinRoute renders a route as "A -> P2 -> ... -> B".
func joinRoute(r route.Route) string {
	parts := make([]string, len(r))
	for i, id := range r {
		parts[i] = string(id)
	}

	return strings.Join(parts, " -> ")
}

// ExampleCompare runs both strategies on the A->B diagram with seven arcs.
// The exact solver skips P1 entirely; the greedy walk is baited by the cheap
// first hop and pays for it.
func ExampleCompare() {
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
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	rep, err := solver.Compare(context.Background(), inst, solver.DefaultOptions())
	if err != nil {
		fmt.Println("compare:", err)
		return
	}

	fmt.Printf("MILP:   %s (total %.0f)\n", joinRoute(rep.MILP.Route), rep.MILP.TotalDistance)
	fmt.Printf("Greedy: %s (total %.0f)\n", joinRoute(rep.Greedy.Route), rep.Greedy.TotalDistance)
	fmt.Printf("Optimality gap: %.0f\n", rep.Gap)

	// Output:
	// MILP:   A -> P2 -> P3 -> B (total 20)
	// Greedy: A -> P1 -> P2 -> P3 -> B (total 25)
	// Optimality gap: 5
}
