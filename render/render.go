package render

import (
	"strconv"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/optiroute/route"
)

// Highlight attributes for arcs activated by a solution, matching the
// original diagrams (thin black default, thick red solution path).
const (
	activeColor = "red"
	activeWidth = "2.5"
)

// Instance renders the bare problem diagram: all locations, all defined
// arcs labelled with their distance, terminals double-bordered.
//
// Errors: route.ErrNilInstance, route.ErrEmptyInstance.
func Instance(inst *route.Instance) (string, error) {
	g, _, err := instanceGraph(inst)
	if err != nil {
		return "", err
	}

	return g.String(), nil
}

// Solution renders the problem diagram with the solution's arcs highlighted.
// The solution is validated against the instance first, so a foreign or
// corrupt route cannot produce a misleading picture.
//
// Errors: route.ErrNilInstance, route.ErrEmptyInstance and the
// route.ValidateRoute sentinels.
func Solution(inst *route.Instance, sol route.Solution) (string, error) {
	if err := route.ValidateRoute(inst, sol.Route, sol.Closed); err != nil {
		return "", err
	}

	g, nodes, err := instanceGraph(inst)
	if err != nil {
		return "", err
	}

	// Re-draw the activated arcs on top with the highlight attributes.
	var (
		i    int
		from route.Location
		to   route.Location
	)
	for i = 1; i < len(sol.Route); i++ {
		from, to = sol.Route[i-1], sol.Route[i]
		highlight(g, nodes[from], nodes[to])
	}
	if sol.Closed && len(sol.Route) > 1 {
		highlight(g, nodes[sol.Route[len(sol.Route)-1]], nodes[sol.Route[0]])
	}

	return g.String(), nil
}

// instanceGraph builds the shared base diagram and the location->node map.
func instanceGraph(inst *route.Instance) (*dot.Graph, map[route.Location]dot.Node, error) {
	if inst == nil {
		return nil, nil, route.ErrNilInstance
	}
	if inst.Len() == 0 {
		return nil, nil, route.ErrEmptyInstance
	}

	var (
		g     = dot.NewGraph(dot.Directed)
		nodes = make(map[route.Location]dot.Node, inst.Len())
		id    route.Location
	)
	for _, id = range inst.Locations() {
		nodes[id] = g.Node(string(id))
	}
	if start, end, ok := inst.Terminals(); ok {
		nodes[start].Attr("peripheries", "2")
		nodes[end].Attr("peripheries", "2")
	}

	for _, a := range inst.Arcs() {
		g.Edge(nodes[a.From], nodes[a.To]).
			Attr("label", strconv.FormatFloat(a.Distance, 'g', -1, 64))
	}

	return g, nodes, nil
}

// highlight finds the existing edge between two nodes and applies the
// solution attributes.
func highlight(g *dot.Graph, from, to dot.Node) {
	edges := g.FindEdges(from, to)
	for _, e := range edges {
		e.Attr("color", activeColor)
		e.Attr("penwidth", activeWidth)
	}
}
