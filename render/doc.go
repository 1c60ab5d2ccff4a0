// Package render is the presentation seam: it turns instances and solutions
// into Graphviz DOT text and feeds nothing back into the solvers.
//
// The diagrams mirror the package docs: every defined arc is drawn with
// its distance as the edge label, terminal locations get a double border,
// and the arcs activated by a solution are highlighted (red, thicker).
// Rendering the text into an image is the business of Graphviz or any DOT
// viewer - this package never shells out.
package render
