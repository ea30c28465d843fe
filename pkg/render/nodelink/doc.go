// Package nodelink renders the Linguist group hierarchy as a node-link
// diagram.
//
// # Overview
//
// Linguist folds some languages into a parent for statistics: "Fortran Free
// Form" and "Fortran" report as Fortran, "TSX" as TypeScript. [Hierarchy]
// turns those relations into a directed acyclic graph with an edge from
// each member to its group. Languages that take part in no group are left
// out.
//
// # Usage
//
//	dot, err := nodelink.ToDOT(linguist.Default(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// [ToDOT] emits nodes in a stable topological order (members before their
// group, ties broken by name), so the output is byte-for-byte reproducible.
// Nodes are rounded boxes filled with the language color; the label color
// is picked for contrast. Languages without a color are white.
//
// # Dependencies
//
// Graph construction uses [github.com/dominikbraun/graph]. Rendering uses
// [github.com/goccy/go-graphviz], which runs Graphviz in-process (WASM), so
// no system Graphviz installation is needed.
package nodelink
