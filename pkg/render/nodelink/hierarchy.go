package nodelink

import (
	"errors"
	"strconv"

	"github.com/dominikbraun/graph"

	errs "github.com/matzehuels/linguist/pkg/errors"
	"github.com/matzehuels/linguist/pkg/linguist"
)

// Vertex attribute keys set by [Hierarchy].
const (
	AttrColor = "color"
	AttrType  = "type"
	AttrID    = "language_id"
)

// Hierarchy builds the member -> group graph for idx. A group that is not
// itself a language in idx still becomes a vertex, without attributes.
// Group cycles are reported as INVALID_DATASET.
func Hierarchy(idx *linguist.Index) (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.Acyclic(), graph.PreventCycles())

	for _, lang := range idx.All() {
		if !lang.HasGroup() {
			continue
		}
		if err := addLanguage(g, idx, lang.Name); err != nil {
			return nil, err
		}
		if err := addLanguage(g, idx, lang.Group); err != nil {
			return nil, err
		}
		if lang.Group == lang.Name {
			continue
		}
		err := g.AddEdge(lang.Name, lang.Group)
		if errors.Is(err, graph.ErrEdgeCreatesCycle) {
			return nil, errs.Wrap(errs.ErrCodeInvalidDataset, err, "group cycle through %q and %q", lang.Name, lang.Group)
		}
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, err
		}
	}
	return g, nil
}

func addLanguage(g graph.Graph[string, string], idx *linguist.Index, name string) error {
	var opts []func(*graph.VertexProperties)
	if lang, ok := idx.ByName(name); ok && lang.Name == name {
		opts = append(opts,
			graph.VertexAttribute(AttrType, lang.Type),
			graph.VertexAttribute(AttrID, strconv.Itoa(lang.LanguageID)),
		)
		if lang.HasColor() {
			opts = append(opts, graph.VertexAttribute(AttrColor, lang.Color))
		}
	}
	err := g.AddVertex(name, opts...)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return err
	}
	return nil
}

// Groups returns each group name mapped to its members, both sorted.
func Groups(g graph.Graph[string, string]) (map[string][]string, error) {
	pred, err := g.PredecessorMap()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	for group, members := range pred {
		if len(members) == 0 {
			continue
		}
		for m := range members {
			out[group] = append(out[group], m)
		}
		sortStrings(out[group])
	}
	return out, nil
}
