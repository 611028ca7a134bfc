// Package graph assembles the re-export graph of extracted module trees
// for dependency-order reporting.
package graph

import (
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/docsurf/docsurf/internal/extract"
)

// ModuleGraph is a directed graph over module locations: an edge A -> B
// means A re-exports B as a namespace.
type ModuleGraph struct {
	g graph.Graph[string, string]
}

// Build walks the given module trees and collects every location and
// re-export edge into one graph. Locations reachable from several roots
// are added once.
func Build(modules []*extract.Module) (*ModuleGraph, error) {
	mg := &ModuleGraph{
		g: graph.New(graph.StringHash, graph.Directed()),
	}
	for _, m := range modules {
		if err := mg.addTree(m); err != nil {
			return nil, err
		}
	}
	return mg, nil
}

func (mg *ModuleGraph) addTree(m *extract.Module) error {
	if m == nil {
		return nil
	}
	if err := mg.g.AddVertex(m.Location); err != nil && err != graph.ErrVertexAlreadyExists {
		return fmt.Errorf("failed to add module %s: %w", m.Location, err)
	}
	for _, ex := range m.Exports {
		if ex.Kind != extract.ExportNamespace || ex.Module == nil {
			continue
		}
		if err := mg.addTree(ex.Module); err != nil {
			return err
		}
		err := mg.g.AddEdge(m.Location, ex.Module.Location)
		if err != nil && err != graph.ErrEdgeAlreadyExists {
			return fmt.Errorf("failed to add edge %s -> %s: %w", m.Location, ex.Module.Location, err)
		}
	}
	return nil
}

// DependencyOrder returns module locations so that every module appears
// after the modules it re-exports.
func (mg *ModuleGraph) DependencyOrder() ([]string, error) {
	order, err := graph.TopologicalSort(mg.g)
	if err != nil {
		return nil, fmt.Errorf("failed to sort module graph: %w", err)
	}
	// TopologicalSort yields re-exporters first; reverse for
	// dependencies-first order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// Edges lists every re-export edge as [from, to] pairs.
func (mg *ModuleGraph) Edges() ([][2]string, error) {
	edges, err := mg.g.Edges()
	if err != nil {
		return nil, err
	}
	out := make([][2]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, [2]string{e.Source, e.Target})
	}
	return out, nil
}

// Size returns the vertex and edge counts.
func (mg *ModuleGraph) Size() (vertices, edges int, err error) {
	vertices, err = mg.g.Order()
	if err != nil {
		return 0, 0, err
	}
	edges, err = mg.g.Size()
	if err != nil {
		return 0, 0, err
	}
	return vertices, edges, nil
}
