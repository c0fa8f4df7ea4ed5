package component

import (
	"strings"

	"github.com/pkgsmith/itkplan/pkg/errors"
)

// Graph is a validated, immutable set of components keyed by name.
// Iteration order is the insertion order of the canonical table
// (filtered by flags), so metadata emission is stable across runs.
//
// Graph performs no locking: after construction it is read-only and
// safe for concurrent use.
type Graph struct {
	byName map[string]*Component
	order  []string
}

// NewGraph validates and indexes the given components. It checks name
// uniqueness and referential integrity of internal dependencies; a
// violation indicates a bug in the component table or its
// conditional-inclusion rules.
//
// Cycles are not rejected here - the canonical table is a DAG, which
// the test suite verifies - but [Graph.ResolveRequires] detects them
// defensively rather than looping.
func NewGraph(components []Component) (*Graph, error) {
	g := &Graph{byName: make(map[string]*Component, len(components))}

	for i := range components {
		c := components[i]
		if c.Name == "" {
			return nil, errors.New(errors.ErrCodeDuplicateComponent, "component with empty name at table position %d", i)
		}
		if _, exists := g.byName[c.Name]; exists {
			return nil, errors.New(errors.ErrCodeDuplicateComponent, "duplicate component %q", c.Name)
		}
		g.byName[c.Name] = &c
		g.order = append(g.order, c.Name)
	}

	for _, name := range g.order {
		for _, dep := range g.byName[name].internalRequires() {
			if _, ok := g.byName[dep]; !ok {
				return nil, errors.New(errors.ErrCodeDanglingDependency,
					"component %q requires %q, which is not part of this graph (disabled or unknown)", name, dep)
			}
		}
	}

	return g, nil
}

// Component returns the named component, or false if it is not part of
// the graph. The returned component must be treated as read-only.
func (g *Graph) Component(name string) (*Component, bool) {
	c, ok := g.byName[name]
	return c, ok
}

// Has reports whether the named component is part of the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.byName[name]
	return ok
}

// Names returns the component names in deterministic table order.
func (g *Graph) Names() []string {
	return append([]string(nil), g.order...)
}

// Len returns the number of components in the graph.
func (g *Graph) Len() int { return len(g.order) }

// ResolveRequires walks the dependency edges of the named component and
// returns every reachable requirement - internal component names and
// external package references - deduplicated, in first-visit order.
// The walk follows each component's Requires order, so the result is
// stable across invocations.
//
// A revisit of a component on the active recursion path means the
// table contains a cycle; the walk fails with a CYCLE_DETECTED error
// naming the path instead of looping.
func (g *Graph) ResolveRequires(name string) ([]Ref, error) {
	if _, ok := g.byName[name]; !ok {
		return nil, errors.New(errors.ErrCodeUnknownComponent, "unknown component %q", name)
	}

	seen := make(map[Ref]bool)
	onPath := make(map[string]bool)
	var path []string
	out := []Ref{}

	var walk func(n string) error
	walk = func(n string) error {
		onPath[n] = true
		path = append(path, n)

		for _, req := range g.byName[n].Requires {
			if req.IsExternal() {
				if !seen[req] {
					seen[req] = true
					out = append(out, req)
				}
				continue
			}

			dep := string(req)
			if onPath[dep] {
				cycle := append(append([]string(nil), path...), dep)
				return errors.New(errors.ErrCodeCycleDetected, "dependency cycle: %s", strings.Join(cycle, " -> "))
			}
			if seen[req] {
				continue
			}
			seen[req] = true
			out = append(out, req)
			if err := walk(dep); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		onPath[n] = false
		return nil
	}

	if err := walk(name); err != nil {
		return nil, err
	}
	return out, nil
}

// ExternalRequires returns only the external package references
// reachable from the named component, in first-visit order.
func (g *Graph) ExternalRequires(name string) ([]Ref, error) {
	all, err := g.ResolveRequires(name)
	if err != nil {
		return nil, err
	}
	out := []Ref{}
	for _, r := range all {
		if r.IsExternal() {
			out = append(out, r)
		}
	}
	return out, nil
}
