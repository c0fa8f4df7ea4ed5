package component

import (
	"github.com/pkgsmith/itkplan/pkg/flagset"
)

// Build constructs the validated component graph for one packaging run.
//
// The flag set is normalized, the conflict rules are evaluated in
// order (the first failure aborts the run), the optional component
// families admitted by the flags are assembled ahead of the mandatory
// table, the mutation rules attach conditional extra dependencies, and
// finally the graph is validated for name uniqueness and referential
// integrity.
//
// Errors are fatal to the packaging run: a partially valid graph is
// never returned.
func Build(f flagset.Set) (*Graph, error) {
	f = f.Normalized()

	for _, rule := range conflictRules {
		if err := rule.check(f); err != nil {
			return nil, err
		}
	}

	var components []Component
	for _, rule := range inclusionRules {
		if !rule.enabled(f) {
			continue
		}
		for _, c := range rule.components {
			components = append(components, c.clone())
		}
	}
	for _, c := range baseTable {
		components = append(components, c.clone())
	}

	byName := make(map[string]*Component, len(components))
	for i := range components {
		byName[components[i].Name] = &components[i]
	}
	for _, rule := range mutationRules {
		if rule.when(f) {
			rule.apply(byName, f)
		}
	}

	return NewGraph(components)
}
