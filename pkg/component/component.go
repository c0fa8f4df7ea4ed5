// Package component builds and validates the toolkit's component graph.
//
// A component is a named, independently linkable unit of the packaged
// library (roughly one module). The canonical table of every component
// the toolkit can expose lives in table.go as static data; a small
// ordered list of named rules (rules.go) decides which optional
// components a feature-flag set admits and which extra dependencies
// they gain. [Build] assembles the filtered table, applies the rules,
// and validates the result before anything downstream consumes it.
//
// The graph is constructed once per packaging run and is immutable
// after validation: queries ([Graph.Component], [Graph.ResolveRequires])
// only read and may run concurrently without coordination.
package component

import (
	"strings"
)

// Ref names a dependency of a component. It is either the name of
// another component in the same graph, or an external package
// reference of the form "package::component" owned by a different,
// externally versioned package (e.g. "zlib::zlib").
type Ref string

// IsExternal reports whether the reference names a component of a
// different package rather than an internal graph edge.
func (r Ref) IsExternal() bool { return strings.Contains(string(r), "::") }

// Package returns the owning package of an external reference, or the
// empty string for internal references.
func (r Ref) Package() string {
	if i := strings.Index(string(r), "::"); i >= 0 {
		return string(r)[:i]
	}
	return ""
}

func (r Ref) String() string { return string(r) }

// Component is a single linkable or includable unit of the toolkit.
//
// Name is unique within a graph. A non-header-only component links one
// artifact named after the component (with the versioned suffix, see
// the manifest package) plus any statically bundled helper libraries
// listed in Libs.
type Component struct {
	// Name is the stable component identifier (also the target name).
	Name string
	// HeaderOnly marks components that expose headers but no artifact.
	HeaderOnly bool
	// Libs lists extra owned library artifacts beyond the default one.
	Libs []string
	// SystemLibs lists OS-provided libraries (e.g. "m" on POSIX).
	SystemLibs []string
	// Includes lists extra include directories beyond the default root.
	Includes []string
	// Requires lists direct dependencies: internal component names and
	// external package references.
	Requires []Ref
}

// clone returns a deep copy so rule mutations never touch table data.
func (c Component) clone() Component {
	c.Libs = append([]string(nil), c.Libs...)
	c.SystemLibs = append([]string(nil), c.SystemLibs...)
	c.Includes = append([]string(nil), c.Includes...)
	c.Requires = append([]Ref(nil), c.Requires...)
	return c
}

// internalRequires yields the internal (intra-graph) dependencies.
func (c *Component) internalRequires() []string {
	var out []string
	for _, r := range c.Requires {
		if !r.IsExternal() {
			out = append(out, string(r))
		}
	}
	return out
}
