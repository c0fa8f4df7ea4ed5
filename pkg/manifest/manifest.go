// Package manifest turns a validated component graph into the package
// metadata consumers read: one target per component with its link
// libraries, include directories, and requirements, plus the build
// toggles that reproduce the graph's flag set.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkgsmith/itkplan/pkg/component"
	"github.com/pkgsmith/itkplan/pkg/errors"
	"github.com/pkgsmith/itkplan/pkg/flagset"
)

// =============================================================================
// Types
// =============================================================================

// Target is the consumer-facing metadata for one component.
//
// External lists the component's direct external references;
// ResolvedExternal lists every external reference reachable through
// its transitive requirements, in first-visit order.
type Target struct {
	Name             string   `json:"name"`
	Libs             []string `json:"libs,omitempty"`
	SystemLibs       []string `json:"system_libs,omitempty"`
	IncludeDirs      []string `json:"include_dirs"`
	Requires         []string `json:"requires,omitempty"`
	External         []string `json:"external,omitempty"`
	ResolvedExternal []string `json:"resolved_external,omitempty"`
}

// Manifest is the full metadata document for one planned graph.
// Targets appear in graph order, so output is stable across runs.
type Manifest struct {
	Toolkit string          `json:"toolkit"`
	Version string          `json:"version"`
	Targets []Target        `json:"targets"`
	Toggles map[string]bool `json:"toggles"`
}

// =============================================================================
// Emission
// =============================================================================

// Emit produces the manifest for the given graph and the flags it was
// built from. Every component in the graph gets exactly one target.
func Emit(g *component.Graph, f flagset.Set) (*Manifest, error) {
	f = f.Normalized()
	suffix, err := f.LibSuffix()
	if err != nil {
		return nil, err
	}
	includeRoot, err := f.IncludeRoot()
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		Toolkit: "ITK",
		Version: f.Version,
		Targets: make([]Target, 0, g.Len()),
		Toggles: Toggles(f),
	}

	for _, name := range g.Names() {
		c, _ := g.Component(name)

		t := Target{
			Name:        name,
			IncludeDirs: append([]string{includeRoot}, c.Includes...),
			SystemLibs:  append([]string(nil), c.SystemLibs...),
		}
		if !c.HeaderOnly {
			t.Libs = append([]string{name + suffix}, c.Libs...)
		}
		for _, r := range c.Requires {
			if r.IsExternal() {
				t.External = append(t.External, r.String())
			} else {
				t.Requires = append(t.Requires, r.String())
			}
		}

		resolved, err := g.ExternalRequires(name)
		if err != nil {
			return nil, err
		}
		for _, r := range resolved {
			t.ResolvedExternal = append(t.ResolvedExternal, r.String())
		}

		m.Targets = append(m.Targets, t)
	}

	return m, nil
}

// Target returns the named target, or false if the manifest has none.
func (m *Manifest) Target(name string) (Target, bool) {
	for _, t := range m.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// =============================================================================
// Serialization
// =============================================================================

// Marshal converts a manifest to indented JSON bytes.
func Marshal(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a manifest as JSON to an io.Writer.
func Write(m *Manifest, w io.Writer) error {
	return writeTo(m, w)
}

// WriteFile writes a manifest to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(m, f)
}

// Read decodes a JSON manifest from an io.Reader.
func Read(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode manifest")
	}
	return &m, nil
}

func writeTo(m *Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
