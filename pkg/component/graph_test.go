package component

import (
	"slices"
	"strings"
	"testing"

	"github.com/pkgsmith/itkplan/pkg/errors"
)

func TestNewGraph_Duplicate(t *testing.T) {
	_, err := NewGraph([]Component{
		{Name: "alpha"},
		{Name: "beta"},
		{Name: "alpha"},
	})
	if !errors.Is(err, errors.ErrCodeDuplicateComponent) {
		t.Fatalf("NewGraph() error = %v, want GRAPH_DUPLICATE_COMPONENT", err)
	}
	if !strings.Contains(err.Error(), "alpha") {
		t.Errorf("error does not name the duplicate: %v", err)
	}
}

func TestNewGraph_EmptyName(t *testing.T) {
	_, err := NewGraph([]Component{{Name: ""}})
	if !errors.Is(err, errors.ErrCodeDuplicateComponent) {
		t.Errorf("NewGraph() error = %v, want GRAPH_DUPLICATE_COMPONENT", err)
	}
}

func TestNewGraph_Dangling(t *testing.T) {
	_, err := NewGraph([]Component{
		{Name: "alpha", Requires: []Ref{"missing"}},
	})
	if !errors.Is(err, errors.ErrCodeDanglingDependency) {
		t.Fatalf("NewGraph() error = %v, want GRAPH_DANGLING_DEPENDENCY", err)
	}
	if !strings.Contains(err.Error(), "alpha") || !strings.Contains(err.Error(), "missing") {
		t.Errorf("error does not name both ends of the edge: %v", err)
	}
}

func TestNewGraph_ExternalRefsNotDangling(t *testing.T) {
	g, err := NewGraph([]Component{
		{Name: "alpha", Requires: []Ref{"zlib::zlib"}},
	})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestResolveRequires(t *testing.T) {
	g, err := NewGraph([]Component{
		{Name: "core"},
		{Name: "io", Requires: []Ref{"core", "zlib::zlib"}},
		{Name: "app", Requires: []Ref{"io", "core"}},
	})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}

	tests := []struct {
		name string
		want []Ref
	}{
		{"core", []Ref{}},
		{"io", []Ref{"core", "zlib::zlib"}},
		{"app", []Ref{"io", "core", "zlib::zlib"}},
	}
	for _, tt := range tests {
		got, err := g.ResolveRequires(tt.name)
		if err != nil {
			t.Errorf("ResolveRequires(%s) error = %v", tt.name, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ResolveRequires(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveRequires_Idempotent(t *testing.T) {
	g, err := NewGraph([]Component{
		{Name: "core"},
		{Name: "mid", Requires: []Ref{"core"}},
		{Name: "top", Requires: []Ref{"mid"}},
	})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}

	first, err := g.ResolveRequires("top")
	if err != nil {
		t.Fatalf("ResolveRequires() error = %v", err)
	}
	second, err := g.ResolveRequires("top")
	if err != nil {
		t.Fatalf("ResolveRequires() error = %v", err)
	}
	if !slices.Equal(first, second) {
		t.Errorf("repeated resolution differs: %v then %v", first, second)
	}
}

func TestResolveRequires_Unknown(t *testing.T) {
	g, err := NewGraph([]Component{{Name: "core"}})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}
	_, err = g.ResolveRequires("nope")
	if !errors.Is(err, errors.ErrCodeUnknownComponent) {
		t.Errorf("ResolveRequires() error = %v, want GRAPH_UNKNOWN_COMPONENT", err)
	}
}

func TestResolveRequires_Cycle(t *testing.T) {
	g, err := NewGraph([]Component{
		{Name: "a", Requires: []Ref{"b"}},
		{Name: "b", Requires: []Ref{"c"}},
		{Name: "c", Requires: []Ref{"a"}},
	})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}

	_, err = g.ResolveRequires("a")
	if !errors.Is(err, errors.ErrCodeCycleDetected) {
		t.Fatalf("ResolveRequires() error = %v, want GRAPH_CYCLE_DETECTED", err)
	}
	// The path in the message lets the operator see the loop.
	if !strings.Contains(err.Error(), "a -> b -> c -> a") {
		t.Errorf("error does not carry the cycle path: %v", err)
	}
}

func TestResolveRequires_SelfCycle(t *testing.T) {
	g, err := NewGraph([]Component{
		{Name: "a", Requires: []Ref{"a"}},
	})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}
	_, err = g.ResolveRequires("a")
	if !errors.Is(err, errors.ErrCodeCycleDetected) {
		t.Errorf("ResolveRequires() error = %v, want GRAPH_CYCLE_DETECTED", err)
	}
}

func TestResolveRequires_DiamondNotCycle(t *testing.T) {
	// Two paths to the same node is deduplication, not a cycle.
	g, err := NewGraph([]Component{
		{Name: "base"},
		{Name: "left", Requires: []Ref{"base"}},
		{Name: "right", Requires: []Ref{"base"}},
		{Name: "top", Requires: []Ref{"left", "right"}},
	})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}

	got, err := g.ResolveRequires("top")
	if err != nil {
		t.Fatalf("ResolveRequires() error = %v", err)
	}
	want := []Ref{"left", "base", "right"}
	if !slices.Equal(got, want) {
		t.Errorf("ResolveRequires(top) = %v, want %v", got, want)
	}
}

func TestExternalRequires(t *testing.T) {
	g, err := NewGraph([]Component{
		{Name: "core", Requires: []Ref{"zlib::zlib"}},
		{Name: "io", Requires: []Ref{"core", "hdf5::hdf5"}},
	})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}

	got, err := g.ExternalRequires("io")
	if err != nil {
		t.Fatalf("ExternalRequires() error = %v", err)
	}
	want := []Ref{"hdf5::hdf5", "zlib::zlib"}
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Errorf("ExternalRequires(io) = %v, want %v", got, want)
	}
}

func TestRef(t *testing.T) {
	tests := []struct {
		ref      Ref
		external bool
		pkg      string
	}{
		{"ITKCommon", false, ""},
		{"zlib::zlib", true, "zlib"},
		{"gdcm::gdcmDICT", true, "gdcm"},
	}
	for _, tt := range tests {
		if got := tt.ref.IsExternal(); got != tt.external {
			t.Errorf("Ref(%q).IsExternal() = %v, want %v", tt.ref, got, tt.external)
		}
		if got := tt.ref.Package(); got != tt.pkg {
			t.Errorf("Ref(%q).Package() = %q, want %q", tt.ref, got, tt.pkg)
		}
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	g, err := NewGraph([]Component{{Name: "a"}, {Name: "b"}})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}
	names := g.Names()
	names[0] = "mutated"
	if g.Names()[0] != "a" {
		t.Error("Names() exposes internal order slice")
	}
}
