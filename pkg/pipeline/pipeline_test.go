package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pkgsmith/itkplan/pkg/errors"
	"github.com/pkgsmith/itkplan/pkg/flagset"
)

func testRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func TestPlan(t *testing.T) {
	r := testRunner()

	result, err := r.Plan(context.Background(), flagset.Default())
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if result.RunID == "" {
		t.Error("Plan() result has no run ID")
	}
	if result.Graph == nil || result.Manifest == nil {
		t.Fatal("Plan() result missing graph or manifest")
	}
	if result.Stats.ComponentCount != result.Graph.Len() {
		t.Errorf("Stats.ComponentCount = %d, want %d", result.Stats.ComponentCount, result.Graph.Len())
	}
	if result.Stats.ExternalCount == 0 {
		t.Error("Stats.ExternalCount = 0, want external refs in the default graph")
	}
}

func TestPlan_InvalidFlags(t *testing.T) {
	r := testRunner()

	f := flagset.Default()
	f.WithElastix = true
	f.WithGDCM = false

	_, err := r.Plan(context.Background(), f)
	if !errors.Is(err, errors.ErrCodeConfigConflict) {
		t.Errorf("Plan() error = %v, want CONFIG_CONFLICT", err)
	}
}

func TestPlan_CanceledContext(t *testing.T) {
	r := testRunner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Plan(ctx, flagset.Default()); err == nil {
		t.Error("Plan() with canceled context succeeded")
	}
}

func TestPlan_FreshRunIDs(t *testing.T) {
	r := testRunner()

	a, err := r.Plan(context.Background(), flagset.Default())
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	b, err := r.Plan(context.Background(), flagset.Default())
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if a.RunID == b.RunID {
		t.Error("two runs share a run ID")
	}
}

func TestNewRunner_NilLogger(t *testing.T) {
	r := NewRunner(nil)
	if r.Logger == nil {
		t.Error("NewRunner(nil) left Logger nil")
	}
}
