// Package pipeline runs the complete build → emit planning pipeline.
//
// Both the CLI and the inspection server go through a Runner, so flag
// normalization, validation, and metadata emission behave identically
// from every entry point.
package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/pkgsmith/itkplan/pkg/component"
	"github.com/pkgsmith/itkplan/pkg/flagset"
	"github.com/pkgsmith/itkplan/pkg/manifest"
)

// Stats carries timing and size figures for one pipeline run.
type Stats struct {
	BuildTime      time.Duration `json:"build_time"`
	EmitTime       time.Duration `json:"emit_time"`
	ComponentCount int           `json:"component_count"`
	ExternalCount  int           `json:"external_count"`
}

// Result is the outcome of one planning run.
type Result struct {
	RunID    string             `json:"run_id"`
	Flags    flagset.Set        `json:"flags"`
	Graph    *component.Graph   `json:"-"`
	Manifest *manifest.Manifest `json:"manifest"`
	Stats    Stats              `json:"stats"`
}

// Runner executes planning runs. It is stateless apart from the
// logger; one Runner can serve concurrent callers.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Plan builds and validates the component graph for the given flags
// and emits its metadata. Each run gets a fresh run ID so log lines
// from concurrent runs can be told apart.
func (r *Runner) Plan(ctx context.Context, f flagset.Set) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID: uuid.NewString(),
		Flags: f.Normalized(),
	}
	logger := r.Logger.With("run", result.RunID[:8])

	buildStart := time.Now()
	g, err := component.Build(f)
	if err != nil {
		logger.Debug("graph rejected", "err", err)
		return nil, err
	}
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.ComponentCount = g.Len()

	logger.Info("built component graph",
		"components", g.Len(),
		"duration", result.Stats.BuildTime)

	emitStart := time.Now()
	m, err := manifest.Emit(g, f)
	if err != nil {
		return nil, err
	}
	result.Manifest = m
	result.Stats.EmitTime = time.Since(emitStart)
	result.Stats.ExternalCount = countExternals(m)

	logger.Info("emitted metadata",
		"targets", len(m.Targets),
		"externals", result.Stats.ExternalCount,
		"duration", result.Stats.EmitTime)

	return result, nil
}

// countExternals counts distinct external package references across
// all targets.
func countExternals(m *manifest.Manifest) int {
	seen := make(map[string]bool)
	for _, t := range m.Targets {
		for _, e := range t.External {
			seen[e] = true
		}
	}
	return len(seen)
}
