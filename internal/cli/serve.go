package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	planerr "github.com/pkgsmith/itkplan/pkg/errors"
	"github.com/pkgsmith/itkplan/pkg/manifest"
	"github.com/pkgsmith/itkplan/pkg/pipeline"
)

// serveCommand creates the serve command: a small JSON API over one
// planned graph, for poking at the result from scripts or a browser.
func (c *CLI) serveCommand() *cobra.Command {
	var opts flagOpts
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planned graph as a JSON API",
		Long: `Serve plans the graph for the given flags once and serves it over
HTTP until interrupted.

Routes:
  GET /api/components                    component names
  GET /api/components/{name}             one target's metadata
  GET /api/components/{name}/requires    transitive requirements
  GET /api/toggles                       build-system toggles
  GET /api/manifest                      the full metadata document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			result, err := c.newRunner().Plan(cmd.Context(), f)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           newAPIHandler(result),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			c.Logger.Info("serving planned graph", "addr", addr, "components", result.Stats.ComponentCount)

			select {
			case err := <-errc:
				return err
			case <-cmd.Context().Done():
				shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutCtx)
			}
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// newAPIHandler builds the chi router over one planning result.
func newAPIHandler(result *pipeline.Result) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/components", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, result.Graph.Names())
		})
		r.Get("/components/{name}", func(w http.ResponseWriter, req *http.Request) {
			name := chi.URLParam(req, "name")
			t, ok := result.Manifest.Target(name)
			if !ok {
				writeAPIError(w, planerr.New(planerr.ErrCodeUnknownComponent, "unknown component %q", name))
				return
			}
			writeJSON(w, http.StatusOK, t)
		})
		r.Get("/components/{name}/requires", func(w http.ResponseWriter, req *http.Request) {
			name := chi.URLParam(req, "name")
			refs, err := result.Graph.ResolveRequires(name)
			if err != nil {
				writeAPIError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, refs)
		})
		r.Get("/toggles", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, result.Manifest.Toggles)
		})
		r.Get("/manifest", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = manifest.Write(result.Manifest, w)
		})
	})

	return r
}

// apiError is the JSON error envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeAPIError maps a planning error onto an HTTP status.
func writeAPIError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch planerr.GetCode(err) {
	case planerr.ErrCodeUnknownComponent:
		status = http.StatusNotFound
	case planerr.ErrCodeConfigConflict, planerr.ErrCodeInvalidFlag, planerr.ErrCodeUnsupported:
		status = http.StatusBadRequest
	}
	writeJSON(w, status, apiError{
		Code:    string(planerr.GetCode(err)),
		Message: planerr.UserMessage(err),
	})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
