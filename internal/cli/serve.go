package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/verdantlab/lsys/pkg/buildinfo"
	lsyserrors "github.com/verdantlab/lsys/pkg/errors"
	"github.com/verdantlab/lsys/pkg/pipeline"
	"github.com/verdantlab/lsys/pkg/system"
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve derivations over HTTP",
		Long: `Serve derivations over HTTP.

The serve command exposes the derivation pipeline as a small JSON API:

  GET /v1/systems                 list the built-in systems
  GET /v1/derive/{system}         derive a system
      ?iterations=N               rewrite passes (default 5)
      ?seed=S                     randomness seed for stochastic systems
      ?refresh=true               bypass the cache read
  GET /healthz                    liveness probe

Derivations share the same cache configuration as the CLI commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	logger := loggerFromContext(ctx)
	elapsed := startTimer(logger)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(runner),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving derivations", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		elapsed.finish("Server stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newRouter builds the API router around a runner.
func newRouter(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/systems", handleSystems)
		r.Get("/derive/{system}", handleDerive(runner))
	})

	return r
}

// apiError is the JSON error envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// systemInfo is the JSON shape of a registry entry.
type systemInfo struct {
	Name        string `json:"name"`
	Engine      string `json:"engine"`
	Axiom       string `json:"axiom"`
	Random      bool   `json:"random"`
	Description string `json:"description,omitempty"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func handleSystems(w http.ResponseWriter, r *http.Request) {
	all := system.All()
	infos := make([]systemInfo, 0, len(all))
	for _, sys := range all {
		infos = append(infos, systemInfo{
			Name:        sys.Name,
			Engine:      string(sys.Engine),
			Axiom:       string(sys.Axiom),
			Random:      sys.Random(),
			Description: sys.Description,
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

func handleDerive(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := pipeline.Options{
			System:     chi.URLParam(r, "system"),
			Iterations: defaultIterations,
		}

		q := r.URL.Query()
		if v := q.Get("iterations"); v != "" {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				writeError(w, http.StatusBadRequest, string(lsyserrors.ErrCodeInvalidIterations), "iterations must be a non-negative integer")
				return
			}
			opts.Iterations = uint(n)
		}
		if v := q.Get("seed"); v != "" {
			seed, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, string(lsyserrors.ErrCodeInvalidInput), "seed must be a non-negative integer")
				return
			}
			opts.Seed = seed
		}
		opts.Refresh = q.Get("refresh") == "true"

		result, err := runner.Derive(r.Context(), opts)
		if err != nil {
			code := lsyserrors.GetCode(err)
			writeError(w, statusForCode(code), string(code), lsyserrors.UserMessage(err))
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// statusForCode maps pipeline error codes onto HTTP statuses.
func statusForCode(code lsyserrors.Code) int {
	switch code {
	case lsyserrors.ErrCodeNotFound, lsyserrors.ErrCodeSystemNotFound:
		return http.StatusNotFound
	case lsyserrors.ErrCodeInvalidInput, lsyserrors.ErrCodeInvalidSystem,
		lsyserrors.ErrCodeInvalidEngine, lsyserrors.ErrCodeInvalidIterations,
		lsyserrors.ErrCodeInvalidRule:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Code: code, Message: message})
}
