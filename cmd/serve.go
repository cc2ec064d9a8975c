package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/advisor"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assessment HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		polisher := newPolisher()
		if polisher == nil {
			zap.L().Info("no narrative service key configured, serving structured advisories")
		}

		var s store.Store
		if cfg.Store.DatabaseURL != "" {
			var err error
			if s, err = openStore(ctx); err != nil {
				return err
			}
			defer s.Close()
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(polisher, s),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func newRouter(polisher *advisor.Polisher, s store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/v1/assessments", func(w http.ResponseWriter, req *http.Request) {
		var answers model.AnswerSet
		if err := json.NewDecoder(req.Body).Decode(&answers); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if err := answers.Validate(); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}

		assessment, err := runAssessment(req.Context(), &answers, polisher)
		if err != nil {
			zap.L().Error("assessment failed",
				zap.String("business", answers.BusinessName),
				zap.Error(err),
			)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "assessment failed"})
			return
		}

		if s != nil {
			if err := s.SaveAssessment(req.Context(), assessment); err != nil {
				// Persistence is best-effort; the caller still gets the report.
				zap.L().Warn("save failed",
					zap.String("assessment_id", assessment.ID),
					zap.Error(err),
				)
			}
		}

		writeJSON(w, http.StatusOK, assessment)
	})

	if s != nil {
		r.Get("/v1/assessments/{id}", func(w http.ResponseWriter, req *http.Request) {
			assessment, err := s.GetAssessment(req.Context(), chi.URLParam(req, "id"))
			if err != nil {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "assessment not found"})
				return
			}
			writeJSON(w, http.StatusOK, assessment)
		})
	}

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("write response", zap.Error(err))
	}
}
