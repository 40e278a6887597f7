// Package server публикует инструменты расчета по HTTP.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nordic-tco/tco-calculator/internal/logging"
	"github.com/nordic-tco/tco-calculator/internal/metrics"
	"github.com/nordic-tco/tco-calculator/internal/tools"
	"github.com/nordic-tco/tco-calculator/internal/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type toolsResponse struct {
	Tools []string `json:"tools"`
}

// NewRouter создает HTTP роутер со всеми маршрутами и middleware
func NewRouter(registry map[string]tools.ToolHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(logger))
	r.Use(tracing.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthzHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/tools", listToolsHandler(registry))
		r.Post("/tools/{name}", callToolHandler(registry, logger))
		r.Get("/markets/{country}", marketHandler(registry, logger))
	})

	return r
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func listToolsHandler(registry map[string]tools.ToolHandler) http.HandlerFunc {
	names := tools.Names(registry)
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toolsResponse{Tools: names})
	}
}

func callToolHandler(registry map[string]tools.ToolHandler, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		handler, ok := registry[name]
		if !ok {
			metrics.APICalls.WithLabelValues("http", name, "not_found").Inc()
			writeError(w, http.StatusNotFound, "unknown tool: "+name)
			return
		}

		params := map[string]interface{}{}
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}

		invoke(w, r, handler, params, name, logger)
	}
}

func marketHandler(registry map[string]tools.ToolHandler, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := map[string]interface{}{"country": chi.URLParam(r, "country")}
		invoke(w, r, registry[tools.MarketConfigTool], params, tools.MarketConfigTool, logger)
	}
}

func invoke(w http.ResponseWriter, r *http.Request, handler tools.ToolHandler, params map[string]interface{}, name string, logger *zap.Logger) {
	result, err := handler(r.Context(), params)
	switch {
	case errors.Is(err, tools.ErrInvalidParams):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		logger.Error("tool failed",
			zap.String("tool", name),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
