package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/charknest/charknest/internal/application/analysis"
	"github.com/charknest/charknest/internal/domain/apperr"
	"github.com/charknest/charknest/internal/middleware"
)

type Router struct {
	svc *analysis.Service
	log *slog.Logger
}

func NewRouter(svc *analysis.Service, log *slog.Logger) http.Handler {
	r := &Router{svc: svc, log: log}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	mux.Use(middleware.RequestLogger(log))

	mux.Get("/", r.wrap(r.handleHome))
	mux.Post("/recommend", r.wrap(r.handleRecommend))
	mux.Get("/analyze-location", r.wrap(r.handleAnalyzeLocation))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

type errorResponse struct {
	Error string `json:"error"`
}

// wrap maps tagged errors onto status codes and serializes the safe
// message only; raw provider detail stays in the logs.
func (rt *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		status := http.StatusInternalServerError
		var ae *apperr.Error
		if errors.As(err, &ae) {
			switch ae.Kind {
			case apperr.KindValidation:
				status = http.StatusBadRequest
			case apperr.KindNotFound:
				status = http.StatusNotFound
			}
		}
		if status == http.StatusInternalServerError {
			rt.log.Error("request failed", slog.String("path", req.URL.Path), slog.Any("err", err))
		}
		writeJSON(w, status, errorResponse{Error: apperr.SafeMessage(err)})
	}
}

// GET /
func (rt *Router) handleHome(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusOK, map[string]string{"message": "charknest api is working"})
	return nil
}

// POST /recommend
// Body: {"userInput": "<free-text property query>"}
func (rt *Router) handleRecommend(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		UserInput string `json:"userInput"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return apperr.Validation("invalid_body", "invalid request format, expected JSON")
	}

	recommendations, err := rt.svc.Recommend(req.Context(), body.UserInput)
	if err != nil {
		// A no-results search outcome stays typed for callers of the
		// service, but on this endpoint it is a downstream failure:
		// the contract is 400 for bad input and 500 otherwise.
		if kind, ok := apperr.KindOf(err); ok && kind == apperr.KindNotFound {
			return apperr.Provider("search_no_results", apperr.SafeMessage(err), err)
		}
		return err
	}

	writeJSON(w, http.StatusOK, map[string]string{"recommendations": recommendations})
	return nil
}

// GET /analyze-location?location=<string>&radius=<int>
func (rt *Router) handleAnalyzeLocation(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	location := q.Get("location")

	// Absent radius means the default; a present but malformed value is
	// rejected, never silently defaulted.
	radius := analysis.DefaultRadius
	if raw := q.Get("radius"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return apperr.Validation("invalid_radius", "radius must be a positive integer")
		}
		radius = v
	}

	result, err := rt.svc.AnalyzeLocation(req.Context(), location, radius)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, result)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
