package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sectorem/tarificateur/internal/config"
	"github.com/sectorem/tarificateur/internal/models"
)

const version = "1.0.0"

type Handlers struct {
	dispatcher *Dispatcher
	cfg        *config.Config
	logger     *slog.Logger
}

func NewHandlers(dispatcher *Dispatcher, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger.With("component", "api"),
	}
}

// Routes mounts every endpoint on the given router.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Post("/api/recherche", h.Lookup)
	r.Get("/api/test-luxior/{reference}", h.probe(models.SupplierLuxior))
	r.Get("/api/test-ami3f/{reference}", h.probe(models.SupplierAmi3f))
}

// Root serves the informational service banner.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Tarificateur Sectorem API",
		"version": version,
		"endpoints": map[string]string{
			"health":      "/health",
			"recherche":   "/api/recherche (POST)",
			"test_luxior": "/api/test-luxior/{reference}",
			"test_ami3f":  "/api/test-ami3f/{reference}",
		},
	})
}

// Health reports which configuration values are present. The flags are
// informational; absence does not gate lookups.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ok",
		"luxior_configured": h.cfg.LuxiorConfigured(),
		"ami3f_configured":  h.cfg.Ami3fConfigured(),
		"odoo_configured":   h.cfg.OdooConfigured(),
	})
}

// Lookup handles POST /api/recherche: validated dispatch to one supplier.
// Lookup failures come back as 200 with the record's erreur field set, so
// callers must check erreur even on success.
func (h *Handlers) Lookup(w http.ResponseWriter, r *http.Request) {
	var req models.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lookupID := uuid.NewString()
	h.logger.Info("lookup requested",
		"lookup_id", lookupID,
		"supplier", req.Supplier,
		"reference", req.Reference,
	)

	record, err := h.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmptyReference) || errors.Is(err, ErrUnknownSupplier) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("dispatch failed", "lookup_id", lookupID, "error", err)
		h.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if !record.Found() {
		h.logger.Warn("lookup failed", "lookup_id", lookupID, "erreur", record.Error)
	}
	h.respondJSON(w, http.StatusOK, record)
}

// probe builds a raw test handler for one supplier: direct adapter
// invocation with no request validation, kept for manual probing.
func (h *Handlers) probe(supplier string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adapter, ok := h.dispatcher.Adapter(supplier)
		if !ok {
			h.respondError(w, http.StatusNotFound, "supplier not registered")
			return
		}
		reference := chi.URLParam(r, "reference")
		if decoded, err := url.PathUnescape(reference); err == nil {
			reference = decoded
		}
		h.respondJSON(w, http.StatusOK, adapter.Lookup(r.Context(), reference))
	}
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
