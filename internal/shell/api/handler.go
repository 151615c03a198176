// Package api provides HTTP handlers for the menu service.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/artpar/menud/internal/shell/api/middleware"
	"github.com/artpar/menud/internal/shell/api/openapi"
	"github.com/artpar/menud/internal/shell/store"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the menu API.
type Handler struct {
	store  store.Store
	logger *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		store:  s,
		logger: l,
	}
}

// Routes returns the router with all routes configured. Building the
// handler is separate from binding a listener so tests can exercise routes
// without opening a port.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(h.logger))
	r.Use(chimw.Recoverer)

	r.Get("/", h.handleIndex)
	r.Get("/health", h.handleHealth)

	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", h.handleListItems)
		r.Get("/{id}", h.handleGetItem)
		r.With(middleware.MenuItemPayload).Post("/", h.handleCreateItem)
		r.With(middleware.MenuItemPayload).Put("/{id}", h.handleUpdateItem)
		r.Delete("/{id}", h.handleDeleteItem)
	})

	// API description endpoints
	gen := openapi.NewGenerator()
	r.Get("/openapi.json", gen.Handler())
	r.Get("/openapi.yaml", gen.YAMLHandler())
	r.Get("/docs", gen.DocsHandler())

	return r
}

// =============================================================================
// Service Handlers
// =============================================================================

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, IndexResponse{
		Message:   "Welcome to the Restaurant Menu API",
		Endpoints: []string{"/api/menu", "/api/menu/{id}"},
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// =============================================================================
// Menu Handlers
// =============================================================================

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems(r.Context())
	if err != nil {
		h.logger.Error("failed to list menu items", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to list menu items")
		return
	}

	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	item, err := h.store.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Menu item not found")
			return
		}
		h.logger.Error("failed to get menu item", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to get menu item")
		return
	}

	h.writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	fields, ok := middleware.MenuItemFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Missing validated payload")
		return
	}

	item, err := h.store.CreateItem(r.Context(), fields)
	if err != nil {
		h.logger.Error("failed to create menu item", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to create menu item")
		return
	}

	h.writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	fields, ok := middleware.MenuItemFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Missing validated payload")
		return
	}
	id := pathID(r)

	item, err := h.store.UpdateItem(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.logger.Error("failed to update menu item", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to update menu item")
		return
	}

	h.writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	item, err := h.store.DeleteItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.logger.Error("failed to delete menu item", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to delete menu item")
		return
	}

	h.writeJSON(w, http.StatusOK, DeleteResponse{
		Message: "Item successfully deleted",
		Item:    *item,
	})
}

// =============================================================================
// Helpers
// =============================================================================

// pathID parses the id path parameter. Non-numeric values become 0, an id
// the store never assigns, so lookups take the not-found path instead of a
// separate parse error.
func pathID(r *http.Request) int {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0
	}
	return id
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Error: message})
}
