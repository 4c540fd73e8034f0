// Package handlers implements the HTTP surface over the ledger service.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/anikets/paisaledger/pkg/api"
	"github.com/anikets/paisaledger/pkg/ledger"
	"github.com/anikets/paisaledger/pkg/storage"
)

// ApiHandler holds the application's dependencies for the HTTP layer.
type ApiHandler struct {
	Service  *ledger.Service
	validate *validator.Validate
}

// NewApiHandler creates a new ApiHandler over the ledger service.
func NewApiHandler(service *ledger.Service) *ApiHandler {
	return &ApiHandler{
		Service:  service,
		validate: validator.New(),
	}
}

// Routes mounts every endpoint under /api/v1. Authentication middleware is
// applied by the caller so tests can exercise routes directly.
func (h *ApiHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.ListTransactions)
			r.Post("/", h.CreateTransaction)
			r.Post("/sync", h.SyncTransactions)
			r.Get("/summary", h.GetMonthlySummary)
			r.Get("/analytics", h.GetAnalytics)
			r.Get("/{transactionId}", h.GetTransactionById)
			r.Put("/{transactionId}", h.UpdateTransactionById)
			r.Delete("/{transactionId}", h.DeleteTransactionById)
		})
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.ListAccounts)
			r.Post("/", h.CreateAccount)
			r.Get("/total-balance", h.GetTotalBalance)
			r.Get("/{accountId}", h.GetAccountById)
			r.Put("/{accountId}", h.UpdateAccountById)
			r.Delete("/{accountId}", h.DeleteAccountById)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Post("/", h.CreateCategory)
			r.Post("/seed", h.SeedCategories)
			r.Get("/stats", h.GetCategoryStats)
			r.Get("/{categoryId}", h.GetCategoryById)
			r.Put("/{categoryId}", h.UpdateCategoryById)
			r.Delete("/{categoryId}", h.DeleteCategoryById)
		})
	})
	return r
}

// owner extracts the authenticated owner or writes a 401.
func (h *ApiHandler) owner(w http.ResponseWriter, r *http.Request) (ledger.Owner, bool) {
	owner, ok := ledger.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
	}
	return owner, ok
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, api.Error{Error: message})
}

// respondServiceError maps the error taxonomy onto HTTP statuses: unknown
// entities are 404, validation failures 400, duplicates 409, the rest 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ledger.ErrInvalidArgument):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeAndValidate decodes a JSON body into dst and runs its validator tags.
func (h *ApiHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return false
	}
	return true
}
