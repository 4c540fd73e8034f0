package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/anikets/paisaledger/pkg/api"
	"github.com/anikets/paisaledger/pkg/mapping"
	"github.com/anikets/paisaledger/pkg/models"
)

// CreateCategory handles POST /api/v1/categories.
func (h *ApiHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var newCategory api.NewCategory
	if !h.decodeAndValidate(w, r, &newCategory) {
		return
	}

	created, err := h.Service.CreateCategory(r.Context(), owner, mapping.ToDomainCategoryDraft(&newCategory))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiCategory(created))
}

// GetCategoryById handles GET /api/v1/categories/{categoryId}.
func (h *ApiHandler) GetCategoryById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	category, err := h.Service.GetCategory(r.Context(), owner, chi.URLParam(r, "categoryId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiCategory(category))
}

// ListCategories handles GET /api/v1/categories.
func (h *ApiHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var categoryType string
	if err := runtime.BindQueryParameter("form", true, false, "type", r.URL.Query(), &categoryType); err != nil {
		respondError(w, http.StatusBadRequest, "invalid type")
		return
	}

	categories, err := h.Service.ListCategories(r.Context(), owner, models.CategoryType(categoryType))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]api.Category, len(categories))
	for i := range categories {
		out[i] = *mapping.ToApiCategory(&categories[i])
	}
	respondJSON(w, http.StatusOK, out)
}

// UpdateCategoryById handles PUT /api/v1/categories/{categoryId}.
func (h *ApiHandler) UpdateCategoryById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var upd api.UpdateCategory
	if !h.decodeAndValidate(w, r, &upd) {
		return
	}

	updated, err := h.Service.UpdateCategory(r.Context(), owner, chi.URLParam(r, "categoryId"), mapping.ToDomainCategoryPatch(&upd))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiCategory(updated))
}

// DeleteCategoryById handles DELETE /api/v1/categories/{categoryId}.
func (h *ApiHandler) DeleteCategoryById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteCategory(r.Context(), owner, chi.URLParam(r, "categoryId")); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SeedCategories handles POST /api/v1/categories/seed. It clones the system
// category set for the owner and is a no-op when categories already exist.
func (h *ApiHandler) SeedCategories(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	if err := h.Service.SeedDefaultCategories(r.Context(), owner); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetCategoryStats handles GET /api/v1/categories/stats.
func (h *ApiHandler) GetCategoryStats(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	start, end, err := bindDateRange(r, 30)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.Service.GetCategoryStats(r.Context(), owner, start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiCategoryStats(stats))
}
