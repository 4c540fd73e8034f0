package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/oapi-codegen/runtime/types"

	"github.com/anikets/paisaledger/pkg/api"
	"github.com/anikets/paisaledger/pkg/ledger"
	"github.com/anikets/paisaledger/pkg/mapping"
	"github.com/anikets/paisaledger/pkg/models"
)

// CreateTransaction handles POST /api/v1/transactions.
func (h *ApiHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var newTx api.NewTransaction
	if !h.decodeAndValidate(w, r, &newTx) {
		return
	}

	draft, err := mapping.ToDomainDraft(&newTx)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Service.CreateTransaction(r.Context(), owner, draft)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiTransaction(created))
}

// GetTransactionById handles GET /api/v1/transactions/{transactionId}.
func (h *ApiHandler) GetTransactionById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	tx, err := h.Service.GetTransaction(r.Context(), owner, chi.URLParam(r, "transactionId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiTransaction(tx))
}

// UpdateTransactionById handles PUT /api/v1/transactions/{transactionId}.
func (h *ApiHandler) UpdateTransactionById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var upd api.UpdateTransaction
	if !h.decodeAndValidate(w, r, &upd) {
		return
	}

	patch, err := mapping.ToDomainPatch(&upd)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.Service.UpdateTransaction(r.Context(), owner, chi.URLParam(r, "transactionId"), patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiTransaction(updated))
}

// DeleteTransactionById handles DELETE /api/v1/transactions/{transactionId}.
func (h *ApiHandler) DeleteTransactionById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteTransaction(r.Context(), owner, chi.URLParam(r, "transactionId")); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTransactions handles GET /api/v1/transactions.
func (h *ApiHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	query, err := bindListQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Service.GetTransactions(r.Context(), owner, query)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiTransactionPage(page))
}

// SyncTransactions handles POST /api/v1/transactions/sync.
func (h *ApiHandler) SyncTransactions(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req api.SyncRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	drafts := make([]ledger.TransactionDraft, 0, len(req.Transactions))
	for i, newTx := range req.Transactions {
		draft, err := mapping.ToDomainDraft(&req.Transactions[i])
		if err != nil {
			respondError(w, http.StatusBadRequest, newTx.SMSHash+": "+err.Error())
			return
		}
		drafts = append(drafts, draft)
	}

	result, err := h.Service.SyncTransactions(r.Context(), owner, drafts)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiSyncResult(result))
}

// GetMonthlySummary handles GET /api/v1/transactions/summary.
func (h *ApiHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "year", q, &year); err != nil {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "month", q, &month); err != nil {
		respondError(w, http.StatusBadRequest, "invalid month")
		return
	}

	summary, err := h.Service.GetMonthlySummary(r.Context(), owner, year, month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiMonthlySummary(summary))
}

// GetAnalytics handles GET /api/v1/transactions/analytics.
func (h *ApiHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	start, end, err := bindDateRange(r, 30)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	analytics, err := h.Service.GetAnalytics(r.Context(), owner, start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiAnalytics(analytics))
}

// bindListQuery binds the listing filter from query parameters.
func bindListQuery(r *http.Request) (ledger.ListQuery, error) {
	q := r.URL.Query()
	var query ledger.ListQuery

	var txType, sortOrder string
	if err := runtime.BindQueryParameter("form", true, false, "type", q, &txType); err != nil {
		return query, err
	}
	query.Type = models.TransactionType(txType)
	if err := runtime.BindQueryParameter("form", true, false, "categoryId", q, &query.CategoryId); err != nil {
		return query, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "accountId", q, &query.AccountId); err != nil {
		return query, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "search", q, &query.Search); err != nil {
		return query, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "sortBy", q, &query.SortBy); err != nil {
		return query, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "sortOrder", q, &sortOrder); err != nil {
		return query, err
	}
	query.SortDesc = sortOrder != "asc"
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &query.Page); err != nil {
		return query, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &query.Limit); err != nil {
		return query, err
	}

	var startDate, endDate types.Date
	if q.Has("startDate") {
		if err := runtime.BindQueryParameter("form", true, false, "startDate", q, &startDate); err != nil {
			return query, err
		}
		query.StartDate = startDate.Time
	}
	if q.Has("endDate") {
		if err := runtime.BindQueryParameter("form", true, false, "endDate", q, &endDate); err != nil {
			return query, err
		}
		// Make the end bound inclusive of the whole day.
		query.EndDate = endDate.Time.Add(24*time.Hour - time.Nanosecond)
	}

	return query, nil
}

// bindDateRange binds startDate/endDate, defaulting to the trailing
// defaultDays-day window ending now.
func bindDateRange(r *http.Request, defaultDays int) (time.Time, time.Time, error) {
	q := r.URL.Query()
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -defaultDays)

	var startDate, endDate types.Date
	if q.Has("startDate") {
		if err := runtime.BindQueryParameter("form", true, false, "startDate", q, &startDate); err != nil {
			return start, end, err
		}
		start = startDate.Time
	}
	if q.Has("endDate") {
		if err := runtime.BindQueryParameter("form", true, false, "endDate", q, &endDate); err != nil {
			return start, end, err
		}
		end = endDate.Time.Add(24*time.Hour - time.Nanosecond)
	}
	return start, end, nil
}
