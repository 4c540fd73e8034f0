package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anikets/paisaledger/pkg/api"
	"github.com/anikets/paisaledger/pkg/mapping"
	"github.com/anikets/paisaledger/pkg/money"
)

// CreateAccount handles POST /api/v1/accounts.
func (h *ApiHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var newAccount api.NewAccount
	if !h.decodeAndValidate(w, r, &newAccount) {
		return
	}

	draft, err := mapping.ToDomainAccountDraft(&newAccount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Service.CreateAccount(r.Context(), owner, draft)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiAccount(created))
}

// GetAccountById handles GET /api/v1/accounts/{accountId}.
func (h *ApiHandler) GetAccountById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	account, err := h.Service.GetAccount(r.Context(), owner, chi.URLParam(r, "accountId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiAccount(account))
}

// ListAccounts handles GET /api/v1/accounts.
func (h *ApiHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	accounts, err := h.Service.ListAccounts(r.Context(), owner)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]api.Account, len(accounts))
	for i := range accounts {
		out[i] = *mapping.ToApiAccount(&accounts[i])
	}
	respondJSON(w, http.StatusOK, out)
}

// UpdateAccountById handles PUT /api/v1/accounts/{accountId}.
func (h *ApiHandler) UpdateAccountById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var upd api.UpdateAccount
	if !h.decodeAndValidate(w, r, &upd) {
		return
	}

	updated, err := h.Service.UpdateAccount(r.Context(), owner, chi.URLParam(r, "accountId"), mapping.ToDomainAccountPatch(&upd))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiAccount(updated))
}

// DeleteAccountById handles DELETE /api/v1/accounts/{accountId}.
func (h *ApiHandler) DeleteAccountById(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteAccount(r.Context(), owner, chi.URLParam(r, "accountId")); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTotalBalance handles GET /api/v1/accounts/total-balance.
func (h *ApiHandler) GetTotalBalance(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	total, err := h.Service.GetTotalBalance(r.Context(), owner)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, api.TotalBalance{TotalBalance: money.ToRupees(total)})
}
