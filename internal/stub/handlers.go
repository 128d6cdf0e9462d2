package stub

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/medo227-collab/limobile-app/internal/domain"
)

// Handler serves the six Remote Account API endpoints from a Store.
type Handler struct {
	store    *Store
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a handler backed by the given store.
func NewHandler(store *Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{store: store, validate: validator.New(), logger: logger}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.store.Register(req.PhoneNumber, req.PIN); err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, domain.APIMessage{Message: "account created"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	userID, err := h.store.Authenticate(req.PhoneNumber, req.PIN)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.LoginResponse{UserID: userID})
}

func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.Accounts(chi.URLParam(r, "id"))
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	respondJSON(w, http.StatusOK, domain.AccountsResponse{Accounts: accounts})
}

func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.store.Transactions(chi.URLParam(r, "id"))
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	respondJSON(w, http.StatusOK, domain.TransactionsResponse{Transactions: transactions})
}

func (h *Handler) handleAddAccount(w http.ResponseWriter, r *http.Request) {
	var req domain.AddAccountRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.store.AddAccount(chi.URLParam(r, "id"), req.Operator); err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, domain.APIMessage{Message: "account added"})
}

func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req domain.TransferRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.store.Transfer(req.UserID, req.SourceOperator, req.DestinationNumber, req.Amount); err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.APIMessage{Message: "transfer completed"})
}

func (h *Handler) handlePurchase(w http.ResponseWriter, r *http.Request) {
	var req domain.PurchaseRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.store.Purchase(req.UserID, req.Operator, req.BeneficiaryNumber, req.PackageID, req.PackageType); err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.APIMessage{Message: "forfait purchased"})
}

// decode parses and validates a JSON request body, writing the error
// response itself when the body is unusable.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			respondError(w, http.StatusBadRequest, "invalid field: "+fieldErrs[0].Field())
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid request data")
		return false
	}
	return true
}

func (h *Handler) respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPhoneTaken), errors.Is(err, ErrOperatorHeld):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoAccount), errors.Is(err, ErrInsufficientBalance), errors.Is(err, ErrUnknownPackage):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("unexpected store error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.APIMessage{Message: message})
}
