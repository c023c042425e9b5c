package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/repository"
	"github.com/finlane/paycore/internal/usecase/payment"
	"github.com/finlane/paycore/internal/usecase/requestqr"
)

type Handler struct {
	coordinator *payment.Coordinator
	intents     repository.IntentRepository
	banks       repository.BankRegistry
	requestQRUC *requestqr.UseCase
}

func NewHandler(
	coordinator *payment.Coordinator,
	intents repository.IntentRepository,
	banks repository.BankRegistry,
	requestQRUC *requestqr.UseCase,
) *Handler {
	return &Handler{
		coordinator: coordinator,
		intents:     intents,
		banks:       banks,
		requestQRUC: requestQRUC,
	}
}

type PaymentRequest struct {
	PayerID string `json:"payer_id"`
	PayeeID string `json:"payee_id"`
	Amount  string `json:"amount"`
}

type PaymentResponse struct {
	IntentID string `json:"intent_id"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Error    string `json:"error,omitempty"`
}

type IntentResponse struct {
	IntentID string `json:"intent_id"`
	PayerID  string `json:"payer_id"`
	PayeeID  string `json:"payee_id"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

type BalanceResponse struct {
	BankID    string `json:"bank_id"`
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

func (h *Handler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.PayerID == "" || req.PayeeID == "" {
		http.Error(w, `{"error":"payer_id and payee_id required"}`, http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		http.Error(w, `{"error":"invalid amount"}`, http.StatusBadRequest)
		return
	}

	res, intent, err := h.coordinator.InitiatePayment(r.Context(), req.PayerID, req.PayeeID, amount)
	if err != nil {
		http.Error(w, `{"error":"payment processing failed"}`, http.StatusInternalServerError)
		return
	}

	resp := PaymentResponse{
		IntentID: intent.ID().String(),
		Status:   string(intent.Status()),
		Reason:   string(res.Reason),
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) HandleGetIntent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "intent_id"))
	if err != nil {
		http.Error(w, `{"error":"invalid intent_id"}`, http.StatusBadRequest)
		return
	}

	intent, err := h.intents.FindByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, `{"error":"intent not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"lookup failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(IntentResponse{
		IntentID: intent.ID().String(),
		PayerID:  intent.PayerID(),
		PayeeID:  intent.PayeeID(),
		Amount:   intent.Amount().String(),
		Status:   string(intent.Status()),
		Reason:   intent.Reason(),
	})
}

func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	bankID := chi.URLParam(r, "bank_id")
	accountID := chi.URLParam(r, "account_id")

	bank, err := h.banks.Bank(bankID)
	if err != nil {
		http.Error(w, `{"error":"bank not found"}`, http.StatusNotFound)
		return
	}

	balance, err := bank.Balance(r.Context(), accountID)
	if err != nil {
		http.Error(w, `{"error":"account not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(BalanceResponse{
		BankID:    bankID,
		AccountID: accountID,
		Balance:   balance.String(),
	})
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	bankID := r.URL.Query().Get("bank_id")
	if bankID == "" {
		http.Error(w, `{"error":"bank_id query param required"}`, http.StatusBadRequest)
		return
	}

	amountStr := r.URL.Query().Get("amount")
	if amountStr == "" {
		http.Error(w, `{"error":"amount query param required"}`, http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || !amount.IsPositive() {
		http.Error(w, `{"error":"invalid amount"}`, http.StatusBadRequest)
		return
	}

	png, err := h.requestQRUC.Execute(requestqr.Request{
		Account: entity.AccountRef{BankID: bankID, AccountID: accountID},
		Amount:  amount,
	})
	if err != nil {
		http.Error(w, `{"error":"qr generation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}
