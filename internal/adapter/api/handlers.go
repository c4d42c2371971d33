package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/paywallet/paywallet-backend/internal/usecase/auth"
	"github.com/paywallet/paywallet-backend/internal/usecase/transfer"
	"github.com/paywallet/paywallet-backend/internal/usecase/wallet"
)

// Handlers holds the services the HTTP layer projects
type Handlers struct {
	AuthService     *auth.Service
	WalletService   *wallet.Service
	TransferService *transfer.Service
}

// NewHandlers creates a new Handlers instance
func NewHandlers(authService *auth.Service, walletService *wallet.Service, transferService *transfer.Service) *Handlers {
	return &Handlers{
		AuthService:     authService,
		WalletService:   walletService,
		TransferService: transferService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type beneficiaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccountLabel string `json:"account_label"`
}

type walletResponse struct {
	Balance       string                `json:"balance"`
	Beneficiaries []beneficiaryResponse `json:"beneficiaries"`
}

type transferRequest struct {
	BeneficiaryID *string `json:"beneficiary_id"`
	Amount        string  `json:"amount"`
}

type transferResponse struct {
	Status  string `json:"status"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Amount  string `json:"amount,omitempty"`
}

// LoginHandler authenticates the user and returns a session token
func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCredentials):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		default:
			http.Error(w, "login failed", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User: userResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// WalletHandler returns the wallet overview for the home screen
func (h *Handlers) WalletHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := h.WalletService.Overview(r.Context())
	if err != nil {
		http.Error(w, "failed to load wallet", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, walletResponse{
		Balance:       overview.Balance.String(),
		Beneficiaries: toBeneficiaryResponses(overview.Beneficiaries),
	})
}

// ListBeneficiariesHandler returns the beneficiary directory
func (h *Handlers) ListBeneficiariesHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := h.WalletService.Overview(r.Context())
	if err != nil {
		http.Error(w, "failed to load beneficiaries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toBeneficiaryResponses(overview.Beneficiaries))
}

// TransferHandler runs the transfer workflow and projects its outcome
func (h *Handlers) TransferHandler(w http.ResponseWriter, r *http.Request) {
	payer, ok := PayerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var beneficiaryID *uuid.UUID
	if req.BeneficiaryID != nil && *req.BeneficiaryID != "" {
		id, err := uuid.Parse(*req.BeneficiaryID)
		if err != nil {
			// An unparsable id can never match the directory
			writeOutcome(w, domain.ValidationFailedOutcome(domain.ValidationInvalidBeneficiary))
			return
		}
		beneficiaryID = &id
	}

	outcome := h.TransferService.Execute(r.Context(), transfer.Input{
		Payer:         payer,
		BeneficiaryID: beneficiaryID,
		AmountText:    req.Amount,
	})

	writeOutcome(w, outcome)
}

// writeOutcome maps a transfer outcome to an HTTP status and JSON body
func writeOutcome(w http.ResponseWriter, outcome domain.TransferOutcome) {
	resp := transferResponse{
		Status:  string(outcome.Status),
		Message: outcome.Message(),
	}

	status := http.StatusOK
	switch outcome.Status {
	case domain.OutcomeSuccess:
		resp.Amount = outcome.Amount.String()
	case domain.OutcomeValidationFailed:
		status = http.StatusUnprocessableEntity
		resp.Kind = string(outcome.ValidationKind)
	case domain.OutcomeAuthorizationDenied:
		status = http.StatusForbidden
	case domain.OutcomeExecutionFailed:
		resp.Kind = string(outcome.ExecutionKind)
		if outcome.ExecutionKind == domain.ExecutionInsufficientBalance {
			status = http.StatusConflict
		} else {
			status = http.StatusBadGateway
		}
	}

	writeJSON(w, status, resp)
}

func toBeneficiaryResponses(beneficiaries []domain.Beneficiary) []beneficiaryResponse {
	out := make([]beneficiaryResponse, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		out = append(out, beneficiaryResponse{
			ID:           b.ID.String(),
			Name:         b.Name,
			Email:        b.Email,
			AccountLabel: b.AccountLabel,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
