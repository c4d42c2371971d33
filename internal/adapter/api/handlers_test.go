package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paywallet/paywallet-backend/internal/adapter/authorization"
	"github.com/paywallet/paywallet-backend/internal/adapter/notification"
	"github.com/paywallet/paywallet-backend/internal/adapter/repository/memory"
	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/paywallet/paywallet-backend/internal/usecase/auth"
	"github.com/paywallet/paywallet-backend/internal/usecase/transfer"
	"github.com/paywallet/paywallet-backend/internal/usecase/wallet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newTestServer() *httptest.Server {
	ledger := memory.NewLedger()
	authService := auth.NewService(memory.NewAuthRepository(), testSecret, time.Hour)
	walletService := wallet.NewService(ledger)
	transferService := transfer.NewService(ledger, authorization.NewStaticAuthorizer(), notification.NewLogSink())

	handlers := NewHandlers(authService, walletService, transferService)
	return httptest.NewServer(Routes(handlers, testSecret))
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "123456"})
	resp, err := http.Post(server.URL+"/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded loginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.NotEmpty(t, decoded.Token)

	return decoded.Token
}

func doJSON(t *testing.T, method, url, token string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "wrong"})
	resp, err := http.Post(server.URL+"/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginHandler_EmptyFields(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	body, _ := json.Marshal(map[string]string{"email": "", "password": ""})
	resp, err := http.Post(server.URL+"/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtectedEndpoints_RequireToken(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/wallet")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/transfers", "", map[string]string{"amount": "10"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWalletHandler(t *testing.T) {
	server := newTestServer()
	defer server.Close()
	token := login(t, server)

	resp := doJSON(t, http.MethodGet, server.URL+"/wallet", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded walletResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "350", decoded.Balance)
	assert.Len(t, decoded.Beneficiaries, 3)
}

func TestTransferHandler_Success(t *testing.T) {
	server := newTestServer()
	defer server.Close()
	token := login(t, server)

	beneficiaryID := memory.BeneficiaryAlice.String()
	resp := doJSON(t, http.MethodPost, server.URL+"/transfers", token, transferRequest{
		BeneficiaryID: &beneficiaryID,
		Amount:        "100,00",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded transferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "SUCCESS", decoded.Status)
	assert.Equal(t, "100.00", decoded.Amount)

	// The debit must be visible on a subsequent wallet read
	walletResp := doJSON(t, http.MethodGet, server.URL+"/wallet", token, nil)
	defer walletResp.Body.Close()
	var overview walletResponse
	require.NoError(t, json.NewDecoder(walletResp.Body).Decode(&overview))
	assert.Equal(t, "250.00", overview.Balance)
}

func TestTransferHandler_NoBeneficiary(t *testing.T) {
	server := newTestServer()
	defer server.Close()
	token := login(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/transfers", token, transferRequest{Amount: "100,00"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var decoded transferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "VALIDATION_FAILED", decoded.Status)
	assert.Equal(t, "NO_BENEFICIARY_SELECTED", decoded.Kind)
}

func TestTransferHandler_MalformedBeneficiaryID(t *testing.T) {
	server := newTestServer()
	defer server.Close()
	token := login(t, server)

	bad := "not-a-uuid"
	resp := doJSON(t, http.MethodPost, server.URL+"/transfers", token, transferRequest{
		BeneficiaryID: &bad,
		Amount:        "100,00",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var decoded transferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "INVALID_BENEFICIARY", decoded.Kind)
}

func TestTransferHandler_AuthorizationDenied(t *testing.T) {
	// Seed a balance above 403 so the denial rule is reached before the
	// balance check
	ledger := memory.NewLedgerWith(decimal.NewFromInt(1000), []domain.Beneficiary{
		{ID: memory.BeneficiaryAlice, Name: "Alice Johnson", Email: "alice@example.com", AccountLabel: "Checking account"},
	})
	authService := auth.NewService(memory.NewAuthRepository(), testSecret, time.Hour)
	handlers := NewHandlers(
		authService,
		wallet.NewService(ledger),
		transfer.NewService(ledger, authorization.NewStaticAuthorizer(), notification.NewLogSink()),
	)
	custom := httptest.NewServer(Routes(handlers, testSecret))
	defer custom.Close()

	customToken := login(t, custom)
	beneficiaryID := memory.BeneficiaryAlice.String()
	resp := doJSON(t, http.MethodPost, custom.URL+"/transfers", customToken, transferRequest{
		BeneficiaryID: &beneficiaryID,
		Amount:        "403",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var decoded transferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "AUTHORIZATION_DENIED", decoded.Status)
	assert.Equal(t, "operation not allowed", decoded.Message)
}
