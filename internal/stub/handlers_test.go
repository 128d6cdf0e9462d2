package stub

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medo227-collab/limobile-app/internal/domain"
)

func newTestRouter() http.Handler {
	return NewRouter(NewHandler(NewStore(), nil))
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/register", domain.RegisterRequest{PhoneNumber: "+22790123456", PIN: "1234"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, http.MethodPost, "/login", domain.LoginRequest{PhoneNumber: "+22790123456", PIN: "1234"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp domain.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.UserID == "" {
		t.Fatalf("login: bad response %s", rec.Body.String())
	}
	return resp.UserID
}

func TestRegister_DuplicatePhoneConflicts(t *testing.T) {
	h := newTestRouter()
	registerAndLogin(t, h)

	rec := doJSON(t, h, http.MethodPost, "/register", domain.RegisterRequest{PhoneNumber: "+22790123456", PIN: "5678"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var msg domain.APIMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil || msg.Message == "" {
		t.Fatalf("expected a {message} body, got %s", rec.Body.String())
	}
}

func TestRegister_RejectsNonNumericPIN(t *testing.T) {
	h := newTestRouter()
	rec := doJSON(t, h, http.MethodPost, "/register", domain.RegisterRequest{PhoneNumber: "+227", PIN: "abcd"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_WrongPINUnauthorized(t *testing.T) {
	h := newTestRouter()
	registerAndLogin(t, h)

	rec := doJSON(t, h, http.MethodPost, "/login", domain.LoginRequest{PhoneNumber: "+22790123456", PIN: "0000"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAccounts_NewUserStartsWithSeededAirtel(t *testing.T) {
	h := newTestRouter()
	userID := registerAndLogin(t, h)

	rec := doJSON(t, h, http.MethodGet, "/user/"+userID+"/accounts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp domain.AccountsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Accounts) != 1 || resp.Accounts[0].Operator != domain.OperatorAirtel {
		t.Fatalf("expected one seeded airtel account, got %+v", resp.Accounts)
	}
}

func TestAddAccount_GrowsSetAndRejectsDuplicate(t *testing.T) {
	h := newTestRouter()
	userID := registerAndLogin(t, h)

	rec := doJSON(t, h, http.MethodPost, "/user/"+userID+"/add-account", domain.AddAccountRequest{Operator: domain.OperatorMoov})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/user/"+userID+"/accounts", nil)
	var resp domain.AccountsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Accounts) != 2 {
		t.Fatalf("expected the account set to grow to 2, got %+v", resp.Accounts)
	}

	rec = doJSON(t, h, http.MethodPost, "/user/"+userID+"/add-account", domain.AddAccountRequest{Operator: domain.OperatorMoov})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a duplicate operator, got %d", rec.Code)
	}
}

func TestTransfer_DebitsAndRecordsTransaction(t *testing.T) {
	h := newTestRouter()
	userID := registerAndLogin(t, h)

	rec := doJSON(t, h, http.MethodPost, "/transfer", domain.TransferRequest{
		UserID:            userID,
		SourceOperator:    domain.OperatorAirtel,
		DestinationNumber: "+22790000000",
		Amount:            500,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/user/"+userID+"/accounts", nil)
	var accounts domain.AccountsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &accounts)
	if accounts.Accounts[0].Balance != 500 {
		t.Fatalf("expected balance 500 after the transfer, got %d", accounts.Accounts[0].Balance)
	}

	rec = doJSON(t, h, http.MethodGet, "/user/"+userID+"/transactions", nil)
	var history domain.TransactionsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &history)
	if len(history.Transactions) != 1 {
		t.Fatalf("expected one transaction, got %d", len(history.Transactions))
	}
	tx := history.Transactions[0]
	if tx.Type != domain.TransactionTransfer || tx.Amount != -500 || tx.ID == "" {
		t.Fatalf("unexpected transaction %+v", tx)
	}
	if _, ok := tx.Time(); !ok {
		t.Fatalf("expected a parseable date, got %q", tx.Date)
	}
}

func TestTransfer_InsufficientBalanceFails(t *testing.T) {
	h := newTestRouter()
	userID := registerAndLogin(t, h)

	rec := doJSON(t, h, http.MethodPost, "/transfer", domain.TransferRequest{
		UserID:            userID,
		SourceOperator:    domain.OperatorAirtel,
		DestinationNumber: "+22790000000",
		Amount:            5000,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var msg domain.APIMessage
	_ = json.Unmarshal(rec.Body.Bytes(), &msg)
	if msg.Message != "insufficient balance" {
		t.Fatalf("expected an insufficient balance message, got %q", msg.Message)
	}
}

func TestPurchase_DebitsPackagePriceAndOrdersHistory(t *testing.T) {
	h := newTestRouter()
	userID := registerAndLogin(t, h)

	rec := doJSON(t, h, http.MethodPost, "/transfer", domain.TransferRequest{
		UserID:            userID,
		SourceOperator:    domain.OperatorAirtel,
		DestinationNumber: "+22790000000",
		Amount:            100,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("transfer: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/forfait", domain.PurchaseRequest{
		UserID:            userID,
		Operator:          domain.OperatorAirtel,
		BeneficiaryNumber: "+22791111111",
		PackageID:         "internet-semaine-500mo",
		PackageType:       "internet",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("forfait: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/user/"+userID+"/accounts", nil)
	var accounts domain.AccountsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &accounts)
	if accounts.Accounts[0].Balance != 400 {
		t.Fatalf("expected balance 400 after transfer and forfait, got %d", accounts.Accounts[0].Balance)
	}

	// Most recent first.
	rec = doJSON(t, h, http.MethodGet, "/user/"+userID+"/transactions", nil)
	var history domain.TransactionsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &history)
	if len(history.Transactions) != 2 {
		t.Fatalf("expected two transactions, got %d", len(history.Transactions))
	}
	if history.Transactions[0].Type != domain.TransactionForfait {
		t.Fatalf("expected the forfait first, got %+v", history.Transactions[0])
	}
}

func TestPurchase_UnknownPackageFails(t *testing.T) {
	h := newTestRouter()
	userID := registerAndLogin(t, h)

	rec := doJSON(t, h, http.MethodPost, "/forfait", domain.PurchaseRequest{
		UserID:            userID,
		Operator:          domain.OperatorAirtel,
		BeneficiaryNumber: "+22791111111",
		PackageID:         "internet-semaine-500mo",
		PackageType:       "call", // wrong type for this package
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUnknownUser_NotFound(t *testing.T) {
	h := newTestRouter()
	rec := doJSON(t, h, http.MethodGet, "/user/nope/accounts", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
