/**
 * @description
 * This package provides a client for the Remote Account API. It encapsulates
 * the logic for making HTTP/JSON requests to the six endpoints the
 * application depends on: registration, login, account listing, transaction
 * listing, add-account, transfer, and forfait purchase.
 *
 * Key features:
 * - Typed request/response models for every endpoint (internal/domain).
 * - Non-2xx responses are decoded into APIError carrying the server message.
 * - Malformed success bodies fail with a decode error instead of propagating
 *   zero-valued fields.
 */
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/medo227-collab/limobile-app/internal/domain"
)

// APIError is a completed call that returned a non-success status. Message is
// the server-provided message when one was present in the body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

// Client is a client for the Remote Account API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Remote Account API client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Register creates a new user with the given phone number and PIN.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/register", req, nil)
}

// Login authenticates a user and returns the server-assigned user ID.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	var resp domain.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.UserID == "" {
		return nil, fmt.Errorf("malformed login response: missing user_id")
	}
	return &resp, nil
}

// ListAccounts fetches every account the user holds.
func (c *Client) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	var resp domain.AccountsResponse
	path := fmt.Sprintf("/user/%s/accounts", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

// ListTransactions fetches the user's full transaction history in server order.
func (c *Client) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var resp domain.TransactionsResponse
	path := fmt.Sprintf("/user/%s/transactions", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// AddAccount opens an account for the user under the given operator.
func (c *Client) AddAccount(ctx context.Context, userID string, op domain.Operator) error {
	path := fmt.Sprintf("/user/%s/add-account", url.PathEscape(userID))
	return c.do(ctx, http.MethodPost, path, domain.AddAccountRequest{Operator: op}, nil)
}

// Transfer sends credit from one of the user's accounts to a destination number.
func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) error {
	return c.do(ctx, http.MethodPost, "/transfer", req, nil)
}

// Purchase buys a forfait for a beneficiary number.
func (c *Client) Purchase(ctx context.Context, req domain.PurchaseRequest) error {
	return c.do(ctx, http.MethodPost, "/forfait", req, nil)
}

// do is a helper function to make HTTP requests to the Remote Account API.
func (c *Client) do(ctx context.Context, method, path string, body, target interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("account api request", "method", method, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg domain.APIMessage
		if json.Unmarshal(respBody, &msg) == nil {
			apiErr.Message = msg.Message
		}
		c.logger.Warn("account api returned non-success status",
			"method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if target != nil {
		if err := json.Unmarshal(respBody, target); err != nil {
			return fmt.Errorf("malformed response body: %w", err)
		}
	}

	return nil
}
