package session

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/medo227-collab/limobile-app/internal/domain"
	"github.com/medo227-collab/limobile-app/pkg/apiclient"
)

// API defines the Remote Account API operations the controller needs.
// *apiclient.Client satisfies it; tests substitute stubs.
type API interface {
	Register(ctx context.Context, req domain.RegisterRequest) error
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	AddAccount(ctx context.Context, userID string, op domain.Operator) error
	Transfer(ctx context.Context, req domain.TransferRequest) error
	Purchase(ctx context.Context, req domain.PurchaseRequest) error
}

// Controller owns the session state and drives the state machine. Events go
// through Dispatch; resulting commands run one at a time, in order, and
// their completions are fed back through the machine before the next
// command starts. That sequencing is what guarantees a refresh always
// reflects the mutating call that preceded it.
//
// The controller is single-threaded: the UI event loop is the only caller,
// so no locking is needed. The Busy flag keeps two requests for the same
// action from ever being in flight at once.
type Controller struct {
	api    API
	logger *slog.Logger
	state  State

	// OnResetForms, when set, is called whenever the machine asks the view
	// layer to clear its input fields.
	OnResetForms func()
}

// NewController creates a controller in the logged-out state.
func NewController(api API, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{api: api, logger: logger, state: NewState()}
}

// State returns a snapshot of the current session state.
func (c *Controller) State() State {
	return c.state
}

// Dispatch runs one event and everything it causes: the transition, the
// resulting commands, and the transitions their completions trigger. It
// returns once the state is quiescent (no request in flight).
func (c *Controller) Dispatch(ctx context.Context, ev Event) {
	queue := []Event{ev}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]

		next, cmds := Transition(c.state, head)
		c.state = next

		for _, cmd := range cmds {
			if completion := c.execute(ctx, cmd); completion != nil {
				queue = append(queue, completion)
			}
		}
	}
}

// execute runs one command against the API and returns its completion
// event, or nil for commands with no completion.
func (c *Controller) execute(ctx context.Context, cmd Command) Event {
	switch cmd := cmd.(type) {
	case CallLogin:
		resp, err := c.api.Login(ctx, domain.LoginRequest{PhoneNumber: cmd.Phone, PIN: cmd.PIN})
		if err != nil {
			c.logger.Warn("login failed", "error", err)
			return LoginCompleted{Err: userMessage(err, "login failed, please try again")}
		}
		c.logger.Info("login succeeded", "user_id", resp.UserID)
		return LoginCompleted{UserID: resp.UserID}

	case CallRegister:
		err := c.api.Register(ctx, domain.RegisterRequest{PhoneNumber: cmd.Phone, PIN: cmd.PIN})
		if err != nil {
			c.logger.Warn("registration failed", "error", err)
			return RegisterCompleted{Err: userMessage(err, "registration failed, please try again")}
		}
		return RegisterCompleted{}

	case FetchAccounts:
		accounts, err := c.api.ListAccounts(ctx, cmd.UserID)
		if err != nil {
			c.logger.Warn("accounts fetch failed", "user_id", cmd.UserID, "error", err)
			return AccountsFetched{Err: userMessage(err, "could not load accounts")}
		}
		return AccountsFetched{Accounts: accounts}

	case FetchTransactions:
		transactions, err := c.api.ListTransactions(ctx, cmd.UserID)
		if err != nil {
			c.logger.Warn("transactions fetch failed", "user_id", cmd.UserID, "error", err)
			return TransactionsFetched{Err: userMessage(err, "could not load history")}
		}
		return TransactionsFetched{Transactions: transactions}

	case CallAddOperator:
		err := c.api.AddAccount(ctx, cmd.UserID, cmd.Operator)
		if err != nil {
			c.logger.Warn("add-account failed", "operator", cmd.Operator, "error", err)
			return AddOperatorCompleted{Err: userMessage(err, "could not add the operator")}
		}
		return AddOperatorCompleted{}

	case CallTransfer:
		err := c.api.Transfer(ctx, cmd.Request)
		if err != nil {
			c.logger.Warn("transfer failed", "operator", cmd.Request.SourceOperator, "error", err)
			return TransferCompleted{Err: userMessage(err, "transfer failed, please try again")}
		}
		return TransferCompleted{}

	case CallPurchase:
		err := c.api.Purchase(ctx, cmd.Request)
		if err != nil {
			c.logger.Warn("purchase failed", "package_id", cmd.Request.PackageID, "error", err)
			return PurchaseCompleted{Err: userMessage(err, "purchase failed, please try again")}
		}
		return PurchaseCompleted{}

	case ResetForms:
		if c.OnResetForms != nil {
			c.OnResetForms()
		}
		return nil
	}

	return nil
}

// userMessage picks the message shown to the user for a failed call: the
// server-provided one when the API reported an error, otherwise the generic
// fallback. Transport failures and malformed responses look the same to the
// user.
func userMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
