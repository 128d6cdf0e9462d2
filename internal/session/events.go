package session

import "github.com/medo227-collab/limobile-app/internal/domain"

// Event is something that happened: a user action or the completion of a
// command. Completion events are fed back by the controller after it runs
// the corresponding command.
type Event interface{ event() }

// User actions.

// SubmitLogin carries the login form values.
type SubmitLogin struct {
	Phone string
	PIN   string
}

// GoToRegister navigates from the login screen to the registration screen.
type GoToRegister struct{}

// SubmitRegister carries the registration form values.
type SubmitRegister struct {
	Phone      string
	PIN        string
	ConfirmPIN string
}

// Logout ends the session from any authenticated screen.
type Logout struct{}

// Navigate moves from the dashboard to another authenticated screen.
type Navigate struct{ Screen Screen }

// Back returns to the dashboard from any authenticated screen, or to the
// login screen from registration.
type Back struct{}

// SelectOperator makes one of the held operators the active one.
type SelectOperator struct{ Operator domain.Operator }

// AddOperator asks to open an account under an operator not yet held.
type AddOperator struct{ Operator domain.Operator }

// SubmitTransfer carries the transfer form values; the source operator is
// the currently selected one.
type SubmitTransfer struct {
	Destination string
	Amount      int64
}

// SelectPackageType switches between call and internet bundles.
type SelectPackageType struct{ Type string }

// SelectPackage picks a bundle from the catalog by ID.
type SelectPackage struct{ ID string }

// SubmitPurchase carries the forfait form values; the package is the
// currently selected one.
type SubmitPurchase struct{ Beneficiary string }

// Command completions, fed back by the controller.

// LoginCompleted reports the outcome of a CallLogin command.
type LoginCompleted struct {
	UserID string
	Err    string // empty on success
}

// RegisterCompleted reports the outcome of a CallRegister command.
type RegisterCompleted struct{ Err string }

// AccountsFetched reports the outcome of a FetchAccounts command.
type AccountsFetched struct {
	Accounts []domain.Account
	Err      string
}

// TransactionsFetched reports the outcome of a FetchTransactions command.
type TransactionsFetched struct {
	Transactions []domain.Transaction
	Err          string
}

// AddOperatorCompleted reports the outcome of a CallAddOperator command.
type AddOperatorCompleted struct{ Err string }

// TransferCompleted reports the outcome of a CallTransfer command.
type TransferCompleted struct{ Err string }

// PurchaseCompleted reports the outcome of a CallPurchase command.
type PurchaseCompleted struct{ Err string }

func (SubmitLogin) event()          {}
func (GoToRegister) event()         {}
func (SubmitRegister) event()       {}
func (Logout) event()               {}
func (Navigate) event()             {}
func (Back) event()                 {}
func (SelectOperator) event()       {}
func (AddOperator) event()          {}
func (SubmitTransfer) event()       {}
func (SelectPackageType) event()    {}
func (SelectPackage) event()        {}
func (SubmitPurchase) event()       {}
func (LoginCompleted) event()       {}
func (RegisterCompleted) event()    {}
func (AccountsFetched) event()      {}
func (TransactionsFetched) event()  {}
func (AddOperatorCompleted) event() {}
func (TransferCompleted) event()    {}
func (PurchaseCompleted) event()    {}

// Command is a side effect the controller must run after a transition.
// Commands are executed strictly in order, one at a time, so a data refresh
// always follows the mutating call whose success triggered it.
type Command interface{ command() }

// CallLogin posts the credentials to the login endpoint.
type CallLogin struct {
	Phone string
	PIN   string
}

// CallRegister posts the credentials to the registration endpoint.
type CallRegister struct {
	Phone string
	PIN   string
}

// FetchAccounts reloads the user's account list.
type FetchAccounts struct{ UserID string }

// FetchTransactions reloads the user's transaction history.
type FetchTransactions struct{ UserID string }

// CallAddOperator opens an account under the given operator.
type CallAddOperator struct {
	UserID   string
	Operator domain.Operator
}

// CallTransfer posts a credit transfer.
type CallTransfer struct{ Request domain.TransferRequest }

// CallPurchase posts a forfait purchase.
type CallPurchase struct{ Request domain.PurchaseRequest }

// ResetForms tells the view layer to clear its input fields.
type ResetForms struct{}

func (CallLogin) command()         {}
func (CallRegister) command()      {}
func (FetchAccounts) command()     {}
func (FetchTransactions) command() {}
func (CallAddOperator) command()   {}
func (CallTransfer) command()      {}
func (CallPurchase) command()      {}
func (ResetForms) command()        {}
