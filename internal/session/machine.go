package session

import (
	"strings"

	"github.com/medo227-collab/limobile-app/internal/catalog"
	"github.com/medo227-collab/limobile-app/internal/domain"
)

// Transition applies one event to the state and returns the new state plus
// the commands the controller must run. It performs no I/O and never
// mutates its input. Events that are not legal in the current state leave
// the state unchanged.
func Transition(s State, ev Event) (State, []Command) {
	switch ev := ev.(type) {

	case SubmitLogin:
		if s.Phase != PhaseLoggedOut || s.Busy {
			return s, nil
		}
		if strings.TrimSpace(ev.Phone) == "" || len(ev.PIN) != 4 {
			s.Notice = Notice{Kind: NoticeError, Message: "enter your phone number and a 4-digit PIN"}
			return s, nil
		}
		s.Phase = PhaseAuthenticating
		s.Busy = true
		s.Flight = FlightLogin
		s.Notice = Notice{}
		return s, []Command{CallLogin{Phone: ev.Phone, PIN: ev.PIN}}

	case GoToRegister:
		if s.Phase != PhaseLoggedOut || s.Busy {
			return s, nil
		}
		s.Phase = PhaseRegistering
		s.Notice = Notice{}
		return s, nil

	case SubmitRegister:
		if s.Phase != PhaseRegistering || s.Busy {
			return s, nil
		}
		if strings.TrimSpace(ev.Phone) == "" || len(ev.PIN) != 4 {
			s.Notice = Notice{Kind: NoticeError, Message: "enter your phone number and a 4-digit PIN"}
			return s, nil
		}
		if ev.PIN != ev.ConfirmPIN {
			s.Notice = Notice{Kind: NoticeError, Message: "the PINs do not match"}
			return s, nil
		}
		s.Phase = PhaseAuthenticating
		s.Busy = true
		s.Flight = FlightRegister
		s.Notice = Notice{}
		return s, []Command{CallRegister{Phone: ev.Phone, PIN: ev.PIN}}

	case LoginCompleted:
		if s.Flight != FlightLogin {
			return s, nil
		}
		if ev.Err != "" {
			next := NewState()
			next.Notice = Notice{Kind: NoticeError, Message: ev.Err}
			return next, nil
		}
		s.Phase = PhaseAuthenticated
		s.Screen = ScreenDashboard
		s.Session = domain.Session{Authenticated: true, UserID: ev.UserID}
		// Flight stays open until the initial data loads complete.
		return s, []Command{FetchAccounts{UserID: ev.UserID}, FetchTransactions{UserID: ev.UserID}}

	case RegisterCompleted:
		if s.Flight != FlightRegister {
			return s, nil
		}
		next := NewState()
		if ev.Err != "" {
			next.Phase = PhaseRegistering
			next.Notice = Notice{Kind: NoticeError, Message: ev.Err}
			return next, nil
		}
		next.Notice = Notice{Kind: NoticeSuccess, Message: "account created, you can now log in"}
		return next, []Command{ResetForms{}}

	case Logout:
		if s.Phase != PhaseAuthenticated {
			return s, nil
		}
		return NewState(), []Command{ResetForms{}}

	case Navigate:
		if s.Phase != PhaseAuthenticated || s.Busy || s.Screen != ScreenDashboard {
			return s, nil
		}
		s.Screen = ev.Screen
		s.Notice = Notice{}
		return s, nil

	case Back:
		if s.Busy {
			return s, nil
		}
		if s.Phase == PhaseRegistering {
			s.Phase = PhaseLoggedOut
			s.Notice = Notice{}
			return s, nil
		}
		if s.Phase == PhaseAuthenticated {
			s.Screen = ScreenDashboard
			s.Notice = Notice{}
			return s, nil
		}
		return s, nil

	case SelectOperator:
		if s.Phase != PhaseAuthenticated || s.Busy {
			return s, nil
		}
		if !domain.HasOperator(s.Accounts, ev.Operator) {
			s.Notice = Notice{Kind: NoticeError, Message: "no account for this operator"}
			return s, nil
		}
		s.SelectedOperator = ev.Operator
		s.Notice = Notice{}
		return s, nil

	case AddOperator:
		if s.Phase != PhaseAuthenticated || s.Busy || s.Screen != ScreenDashboard {
			return s, nil
		}
		if !ev.Operator.Valid() {
			s.Notice = Notice{Kind: NoticeError, Message: "unknown operator"}
			return s, nil
		}
		if domain.HasOperator(s.Accounts, ev.Operator) {
			s.Notice = Notice{Kind: NoticeError, Message: "you already hold an account with this operator"}
			return s, nil
		}
		s.Busy = true
		s.Flight = FlightAddOperator
		s.Notice = Notice{}
		return s, []Command{CallAddOperator{UserID: s.Session.UserID, Operator: ev.Operator}}

	case SubmitTransfer:
		if s.Phase != PhaseAuthenticated || s.Busy || s.Screen != ScreenTransfer {
			return s, nil
		}
		if strings.TrimSpace(ev.Destination) == "" {
			s.Notice = Notice{Kind: NoticeError, Message: "enter the destination number"}
			return s, nil
		}
		if ev.Amount <= 0 {
			s.Notice = Notice{Kind: NoticeError, Message: "enter a positive amount"}
			return s, nil
		}
		if s.SelectedOperator == "" {
			s.Notice = Notice{Kind: NoticeError, Message: "select a source operator first"}
			return s, nil
		}
		s.Busy = true
		s.Flight = FlightTransfer
		s.Notice = Notice{}
		return s, []Command{CallTransfer{Request: domain.TransferRequest{
			UserID:            s.Session.UserID,
			SourceOperator:    s.SelectedOperator,
			DestinationNumber: ev.Destination,
			Amount:            ev.Amount,
		}}}

	case SelectPackageType:
		if s.Phase != PhaseAuthenticated || s.Busy || s.Screen != ScreenForfait {
			return s, nil
		}
		if ev.Type != catalog.TypeCall && ev.Type != catalog.TypeInternet {
			s.Notice = Notice{Kind: NoticeError, Message: "unknown package type"}
			return s, nil
		}
		if ev.Type != s.PackageType {
			// Selection is scoped per type.
			s.SelectedPackage = ""
		}
		s.PackageType = ev.Type
		s.Notice = Notice{}
		return s, nil

	case SelectPackage:
		if s.Phase != PhaseAuthenticated || s.Busy || s.Screen != ScreenForfait {
			return s, nil
		}
		pkg, ok := catalog.Find(ev.ID)
		if !ok {
			s.Notice = Notice{Kind: NoticeError, Message: "unknown package"}
			return s, nil
		}
		if pkg.Type != s.PackageType {
			s.Notice = Notice{Kind: NoticeError, Message: "package does not match the selected type"}
			return s, nil
		}
		s.SelectedPackage = pkg.ID
		s.Notice = Notice{}
		return s, nil

	case SubmitPurchase:
		if s.Phase != PhaseAuthenticated || s.Busy || s.Screen != ScreenForfait {
			return s, nil
		}
		if strings.TrimSpace(ev.Beneficiary) == "" {
			s.Notice = Notice{Kind: NoticeError, Message: "enter the beneficiary number"}
			return s, nil
		}
		if s.SelectedPackage == "" {
			s.Notice = Notice{Kind: NoticeError, Message: "select a package first"}
			return s, nil
		}
		if s.SelectedOperator == "" {
			s.Notice = Notice{Kind: NoticeError, Message: "select an operator first"}
			return s, nil
		}
		s.Busy = true
		s.Flight = FlightPurchase
		s.Notice = Notice{}
		return s, []Command{CallPurchase{Request: domain.PurchaseRequest{
			UserID:            s.Session.UserID,
			Operator:          s.SelectedOperator,
			BeneficiaryNumber: ev.Beneficiary,
			PackageID:         s.SelectedPackage,
			PackageType:       s.PackageType,
		}}}

	case AddOperatorCompleted:
		if s.Flight != FlightAddOperator {
			return s, nil
		}
		if ev.Err != "" {
			s.Busy = false
			s.Flight = FlightNone
			s.Notice = Notice{Kind: NoticeError, Message: ev.Err}
			return s, nil
		}
		// Flight stays open until the refreshed account list lands.
		return s, []Command{FetchAccounts{UserID: s.Session.UserID}}

	case TransferCompleted:
		if s.Flight != FlightTransfer {
			return s, nil
		}
		if ev.Err != "" {
			s.Busy = false
			s.Flight = FlightNone
			s.Notice = Notice{Kind: NoticeError, Message: ev.Err}
			return s, nil
		}
		s.Screen = ScreenDashboard
		s.Notice = Notice{Kind: NoticeSuccess, Message: "transfer completed"}
		return s, []Command{
			FetchAccounts{UserID: s.Session.UserID},
			FetchTransactions{UserID: s.Session.UserID},
			ResetForms{},
		}

	case PurchaseCompleted:
		if s.Flight != FlightPurchase {
			return s, nil
		}
		if ev.Err != "" {
			s.Busy = false
			s.Flight = FlightNone
			s.Notice = Notice{Kind: NoticeError, Message: ev.Err}
			return s, nil
		}
		s.Screen = ScreenDashboard
		s.SelectedPackage = ""
		s.Notice = Notice{Kind: NoticeSuccess, Message: "forfait purchased"}
		return s, []Command{
			FetchAccounts{UserID: s.Session.UserID},
			FetchTransactions{UserID: s.Session.UserID},
			ResetForms{},
		}

	case AccountsFetched:
		if s.Phase != PhaseAuthenticated {
			return s, nil
		}
		if ev.Err != "" {
			// Keep the previous data; wiping balances on a transient fetch
			// error would misrepresent funds.
			s.Notice = Notice{Kind: NoticeWarning, Message: "could not refresh balances"}
		} else {
			s.Accounts = ev.Accounts
			s.SelectedOperator = deriveSelection(s.SelectedOperator, ev.Accounts)
		}
		if s.Flight == FlightAddOperator {
			s.Busy = false
			s.Flight = FlightNone
		}
		return s, nil

	case TransactionsFetched:
		if s.Phase != PhaseAuthenticated {
			return s, nil
		}
		if ev.Err != "" {
			s.Notice = Notice{Kind: NoticeWarning, Message: "could not refresh history"}
		} else {
			s.Transactions = ev.Transactions
		}
		// The transactions fetch is always the last step of login, transfer,
		// and purchase flights.
		if s.Flight == FlightLogin || s.Flight == FlightTransfer || s.Flight == FlightPurchase {
			s.Busy = false
			s.Flight = FlightNone
		}
		return s, nil
	}

	return s, nil
}

// deriveSelection keeps the current operator selection if it still exists in
// the refreshed account set, otherwise defaults to the first account, or
// unset when there are none.
func deriveSelection(current domain.Operator, accounts []domain.Account) domain.Operator {
	if current != "" && domain.HasOperator(accounts, current) {
		return current
	}
	if len(accounts) > 0 {
		return accounts[0].Operator
	}
	return ""
}
