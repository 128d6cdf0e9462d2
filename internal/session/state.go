/**
 * @description
 * This package owns the client-side session state machine: which screen is
 * active, whether the user is authenticated, the loaded account and
 * transaction data, and the in-flight request status. Transitions are pure
 * functions from (state, event) to (new state, commands); the controller
 * executes the commands against the Remote Account API.
 */

package session

import "github.com/medo227-collab/limobile-app/internal/domain"

// Phase is the top-level authentication phase.
type Phase int

const (
	PhaseLoggedOut Phase = iota
	PhaseRegistering
	PhaseAuthenticating
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoggedOut:
		return "logged out"
	case PhaseRegistering:
		return "registering"
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Screen identifies the active screen while authenticated.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenTransfer
	ScreenForfait
	ScreenHistory
)

func (s Screen) String() string {
	switch s {
	case ScreenDashboard:
		return "dashboard"
	case ScreenTransfer:
		return "transfer"
	case ScreenForfait:
		return "forfait"
	case ScreenHistory:
		return "history"
	}
	return "unknown"
}

// Flight names the request chain currently in flight. While a flight is
// open the state is Busy and user actions that would start another request
// are rejected.
type Flight int

const (
	FlightNone Flight = iota
	FlightLogin
	FlightRegister
	FlightAddOperator
	FlightTransfer
	FlightPurchase
)

// NoticeKind classifies the user-visible message attached to the state.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeError
	NoticeSuccess
	NoticeWarning
)

// Notice is the structured message the view renders instead of ad-hoc
// alerts. Validation, API-reported, and transport errors all land here.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// State is the full client-side session state. It is treated as an
// immutable value: Transition returns a new State and never mutates the
// input. Slices are replaced wholesale on refresh, never appended to.
type State struct {
	Phase  Phase
	Screen Screen
	Busy   bool
	Flight Flight

	Session      domain.Session
	Accounts     []domain.Account
	Transactions []domain.Transaction

	// SelectedOperator is the operator active for balance display and as
	// the implicit source of transfers and purchases. Empty means unset;
	// when set it always names an operator present in Accounts.
	SelectedOperator domain.Operator

	// Package selection is scoped to PackageType: switching type clears
	// SelectedPackage.
	PackageType     string
	SelectedPackage string

	Notice Notice
}

// NewState returns the initial logged-out state.
func NewState() State {
	return State{Phase: PhaseLoggedOut}
}
