/**
 * @description
 * This is the terminal front end for the LiMobile client. It is a thin view
 * layer: it renders the current session state, collects form input, and
 * dispatches events to the session controller, which owns all state and
 * talks to the Remote Account API.
 */
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/medo227-collab/limobile-app/internal/catalog"
	"github.com/medo227-collab/limobile-app/internal/config"
	"github.com/medo227-collab/limobile-app/internal/domain"
	"github.com/medo227-collab/limobile-app/internal/session"
	"github.com/medo227-collab/limobile-app/pkg/apiclient"
)

func main() {
	// Logs go to stderr so stdout stays a clean UI surface.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client := apiclient.NewClient(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second, logger)
	ctrl := session.NewController(client, logger)

	ui := &terminalUI{ctrl: ctrl, in: bufio.NewScanner(os.Stdin)}
	ui.run(context.Background())
}

type terminalUI struct {
	ctrl *session.Controller
	in   *bufio.Scanner
}

func (u *terminalUI) run(ctx context.Context) {
	fmt.Println("Bienvenue sur LiMobile")
	for {
		s := u.ctrl.State()
		renderNotice(s.Notice)

		var quit bool
		switch s.Phase {
		case session.PhaseLoggedOut:
			quit = u.loginScreen(ctx)
		case session.PhaseRegistering:
			u.registerScreen(ctx)
		case session.PhaseAuthenticated:
			quit = u.authenticatedScreen(ctx, s)
		default:
			// Authenticating is transient; Dispatch returns quiescent state.
			quit = true
		}
		if quit {
			return
		}
	}
}

func (u *terminalUI) loginScreen(ctx context.Context) bool {
	fmt.Println("\n-- Connexion --")
	switch u.prompt("[l]ogin  [r]egister  [q]uit") {
	case "l":
		phone := u.prompt("phone number")
		pin := u.prompt("PIN (4 digits)")
		u.ctrl.Dispatch(ctx, session.SubmitLogin{Phone: phone, PIN: pin})
	case "r":
		u.ctrl.Dispatch(ctx, session.GoToRegister{})
	case "q":
		return true
	}
	return false
}

func (u *terminalUI) registerScreen(ctx context.Context) {
	fmt.Println("\n-- Créer un compte --")
	switch u.prompt("[s]ubmit  [b]ack") {
	case "s":
		phone := u.prompt("phone number")
		pin := u.prompt("PIN (4 digits)")
		confirm := u.prompt("confirm PIN")
		u.ctrl.Dispatch(ctx, session.SubmitRegister{Phone: phone, PIN: pin, ConfirmPIN: confirm})
	case "b":
		u.ctrl.Dispatch(ctx, session.Back{})
	}
}

func (u *terminalUI) authenticatedScreen(ctx context.Context, s session.State) bool {
	switch s.Screen {
	case session.ScreenDashboard:
		return u.dashboardScreen(ctx, s)
	case session.ScreenTransfer:
		u.transferScreen(ctx)
	case session.ScreenForfait:
		u.forfaitScreen(ctx, s)
	case session.ScreenHistory:
		u.historyScreen(ctx, s)
	}
	return false
}

func (u *terminalUI) dashboardScreen(ctx context.Context, s session.State) bool {
	fmt.Println("\n-- Mes soldes --")
	for _, a := range s.Accounts {
		marker := " "
		if a.Operator == s.SelectedOperator {
			marker = "*"
		}
		fmt.Printf(" %s %-7s %6d F\n", marker, strings.ToUpper(string(a.Operator)), a.Balance)
	}
	fmt.Println("-- Historique --")
	for i, tx := range s.Transactions {
		if i == 3 {
			break
		}
		fmt.Printf("   %-40s %6d F  %s\n", tx.Description, tx.Amount, displayDate(tx))
	}

	switch u.prompt("[t]ransfer  [f]orfait  [h]istory  [a]dd operator  [s]elect operator  [x] logout  [q]uit") {
	case "t":
		u.ctrl.Dispatch(ctx, session.Navigate{Screen: session.ScreenTransfer})
	case "f":
		u.ctrl.Dispatch(ctx, session.Navigate{Screen: session.ScreenForfait})
	case "h":
		u.ctrl.Dispatch(ctx, session.Navigate{Screen: session.ScreenHistory})
	case "a":
		op := u.prompt("operator (airtel/moov/zamani)")
		u.ctrl.Dispatch(ctx, session.AddOperator{Operator: domain.Operator(op)})
	case "s":
		op := u.prompt("operator (airtel/moov/zamani)")
		u.ctrl.Dispatch(ctx, session.SelectOperator{Operator: domain.Operator(op)})
	case "x":
		u.ctrl.Dispatch(ctx, session.Logout{})
	case "q":
		return true
	}
	return false
}

// quickAmounts mirrors the preset buttons of the transfer form.
var quickAmounts = []int64{150, 500, 1000, 2500}

func (u *terminalUI) transferScreen(ctx context.Context) {
	fmt.Println("\n-- Transfert de crédit --")
	switch u.prompt("[s]ubmit  [b]ack") {
	case "s":
		dest := u.prompt("destination number")
		fmt.Printf("quick amounts: %v\n", quickAmounts)
		amount, err := strconv.ParseInt(u.prompt("amount (F)"), 10, 64)
		if err != nil {
			fmt.Println("! enter a whole number amount")
			return
		}
		u.ctrl.Dispatch(ctx, session.SubmitTransfer{Destination: dest, Amount: amount})
	case "b":
		u.ctrl.Dispatch(ctx, session.Back{})
	}
}

func (u *terminalUI) forfaitScreen(ctx context.Context, s session.State) {
	fmt.Println("\n-- Acheter un forfait --")
	if s.PackageType != "" {
		for _, p := range catalog.ByType(s.PackageType) {
			marker := " "
			if p.ID == s.SelectedPackage {
				marker = "*"
			}
			fmt.Printf(" %s %-22s %-30s %5d F  (%s)\n", marker, p.ID, p.Name, p.Price, p.Description)
		}
	}
	switch u.prompt("[t]ype  [p]ackage  [s]ubmit  [b]ack") {
	case "t":
		u.ctrl.Dispatch(ctx, session.SelectPackageType{Type: u.prompt("type (call/internet)")})
	case "p":
		u.ctrl.Dispatch(ctx, session.SelectPackage{ID: u.prompt("package id")})
	case "s":
		u.ctrl.Dispatch(ctx, session.SubmitPurchase{Beneficiary: u.prompt("beneficiary number")})
	case "b":
		u.ctrl.Dispatch(ctx, session.Back{})
	}
}

func (u *terminalUI) historyScreen(ctx context.Context, s session.State) {
	fmt.Println("\n-- Historique --")
	for _, tx := range s.Transactions {
		fmt.Printf("   %-40s %6d F  %s\n", tx.Description, tx.Amount, displayDate(tx))
	}
	u.prompt("press enter to go back")
	u.ctrl.Dispatch(ctx, session.Back{})
}

func (u *terminalUI) prompt(label string) string {
	fmt.Printf("%s > ", label)
	if !u.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(u.in.Text())
}

func renderNotice(n session.Notice) {
	switch n.Kind {
	case session.NoticeError:
		fmt.Printf("! %s\n", n.Message)
	case session.NoticeSuccess:
		fmt.Printf("✓ %s\n", n.Message)
	case session.NoticeWarning:
		fmt.Printf("~ %s\n", n.Message)
	}
}

func displayDate(tx domain.Transaction) string {
	if ts, ok := tx.Time(); ok {
		return ts.Format("02 Jan 2006")
	}
	return tx.Date
}
