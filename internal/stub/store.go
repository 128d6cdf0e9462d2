/**
 * @description
 * This package is an in-memory reference implementation of the Remote
 * Account API contract. It exists so the client can be developed and tested
 * end-to-end without the real backend; it is a dev fixture, not production
 * server code.
 */

package stub

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medo227-collab/limobile-app/internal/catalog"
	"github.com/medo227-collab/limobile-app/internal/domain"
)

// Store errors, mapped to HTTP statuses by the handlers.
var (
	ErrPhoneTaken          = errors.New("phone number already registered")
	ErrInvalidCredentials  = errors.New("invalid phone number or PIN")
	ErrUserNotFound        = errors.New("user not found")
	ErrOperatorHeld        = errors.New("account already exists for this operator")
	ErrNoAccount           = errors.New("no account for this operator")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnknownPackage      = errors.New("unknown package")
)

// initialBalance is granted to every newly opened account so transfers and
// purchases can be exercised right away.
const initialBalance int64 = 1000

type user struct {
	id           string
	phone        string
	pinHash      []byte
	accounts     []domain.Account
	transactions []domain.Transaction
}

// Store holds all stub state in memory. Safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	usersByID   map[string]*user
	userByPhone map[string]*user
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		usersByID:   make(map[string]*user),
		userByPhone: make(map[string]*user),
	}
}

// Register creates a user with a bcrypt-hashed PIN and one seeded airtel
// account. The PIN itself is never stored.
func (s *Store) Register(phone, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.userByPhone[phone]; exists {
		return ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}

	u := &user{
		id:      uuid.NewString(),
		phone:   phone,
		pinHash: hash,
		accounts: []domain.Account{
			{Operator: domain.OperatorAirtel, Balance: initialBalance},
		},
	}
	s.usersByID[u.id] = u
	s.userByPhone[phone] = u
	return nil
}

// Authenticate checks the credentials and returns the user ID.
func (s *Store) Authenticate(phone, pin string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.userByPhone[phone]
	if !exists {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(u.pinHash, []byte(pin)) != nil {
		return "", ErrInvalidCredentials
	}
	return u.id, nil
}

// Accounts returns a copy of the user's account list.
func (s *Store) Accounts(userID string) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.usersByID[userID]
	if !exists {
		return nil, ErrUserNotFound
	}
	out := make([]domain.Account, len(u.accounts))
	copy(out, u.accounts)
	return out, nil
}

// Transactions returns a copy of the user's history, most recent first.
func (s *Store) Transactions(userID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.usersByID[userID]
	if !exists {
		return nil, ErrUserNotFound
	}
	out := make([]domain.Transaction, len(u.transactions))
	copy(out, u.transactions)
	return out, nil
}

// AddAccount opens an account under the given operator with the seed balance.
func (s *Store) AddAccount(userID string, op domain.Operator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.usersByID[userID]
	if !exists {
		return ErrUserNotFound
	}
	if !op.Valid() {
		return fmt.Errorf("unknown operator %q", op)
	}
	if domain.HasOperator(u.accounts, op) {
		return ErrOperatorHeld
	}
	u.accounts = append(u.accounts, domain.Account{Operator: op, Balance: initialBalance})
	return nil
}

// Transfer debits the source account and records a transaction.
func (s *Store) Transfer(userID string, op domain.Operator, destination string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.usersByID[userID]
	if !exists {
		return ErrUserNotFound
	}
	if err := debit(u, op, amount); err != nil {
		return err
	}
	prepend(u, domain.Transaction{
		ID:          uuid.NewString(),
		Type:        domain.TransactionTransfer,
		Description: fmt.Sprintf("Transfert de crédit vers %s", destination),
		Amount:      -amount,
		Date:        time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

// Purchase debits the package price and records a transaction.
func (s *Store) Purchase(userID string, op domain.Operator, beneficiary, packageID, packageType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.usersByID[userID]
	if !exists {
		return ErrUserNotFound
	}
	pkg, ok := catalog.Find(packageID)
	if !ok || pkg.Type != packageType {
		return ErrUnknownPackage
	}
	if err := debit(u, op, pkg.Price); err != nil {
		return err
	}
	prepend(u, domain.Transaction{
		ID:          uuid.NewString(),
		Type:        domain.TransactionForfait,
		Description: fmt.Sprintf("%s pour %s", pkg.Name, beneficiary),
		Amount:      -pkg.Price,
		Date:        time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

func debit(u *user, op domain.Operator, amount int64) error {
	for i := range u.accounts {
		if u.accounts[i].Operator != op {
			continue
		}
		if u.accounts[i].Balance < amount {
			return ErrInsufficientBalance
		}
		u.accounts[i].Balance -= amount
		return nil
	}
	return ErrNoAccount
}

// prepend keeps the history most-recent-first, the order clients assume.
func prepend(u *user, tx domain.Transaction) {
	u.transactions = append([]domain.Transaction{tx}, u.transactions...)
}
