/**
 * @description
 * This file defines the core domain models for the LiMobile client: mobile
 * network operators and the per-operator account balances a user holds.
 *
 * @notes
 * - Balances are `int64` in the smallest whole currency unit (CFA francs,
 *   no fractional units), which avoids floating-point inaccuracies with
 *   financial data.
 * - A user holds at most one account per operator; the operator is the
 *   unique key within a user's account set.
 */

package domain

import "fmt"

// Operator identifies a mobile network / mobile money provider.
type Operator string

const (
	OperatorAirtel Operator = "airtel"
	OperatorMoov   Operator = "moov"
	OperatorZamani Operator = "zamani"
)

// Operators lists every provider the application knows about, in display order.
var Operators = []Operator{OperatorAirtel, OperatorMoov, OperatorZamani}

// ParseOperator maps an operator name from user input or an API payload to
// the canonical Operator value.
func ParseOperator(s string) (Operator, error) {
	for _, op := range Operators {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Valid reports whether the operator is one the application knows about.
func (o Operator) Valid() bool {
	_, err := ParseOperator(string(o))
	return err == nil
}

// Account is a per-operator balance record owned by a user. It is never
// mutated locally; the client always refreshes it from the API after any
// operation that could change it.
type Account struct {
	Operator Operator `json:"operator"`
	Balance  int64    `json:"balance"`
}

// HasOperator reports whether the account set already contains an account
// for the given operator.
func HasOperator(accounts []Account, op Operator) bool {
	for _, a := range accounts {
		if a.Operator == op {
			return true
		}
	}
	return false
}
