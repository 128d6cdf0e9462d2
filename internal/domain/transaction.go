package domain

import "time"

// Transaction kinds as reported by the API.
const (
	TransactionTransfer = "transfer"
	TransactionForfait  = "forfait"
)

// Transaction is one entry in the user's history as returned by the API.
// Entries are immutable once fetched; the client preserves server order and
// never resorts the list.
type Transaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // negative = debit, positive = credit
	Date        string `json:"date"`
}

// transactionDateLayouts are the date formats the API is known to emit.
var transactionDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time parses the transaction date for display formatting. The zero time and
// false are returned when the date does not match any known layout; the raw
// string is still shown in that case, the semantics of the date are never
// altered client-side.
func (t Transaction) Time() (time.Time, bool) {
	for _, layout := range transactionDateLayouts {
		if ts, err := time.Parse(layout, t.Date); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
