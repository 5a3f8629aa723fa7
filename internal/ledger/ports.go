package ledger

import (
	"context"

	"grana/internal/core"
)

// Filter is a conjunction of predicates for scanning the ledger.
// Zero values mean "any"; UserID is always required.
type Filter struct {
	UserID string
	Kind   core.Kind
	Wallet core.Wallet
	Month  int // 1-12, only honored together with Year
	Year   int
}

// Ports consumed by the HTTP handlers.
type (
	Recorder interface {
		// Record persists a transaction, assigning id and date, and
		// returns the stored record.
		Record(ctx context.Context, t core.Transaction) (core.Transaction, error)
	}

	Scanner interface {
		// Scan returns every transaction matching the filter, order
		// unspecified.
		Scan(ctx context.Context, f Filter) ([]core.Transaction, error)
	}

	Resetter interface {
		// DeleteAllForUser removes every record for the user.
		// Deleting a user with no records is not an error.
		DeleteAllForUser(ctx context.Context, userID string) error
	}
)
