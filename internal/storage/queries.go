package storage

import (
	"fmt"

	"grana/internal/ledger"
)

const (
	insertTransaction = `INSERT INTO transactions (user_id, category, amount_cents, kind, wallet, tx_date)
VALUES (?, ?, ?, ?, ?, ?)`

	selectTransaction = `SELECT id, user_id, category, amount_cents, kind, wallet, tx_date
FROM transactions WHERE id = ?`

	deleteUserTransactions = `DELETE FROM transactions WHERE user_id = ?`

	selectPendingNotifications = `SELECT id, user_id, category, amount_cents, kind, wallet, tx_date
FROM transactions WHERE notify_status = 'pending' ORDER BY id LIMIT ?`

	markNotifySent  = `UPDATE transactions SET notify_status = 'sent' WHERE id = ?`
	markNotifyError = `UPDATE transactions SET notify_status = 'error' WHERE id = ?`
)

// buildScanQuery assembles the conjunctive filter of ledger.Filter into a
// WHERE clause. UserID is always present; the other predicates are added only
// when set.
func buildScanQuery(f ledger.Filter) (string, []any) {
	q := `SELECT id, user_id, category, amount_cents, kind, wallet, tx_date
FROM transactions WHERE user_id = ?`
	args := []any{f.UserID}

	if f.Kind != "" {
		q += ` AND kind = ?`
		args = append(args, string(f.Kind))
	}
	if f.Wallet != "" {
		q += ` AND wallet = ?`
		args = append(args, string(f.Wallet))
	}
	if f.Year != 0 && f.Month != 0 {
		q += ` AND strftime('%Y', tx_date) = ? AND strftime('%m', tx_date) = ?`
		args = append(args, fmt.Sprintf("%04d", f.Year), fmt.Sprintf("%02d", f.Month))
	}

	return q, args
}
