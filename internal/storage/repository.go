package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"grana/internal/core"
	"grana/internal/ledger"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert persists a transaction, assigning a new id and defaulting the date
// to today when unset, and returns the stored record.
func (r *SQLiteRepository) Insert(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	// Persisted with day precision only
	y, m, d := t.Date.Date()
	t.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	res, err := r.db.ExecContext(ctx, insertTransaction,
		t.UserID, t.Category, t.Amount.Cents, string(t.Kind), string(t.Wallet),
		t.Date.Format(dateLayout))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("last insert id: %w", err)
	}
	t.ID = id

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", t.ID,
		"user_id", t.UserID,
		"category", t.Category,
		"amount_cents", t.Amount.Cents,
		"kind", string(t.Kind),
		"wallet", string(t.Wallet))

	return t, nil
}

// Scan implements ledger.Scanner.
func (r *SQLiteRepository) Scan(ctx context.Context, f ledger.Filter) ([]core.Transaction, error) {
	query, args := buildScanQuery(f)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}

// DeleteAllForUser implements ledger.Resetter. Zero matching rows is success.
func (r *SQLiteRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, deleteUserTransactions, userID)
	if err != nil {
		return fmt.Errorf("delete user transactions: %w", err)
	}

	affected, _ := res.RowsAffected()
	slog.InfoContext(ctx, "User ledger reset", "user_id", userID, "deleted", affected)

	return nil
}

// GetTransaction retrieves a single transaction by id.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, selectTransaction, id)
	t, err := scanTransaction(row)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return t, nil
}

// GetPendingNotifications returns transactions whose confirmation has not been
// delivered yet, oldest first.
func (r *SQLiteRepository) GetPendingNotifications(ctx context.Context, limit int) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, selectPendingNotifications, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("get pending notifications: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending notifications: %w", err)
	}

	return txs, nil
}

// MarkNotified marks a transaction confirmation as delivered.
func (r *SQLiteRepository) MarkNotified(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, markNotifySent, id); err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	return nil
}

// MarkNotifyError marks a transaction confirmation as failed so the periodic
// sweep does not retry it forever.
func (r *SQLiteRepository) MarkNotifyError(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, markNotifyError, id); err != nil {
		return fmt.Errorf("mark notify error: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		t       core.Transaction
		kind    string
		wallet  string
		dateStr string
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Category, &t.Amount.Cents, &kind, &wallet, &dateStr); err != nil {
		return core.Transaction{}, fmt.Errorf("scan transaction row: %w", err)
	}
	t.Kind = core.Kind(kind)
	t.Wallet = core.Wallet(wallet)

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse tx_date %q: %w", dateStr, err)
	}
	t.Date = date

	return t, nil
}
