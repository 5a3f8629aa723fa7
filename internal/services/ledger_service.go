package services

import (
	"context"
	"fmt"
	"log/slog"

	"grana/internal/amqp"
	"grana/internal/core"
	"grana/internal/ledger"
	"grana/internal/storage"
)

// LedgerService implements the ledger ports over SQLite and publishes
// recorded-transaction events to AMQP when a client is configured.
type LedgerService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewLedgerService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *LedgerService {
	return &LedgerService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// Record saves a transaction and publishes an event for the notifier.
// Publishing is best effort: the insert stands even when the broker is down.
func (s *LedgerService) Record(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	stored, err := s.storage.Insert(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	if s.amqpClient == nil {
		return stored, nil
	}
	if err := s.amqpClient.PublishTransactionRecorded(ctx, stored); err != nil {
		slog.ErrorContext(ctx, "Failed to publish recorded message",
			"id", stored.ID, "error", err)
		// Don't fail the request - the transaction is saved locally
	}

	return stored, nil
}

// Scan implements ledger.Scanner.
func (s *LedgerService) Scan(ctx context.Context, f ledger.Filter) ([]core.Transaction, error) {
	return s.storage.Scan(ctx, f)
}

// DeleteAllForUser implements ledger.Resetter.
func (s *LedgerService) DeleteAllForUser(ctx context.Context, userID string) error {
	return s.storage.DeleteAllForUser(ctx, userID)
}

// Close closes both storage and AMQP connections.
func (s *LedgerService) Close() error {
	var errs []error

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close ledger service: %v", errs)
	}

	return nil
}
