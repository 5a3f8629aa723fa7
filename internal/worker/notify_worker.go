package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"grana/internal/amqp"
	"grana/internal/core"
	"grana/internal/storage"
)

// NotifyWorker delivers recorded-transaction confirmations to the chat bot
// webhook and tracks delivery state in the transactions table.
type NotifyWorker struct {
	storage    *storage.SQLiteRepository
	webhookURL string
	client     *http.Client
	batchSize  int
}

func NewNotifyWorker(storage *storage.SQLiteRepository, webhookURL string, batchSize int) *NotifyWorker {
	return &NotifyWorker{
		storage:    storage,
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		batchSize:  batchSize,
	}
}

// HandleRecordedMessage processes a single recorded-transaction event from
// AMQP: it loads the row and delivers the confirmation.
func (w *NotifyWorker) HandleRecordedMessage(ctx context.Context, msg *amqp.TransactionRecordedMessage) error {
	slog.InfoContext(ctx, "Processing recorded message",
		"id", msg.ID,
		"user_id", msg.UserID)

	tx, err := w.storage.GetTransaction(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get transaction from storage: %w", err)
	}

	return w.notify(ctx, tx)
}

// ProcessPendingNotifications delivers confirmations for rows still marked
// pending. This is a backup mechanism in case AMQP messages are lost.
func (w *NotifyWorker) ProcessPendingNotifications(ctx context.Context) error {
	pending, err := w.storage.GetPendingNotifications(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending notifications: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending notifications", "count", len(pending))

	for _, tx := range pending {
		if err := w.notify(ctx, tx); err != nil {
			slog.ErrorContext(ctx, "Failed to notify", "id", tx.ID, "error", err)
		}
	}

	return nil
}

func (w *NotifyWorker) notify(ctx context.Context, tx core.Transaction) error {
	text := ConfirmationText(tx)

	if w.webhookURL == "" {
		// No bot configured: log the confirmation and mark it handled
		slog.InfoContext(ctx, "No webhook configured, skipping delivery",
			"id", tx.ID, "text", text)
		return w.storage.MarkNotified(ctx, tx.ID)
	}

	payload, err := json.Marshal(map[string]string{
		"usuario_id": tx.UserID,
		"texto":      text,
	})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		if markErr := w.storage.MarkNotifyError(ctx, tx.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark notify error", "id", tx.ID, "error", markErr)
		}
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if markErr := w.storage.MarkNotifyError(ctx, tx.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark notify error", "id", tx.ID, "error", markErr)
		}
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	if err := w.storage.MarkNotified(ctx, tx.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to mark as notified", "id", tx.ID, "error", err)
		// Don't return error here - the delivery actually worked
	}

	slog.InfoContext(ctx, "Notification delivered",
		"id", tx.ID,
		"user_id", tx.UserID)

	return nil
}

// ConfirmationText formats the Portuguese confirmation the bot forwards to
// the user.
func ConfirmationText(t core.Transaction) string {
	return fmt.Sprintf("%s registrado: %s (R$ %.2f) na carteira %s",
		t.Kind.Label(), t.Category, t.Amount.Reais(), t.Wallet.Label())
}
