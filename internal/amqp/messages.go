package amqp

import (
	"encoding/json"
	"time"

	"grana/internal/core"
)

// TransactionRecordedMessage announces a ledger insert to the notifier
// worker. It carries only what the worker needs to log and look the row up;
// the full record is fetched from the database.
type TransactionRecordedMessage struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"usuario_id"`
	Kind        string    `json:"kind"`
	AmountCents int64     `json:"amount_cents"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransactionRecordedMessage builds a message from a stored transaction.
func NewTransactionRecordedMessage(t core.Transaction) *TransactionRecordedMessage {
	return &TransactionRecordedMessage{
		ID:          t.ID,
		UserID:      t.UserID,
		Kind:        string(t.Kind),
		AmountCents: t.Amount.Cents,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *TransactionRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedMessageFromJSON creates a message from JSON bytes.
func TransactionRecordedMessageFromJSON(data []byte) (*TransactionRecordedMessage, error) {
	var msg TransactionRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
