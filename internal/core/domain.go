package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Kind classifies a transaction as money coming in or going out.
	Kind string

	// Wallet is the payment-method bucket a transaction belongs to.
	Wallet string

	Money struct {
		Cents int64
	}

	// Transaction is a single ledger entry. Kind and Wallet are fixed at
	// creation and never recomputed.
	Transaction struct {
		ID       int64
		UserID   string
		Category string
		Amount   Money
		Kind     Kind
		Wallet   Wallet
		Date     time.Time
	}
)

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

const (
	WalletDebit   Wallet = "debit"
	WalletCredit  Wallet = "credit"
	WalletVoucher Wallet = "voucher"
	WalletOther   Wallet = "other"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyUserID   = errors.New("empty user id")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidKind   = errors.New("invalid kind")
	ErrUnknownWallet = errors.New("unknown wallet")
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Label returns the Portuguese label used in user-facing messages.
func (k Kind) Label() string {
	if k == KindIncome {
		return "Ganho"
	}
	return "Gasto"
}

func (w Wallet) Valid() bool {
	switch w {
	case WalletDebit, WalletCredit, WalletVoucher, WalletOther:
		return true
	}
	return false
}

// Label returns the Portuguese wallet name used in user-facing messages.
func (w Wallet) Label() string {
	switch w {
	case WalletDebit:
		return "débito"
	case WalletCredit:
		return "crédito"
	case WalletVoucher:
		return "vr"
	default:
		return "outro"
	}
}

// ParseWallet maps a user-supplied wallet name to a Wallet. Portuguese forms
// with or without accents are accepted, and pix counts as debit.
func ParseWallet(s string) (Wallet, error) {
	switch Normalize(s) {
	case "pix", "debito", "debit":
		return WalletDebit, nil
	case "credito", "credit":
		return WalletCredit, nil
	case "vr", "voucher":
		return WalletVoucher, nil
	}
	return "", ErrUnknownWallet
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.UserID) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if !t.Wallet.Valid() {
		return ErrUnknownWallet
	}
	return nil
}
