package core

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidFormat reports a message that does not match
// "<categoria> <forma de pagamento> <valor>".
var ErrInvalidFormat = errors.New("invalid message format")

// messagePattern admits a category text, one of the known payment keywords
// and a decimal amount with optional comma or dot separator.
var messagePattern = regexp.MustCompile(`(?i)^\s*(.+?)\s+(pix|d[eé]bito|cr[eé]dito|vr)\s+(\d+(?:[.,]\d+)?)\s*$`)

// ParsedMessage is the raw extraction from one text line, before the category
// is classified.
type ParsedMessage struct {
	Category string
	Wallet   Wallet
	Amount   Money
}

// ParseMessage extracts category, payment method and amount from a free-text
// line like "Comida credito 100" or "Gas pix 45,50". The payment keyword is
// normalized into a Wallet; pix and debito both land in the debit wallet.
func ParseMessage(text string) (ParsedMessage, error) {
	m := messagePattern.FindStringSubmatch(text)
	if m == nil {
		return ParsedMessage{}, ErrInvalidFormat
	}
	cents, err := ParseDecimalToCents(m[3])
	if err != nil {
		return ParsedMessage{}, ErrInvalidFormat
	}
	return ParsedMessage{
		Category: strings.TrimSpace(m[1]),
		Wallet:   walletForKeyword(Normalize(m[2])),
		Amount:   Money{Cents: cents},
	}, nil
}

// walletForKeyword maps a normalized payment keyword to its wallet. The
// pattern only admits the enumerated keywords, so the default arm is a
// formality.
func walletForKeyword(kw string) Wallet {
	switch kw {
	case "pix", "debito":
		return WalletDebit
	case "credito":
		return WalletCredit
	case "vr":
		return WalletVoucher
	default:
		return WalletOther
	}
}
