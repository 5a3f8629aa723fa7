package core

// MonthSummary holds the aggregate totals for one user and month.
type MonthSummary struct {
	Income  Money
	Expense Money
	Balance Money
}

// Balance returns income minus expense over the given transactions.
func Balance(txs []Transaction) Money {
	var cents int64
	for _, t := range txs {
		if t.Kind == KindIncome {
			cents += t.Amount.Cents
		} else {
			cents -= t.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// Summarize totals income and expense separately and their difference.
func Summarize(txs []Transaction) MonthSummary {
	var s MonthSummary
	for _, t := range txs {
		if t.Kind == KindIncome {
			s.Income.Cents += t.Amount.Cents
		} else {
			s.Expense.Cents += t.Amount.Cents
		}
	}
	s.Balance.Cents = s.Income.Cents - s.Expense.Cents
	return s
}

// ExpensesByCategory sums expense amounts grouped by category label.
// Income transactions are ignored.
func ExpensesByCategory(txs []Transaction) map[string]Money {
	out := make(map[string]Money)
	for _, t := range txs {
		if t.Kind != KindExpense {
			continue
		}
		m := out[t.Category]
		m.Cents += t.Amount.Cents
		out[t.Category] = m
	}
	return out
}

// WalletBalances computes the balance of each wallet bucket over the given
// transactions, covering debit, credit and voucher even when empty.
func WalletBalances(txs []Transaction) map[Wallet]Money {
	out := map[Wallet]Money{
		WalletDebit:   {},
		WalletCredit:  {},
		WalletVoucher: {},
	}
	for _, t := range txs {
		m, ok := out[t.Wallet]
		if !ok {
			continue
		}
		if t.Kind == KindIncome {
			m.Cents += t.Amount.Cents
		} else {
			m.Cents -= t.Amount.Cents
		}
		out[t.Wallet] = m
	}
	return out
}
