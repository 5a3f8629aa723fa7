package core

import "testing"

func tx(kind Kind, wallet Wallet, category string, cents int64) Transaction {
	return Transaction{
		UserID:   "u1",
		Category: category,
		Amount:   Money{Cents: cents},
		Kind:     kind,
		Wallet:   wallet,
	}
}

func TestBalance(t *testing.T) {
	txs := []Transaction{
		tx(KindIncome, WalletDebit, "salario", 250000),
		tx(KindExpense, WalletDebit, "mercado", 15000),
		tx(KindExpense, WalletCredit, "internet", 9900),
	}
	if got := Balance(txs).Cents; got != 225100 {
		t.Fatalf("Balance = %d, want 225100", got)
	}
	if got := Balance(nil).Cents; got != 0 {
		t.Fatalf("Balance(nil) = %d, want 0", got)
	}
}

func TestBalanceAdditive(t *testing.T) {
	a := []Transaction{
		tx(KindIncome, WalletDebit, "salario", 100000),
		tx(KindExpense, WalletDebit, "aluguel", 40000),
	}
	b := []Transaction{
		tx(KindExpense, WalletCredit, "mercado", 12345),
		tx(KindIncome, WalletVoucher, "deposito", 5000),
	}
	union := append(append([]Transaction{}, a...), b...)
	if Balance(union).Cents != Balance(a).Cents+Balance(b).Cents {
		t.Fatalf("balance not additive over disjoint sets")
	}
}

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		tx(KindIncome, WalletDebit, "salario", 200000),
		tx(KindExpense, WalletDebit, "mercado", 30000),
		tx(KindExpense, WalletCredit, "lazer", 5000),
	}
	s := Summarize(txs)
	if s.Income.Cents != 200000 {
		t.Errorf("Income = %d, want 200000", s.Income.Cents)
	}
	if s.Expense.Cents != 35000 {
		t.Errorf("Expense = %d, want 35000", s.Expense.Cents)
	}
	if s.Balance.Cents != 165000 {
		t.Errorf("Balance = %d, want 165000", s.Balance.Cents)
	}
}

func TestExpensesByCategory(t *testing.T) {
	txs := []Transaction{
		tx(KindExpense, WalletDebit, "mercado", 10000),
		tx(KindExpense, WalletCredit, "mercado", 5000),
		tx(KindExpense, WalletDebit, "lazer", 3000),
		tx(KindIncome, WalletDebit, "salario", 200000), // ignored
	}
	got := ExpensesByCategory(txs)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if got["mercado"].Cents != 15000 {
		t.Errorf("mercado = %d, want 15000", got["mercado"].Cents)
	}
	if got["lazer"].Cents != 3000 {
		t.Errorf("lazer = %d, want 3000", got["lazer"].Cents)
	}
}

func TestWalletBalances(t *testing.T) {
	txs := []Transaction{
		tx(KindIncome, WalletVoucher, "saldo_inicial", 5000),
		tx(KindExpense, WalletVoucher, "ajuste_saldo", 2000),
		tx(KindIncome, WalletDebit, "salario", 100000),
		tx(KindExpense, WalletOther, "x", 999), // outside the three buckets
	}
	got := WalletBalances(txs)
	if got[WalletVoucher].Cents != 3000 {
		t.Errorf("voucher = %d, want 3000", got[WalletVoucher].Cents)
	}
	if got[WalletDebit].Cents != 100000 {
		t.Errorf("debit = %d, want 100000", got[WalletDebit].Cents)
	}
	if got[WalletCredit].Cents != 0 {
		t.Errorf("credit = %d, want 0", got[WalletCredit].Cents)
	}
	if _, ok := got[WalletOther]; ok {
		t.Errorf("other wallet should not appear in balances")
	}
}
