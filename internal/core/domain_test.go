package core

import "testing"

func TestParseWallet(t *testing.T) {
	cases := []struct {
		in   string
		want Wallet
		ok   bool
	}{
		{"debito", WalletDebit, true},
		{"Débito", WalletDebit, true},
		{"pix", WalletDebit, true},
		{"credito", WalletCredit, true},
		{"CRÉDITO", WalletCredit, true},
		{"vr", WalletVoucher, true},
		{" vr ", WalletVoucher, true},
		{"dinheiro", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseWallet(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseWallet(%q) error = %v", tc.in, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseWallet(%q) = %v, want %v", tc.in, got, tc.want)
			}
		} else if err == nil {
			t.Errorf("ParseWallet(%q) expected error", tc.in)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		UserID:   "u1",
		Category: "mercado",
		Amount:   Money{Cents: 100},
		Kind:     KindExpense,
		Wallet:   WalletDebit,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{UserID: "", Category: "c", Amount: Money{Cents: 1}, Kind: KindExpense, Wallet: WalletDebit},
		{UserID: "u", Category: "  ", Amount: Money{Cents: 1}, Kind: KindExpense, Wallet: WalletDebit},
		{UserID: "u", Category: "c", Amount: Money{Cents: 0}, Kind: KindExpense, Wallet: WalletDebit},
		{UserID: "u", Category: "c", Amount: Money{Cents: 1}, Kind: "weird", Wallet: WalletDebit},
		{UserID: "u", Category: "c", Amount: Money{Cents: 1}, Kind: KindExpense, Wallet: "carteira"},
	}
	for i, b := range bads {
		if err := b.Validate(); err == nil {
			t.Errorf("case %d expected error", i)
		}
	}
}

func TestKindLabel(t *testing.T) {
	if KindIncome.Label() != "Ganho" || KindExpense.Label() != "Gasto" {
		t.Fatalf("unexpected kind labels: %q %q", KindIncome.Label(), KindExpense.Label())
	}
}

func TestWalletLabel(t *testing.T) {
	cases := map[Wallet]string{
		WalletDebit:   "débito",
		WalletCredit:  "crédito",
		WalletVoucher: "vr",
		WalletOther:   "outro",
	}
	for w, want := range cases {
		if got := w.Label(); got != want {
			t.Errorf("%v.Label() = %q, want %q", w, got, want)
		}
	}
}
