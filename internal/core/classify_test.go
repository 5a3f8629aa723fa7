package core

import "testing"

func TestClassifyIncomeKeywords(t *testing.T) {
	cases := []string{
		"salario", "Salario", "SALARIO", "salário", "Salário",
		"receita", "Receita",
		"pagamento", "PAGAMENTO",
		"ganho",
		"deposito", "depósito", " deposito ",
	}
	for _, c := range cases {
		if got := Classify(c); got != KindIncome {
			t.Errorf("Classify(%q) = %v, want income", c, got)
		}
	}
}

func TestClassifyDefaultsToExpense(t *testing.T) {
	cases := []string{
		"gasto", "supermercado", "Comida", "xyz", "", "   ",
		"salario extra", // not an exact income keyword
		"aluguel",
	}
	for _, c := range cases {
		if got := Classify(c); got != KindExpense {
			t.Errorf("Classify(%q) = %v, want expense", c, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Crédito ", "credito"},
		{"DÉBITO", "debito"},
		{"salário", "salario"},
		{"vr", "vr"},
		{"ação", "acao"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
