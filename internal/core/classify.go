package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// incomeCategories are the labels treated as money coming in.
var incomeCategories = map[string]struct{}{
	"salario":   {},
	"receita":   {},
	"pagamento": {},
	"ganho":     {},
	"deposito":  {},
}

// expenseCategories documents the labels users typically send for money going
// out. Classification does not consult it: anything outside the income set is
// an expense.
var expenseCategories = []string{
	"gasto", "despesa", "saque", "combustivel", "internet", "carro",
	"faculdade", "aluguel", "condominio", "iptu", "supermercado", "farmacia",
	"plano de saude", "material escolar", "celular", "tv por assinatura",
	"lazer", "cinema", "restaurante", "passeio", "vestuario", "presentes",
	"seguro", "estacionamento", "transporte publico", "manutencao", "ipva",
	"barbearia", "happy hour", "viagem",
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize trims, lowercases and strips diacritics ("Crédito" -> "credito").
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		return s
	}
	return out
}

// Classify maps a free-text category label to a Kind. It is total over all
// strings: labels outside the income set fall through to expense.
func Classify(category string) Kind {
	if _, ok := incomeCategories[Normalize(category)]; ok {
		return KindIncome
	}
	return KindExpense
}
