package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"grana/internal/core"
	"grana/internal/ledger"
)

const (
	hintMissingUser   = "Informe o usuario_id."
	hintInvalidFormat = "Formato inválido. Use: Categoria FormaPagamento Valor (ex: Mercado debito 150,50)"
	hintInvalidWallet = "Carteira inválida. Use: debito, credito ou vr."
	hintInvalidAmount = "Valor inválido."
)

// Synthetic categories used by the wallet adjustment endpoints.
const (
	categoryInitialBalance = "saldo_inicial"
	categoryBalanceAdjust  = "ajuste_saldo"
)

type processRequest struct {
	Texto     string `json:"texto"`
	UsuarioID string `json:"usuario_id"`
}

type monthlyReportResponse struct {
	Ganhos float64 `json:"ganhos"`
	Gastos float64 `json:"gastos"`
	Saldo  float64 `json:"saldo"`
}

type walletBalancesResponse struct {
	Saldos map[string]float64 `json:"saldos"`
}

// handleProcessMessage parses a free-text money message, classifies the
// category, records the transaction and answers with the running balance of
// the wallet it landed in.
func (s *Server) handleProcessMessage(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, hintInvalidFormat)
		return
	}
	if req.UsuarioID == "" {
		respondMessage(w, hintMissingUser)
		return
	}

	parsed, err := core.ParseMessage(req.Texto)
	if err != nil {
		respondMessage(w, hintInvalidFormat)
		return
	}

	kind := core.Classify(parsed.Category)
	tx := core.Transaction{
		UserID:   req.UsuarioID,
		Category: parsed.Category,
		Amount:   parsed.Amount,
		Kind:     kind,
		Wallet:   parsed.Wallet,
	}

	stored, err := s.recorder.Record(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Record transaction error", "error", err, "user_id", req.UsuarioID)
		respondInternalError(w)
		return
	}

	txs, err := s.scanner.Scan(r.Context(), ledger.Filter{UserID: req.UsuarioID, Wallet: stored.Wallet})
	if err != nil {
		slog.ErrorContext(r.Context(), "Wallet balance scan error", "error", err, "user_id", req.UsuarioID)
		respondInternalError(w)
		return
	}
	balance := core.Balance(txs)

	respondMessage(w, stored.Kind.Label()+" registrado! Saldo atual na carteira "+
		stored.Wallet.Label()+": "+formatReais(balance.Cents))
}

// handleMonthlyReport answers income, expense and balance totals for the
// current month.
func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	userID := userIDParam(r)
	if userID == "" {
		respondMessage(w, hintMissingUser)
		return
	}

	now := time.Now()
	txs, err := s.scanner.Scan(r.Context(), ledger.Filter{
		UserID: userID,
		Month:  int(now.Month()),
		Year:   now.Year(),
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Monthly report scan error", "error", err, "user_id", userID)
		respondInternalError(w)
		return
	}

	summary := core.Summarize(txs)
	respondJSON(w, http.StatusOK, monthlyReportResponse{
		Ganhos: summary.Income.Reais(),
		Gastos: summary.Expense.Reais(),
		Saldo:  summary.Balance.Reais(),
	})
}

// handleCategoryReport answers the expense total per category label.
func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	userID := userIDParam(r)
	if userID == "" {
		respondMessage(w, hintMissingUser)
		return
	}

	txs, err := s.scanner.Scan(r.Context(), ledger.Filter{UserID: userID, Kind: core.KindExpense})
	if err != nil {
		slog.ErrorContext(r.Context(), "Category report scan error", "error", err, "user_id", userID)
		respondInternalError(w)
		return
	}

	totals := make(map[string]float64)
	for category, amount := range core.ExpensesByCategory(txs) {
		totals[category] = amount.Reais()
	}
	respondJSON(w, http.StatusOK, totals)
}

// handleResetUser removes every record for the user. Irreversible.
func (s *Server) handleResetUser(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	userID := userIDParam(r)
	if userID == "" {
		respondMessage(w, hintMissingUser)
		return
	}

	if err := s.resetter.DeleteAllForUser(r.Context(), userID); err != nil {
		slog.ErrorContext(r.Context(), "Reset user error", "error", err, "user_id", userID)
		respondInternalError(w)
		return
	}

	respondMessage(w, "Todos os registros do usuário foram removidos.")
}

// handleOverallBalance answers the balance of each wallet bucket.
func (s *Server) handleOverallBalance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	userID := userIDParam(r)
	if userID == "" {
		respondMessage(w, hintMissingUser)
		return
	}

	txs, err := s.scanner.Scan(r.Context(), ledger.Filter{UserID: userID})
	if err != nil {
		slog.ErrorContext(r.Context(), "Overall balance scan error", "error", err, "user_id", userID)
		respondInternalError(w)
		return
	}

	balances := core.WalletBalances(txs)
	respondJSON(w, http.StatusOK, walletBalancesResponse{Saldos: map[string]float64{
		"debito":  balances[core.WalletDebit].Reais(),
		"credito": balances[core.WalletCredit].Reais(),
		"vr":      balances[core.WalletVoucher].Reais(),
	}})
}

func (s *Server) handleWalletAdd(w http.ResponseWriter, r *http.Request) {
	s.handleWalletAdjust(w, r, core.KindIncome)
}

func (s *Server) handleWalletRemove(w http.ResponseWriter, r *http.Request) {
	s.handleWalletAdjust(w, r, core.KindExpense)
}

// handleWalletAdjust records a synthetic income or expense against one
// wallet, used to seed or correct balances.
func (s *Server) handleWalletAdjust(w http.ResponseWriter, r *http.Request, kind core.Kind) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	userID := userIDParam(r)
	if userID == "" {
		respondMessage(w, hintMissingUser)
		return
	}

	wallet, err := core.ParseWallet(r.URL.Query().Get("carteira"))
	if err != nil {
		respondMessage(w, hintInvalidWallet)
		return
	}

	cents, err := core.ParseDecimalToCents(r.URL.Query().Get("valor"))
	if err != nil {
		respondMessage(w, hintInvalidAmount)
		return
	}

	category := categoryInitialBalance
	verb := "adicionado à"
	if kind == core.KindExpense {
		category = categoryBalanceAdjust
		verb = "removido da"
	}

	tx := core.Transaction{
		UserID:   userID,
		Category: category,
		Amount:   core.Money{Cents: cents},
		Kind:     kind,
		Wallet:   wallet,
	}
	if _, err := s.recorder.Record(r.Context(), tx); err != nil {
		slog.ErrorContext(r.Context(), "Wallet adjust error", "error", err, "user_id", userID, "wallet", string(wallet))
		respondInternalError(w)
		return
	}

	respondMessage(w, "Saldo de "+formatReais(cents)+" "+verb+" carteira "+wallet.Label()+".")
}

// handleWalletBalance answers the balance of a single wallet.
func (s *Server) handleWalletBalance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	userID := userIDParam(r)
	if userID == "" {
		respondMessage(w, hintMissingUser)
		return
	}

	wallet, err := core.ParseWallet(r.URL.Query().Get("carteira"))
	if err != nil {
		respondMessage(w, hintInvalidWallet)
		return
	}

	txs, err := s.scanner.Scan(r.Context(), ledger.Filter{UserID: userID, Wallet: wallet})
	if err != nil {
		slog.ErrorContext(r.Context(), "Wallet balance scan error", "error", err, "user_id", userID)
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]float64{"saldo": core.Balance(txs).Reais()})
}
