package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"grana/internal/ledger"
)

type Server struct {
	http.Server
	recorder ledger.Recorder
	scanner  ledger.Scanner
	resetter ledger.Resetter
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server around the injected ledger ports.
func NewServer(addr string, rec ledger.Recorder, sc ledger.Scanner, rs ledger.Resetter) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		recorder: rec,
		scanner:  sc,
		resetter: rs,
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/processar", s.withRequestLog(s.handleProcessMessage))
	mux.HandleFunc("/relatorio/mensal", s.withRequestLog(s.handleMonthlyReport))
	mux.HandleFunc("/relatorio/categorias", s.withRequestLog(s.handleCategoryReport))
	mux.HandleFunc("/reset_usuario", s.withRequestLog(s.handleResetUser))
	mux.HandleFunc("/saldo", s.withRequestLog(s.handleOverallBalance))
	mux.HandleFunc("/carteira/adicionar", s.withRequestLog(s.handleWalletAdd))
	mux.HandleFunc("/carteira/remover", s.withRequestLog(s.handleWalletRemove))
	mux.HandleFunc("/carteira/saldo", s.withRequestLog(s.handleWalletBalance))

	return s
}

// withRequestLog adds security headers and request logging with a per-request
// id attached to the context.
func (s *Server) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Extract client IP (considering proxies)
		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
