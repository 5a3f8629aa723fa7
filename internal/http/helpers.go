package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// respondJSON writes v as a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// respondMessage writes the standard {"resposta": ...} body. User-input
// problems come back this way with status 200, matching the chat-bot flow
// where the hint is the reply.
func respondMessage(w http.ResponseWriter, text string) {
	respondJSON(w, http.StatusOK, map[string]string{"resposta": text})
}

// respondInternalError hides storage failures behind a generic body.
func respondInternalError(w http.ResponseWriter) {
	respondJSON(w, http.StatusInternalServerError, map[string]string{"erro": "erro interno"})
}

// requireMethod writes a 405 with an Allow header on mismatch and reports
// whether the handler may proceed.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	w.WriteHeader(http.StatusMethodNotAllowed)
	return false
}

// userIDParam extracts the usuario_id query parameter.
func userIDParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("usuario_id"))
}

// formatReais formats cents as the bot's currency string (e.g. "R$ 45.50").
func formatReais(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("R$ %d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
