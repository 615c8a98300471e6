package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError mirrors the handler error envelope for responses produced
// before a handler runs
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
