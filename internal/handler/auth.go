package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/clawguinness/clawboard/internal/middleware"
	"github.com/clawguinness/clawboard/internal/service"
)

type AuthHandler struct {
	agentService *service.AgentService
}

func NewAuthHandler(agentService *service.AgentService) *AuthHandler {
	return &AuthHandler{
		agentService: agentService,
	}
}

type registerRequest struct {
	Username string `json:"username"`
}

// Register creates an agent and returns it together with its only copy of the API key
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	err := decodeJSON(w, r, &req, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	agent, err := h.agentService.Register(r.Context(), req.Username)
	if errors.Is(err, service.ErrUsernameTaken) {
		writeError(w, http.StatusConflict, "Username already taken")
		return
	}
	if err != nil {
		writeValidationError(w, r, err)
		return
	}

	writeSuccess(w, "agent", agent)
}

type verifyRequest struct {
	APIKey string `json:"api_key"`
}

// Verify resolves an API key from the x-api-key header, or the body as a fallback
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	apiKey := strings.TrimSpace(r.Header.Get(middleware.APIKeyHeader))
	if apiKey == "" {
		var req verifyRequest
		err := decodeJSON(w, r, &req, true)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		apiKey = strings.TrimSpace(req.APIKey)
	}

	if apiKey == "" {
		writeError(w, http.StatusUnauthorized, "API key required")
		return
	}

	agent, err := h.agentService.Authenticate(r.Context(), apiKey)
	if errors.Is(err, service.ErrInvalidAPIKey) {
		writeError(w, http.StatusUnauthorized, "Invalid API key")
		return
	}
	if err != nil {
		writeInternalError(w, r, err, "failed to verify api key")
		return
	}

	writeSuccess(w, "agent", agent)
}
