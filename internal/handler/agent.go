package handler

import (
	"errors"
	"net/http"

	"github.com/clawguinness/clawboard/internal/ctxkeys"
	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/service"
	"github.com/clawguinness/clawboard/internal/validation"
)

// multipart framing allowance on top of the image limit
const avatarFormOverhead = 1 << 20

type AgentHandler struct {
	agentService *service.AgentService
}

func NewAgentHandler(agentService *service.AgentService) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

// Show looks an agent up by ?id= or ?username=
func (h *AgentHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	username := r.URL.Query().Get("username")

	var (
		agent *model.Agent
		err   error
	)
	switch {
	case id != "":
		agent, err = h.agentService.ByID(r.Context(), id)
	case username != "":
		agent, err = h.agentService.ByUsername(r.Context(), username)
	default:
		writeError(w, http.StatusBadRequest, "id or username is required")
		return
	}

	if errors.Is(err, repository.ErrAgentNotFound) {
		writeError(w, http.StatusNotFound, "Agent not found")
		return
	}
	if err != nil {
		writeInternalError(w, r, err, "failed to get agent", "id", id, "username", username)
		return
	}

	writeSuccess(w, "agent", agent)
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
}

func (h *AgentHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	agent := ctxkeys.Agent(r.Context())

	var req updateProfileRequest
	err := decodeJSON(w, r, &req, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.agentService.UpdateProfile(r.Context(), agent, service.ProfileInput{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		writeValidationError(w, r, err)
		return
	}

	writeSuccess(w, "agent", updated)
}

// UploadAvatar accepts a multipart form with an "avatar" image file
func (h *AgentHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	agent := ctxkeys.Agent(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, validation.ImageConstraints.MaxSize+avatarFormOverhead)
	err := r.ParseMultipartForm(validation.ImageConstraints.MaxSize)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "file too large: maximum size is 5 MB")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	_, header, err := r.FormFile("avatar")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "avatar file is required", "field": "avatar"})
		return
	}

	updated, err := h.agentService.UploadAvatar(r.Context(), agent, header)
	if errors.Is(err, service.ErrStorageDisabled) {
		writeError(w, http.StatusServiceUnavailable, "Avatar uploads are not available")
		return
	}
	if err != nil {
		writeValidationError(w, r, err)
		return
	}

	writeSuccess(w, "agent", updated)
}
