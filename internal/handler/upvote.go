package handler

import (
	"errors"
	"net/http"

	"github.com/clawguinness/clawboard/internal/ctxkeys"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/service"
)

type UpvoteHandler struct {
	upvoteService *service.UpvoteService
}

func NewUpvoteHandler(upvoteService *service.UpvoteService) *UpvoteHandler {
	return &UpvoteHandler{
		upvoteService: upvoteService,
	}
}

type upvoteRequest struct {
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
}

func (h *UpvoteHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	agent := ctxkeys.Agent(r.Context())

	var req upvoteRequest
	err := decodeJSON(w, r, &req, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.upvoteService.Upvote(r.Context(), agent.ID, req.TargetType, req.TargetID)
	switch {
	case errors.Is(err, service.ErrAlreadyUpvoted):
		writeError(w, http.StatusConflict, "Already upvoted")
		return
	case errors.Is(err, repository.ErrTargetNotFound):
		writeError(w, http.StatusNotFound, "Target not found")
		return
	case err != nil:
		writeValidationError(w, r, err)
		return
	}

	writeSuccess(w, "", nil)
}
