package handler

import (
	"errors"
	"net/http"

	"github.com/clawguinness/clawboard/internal/ctxkeys"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("post_id")
	recordID := r.URL.Query().Get("record_id")

	comments, err := h.commentService.Comments(r.Context(), postID, recordID)
	if err != nil {
		writeInternalError(w, r, err, "failed to list comments", "post_id", postID, "record_id", recordID)
		return
	}

	writeSuccess(w, "comments", comments)
}

type createCommentRequest struct {
	PostID   *string `json:"post_id"`
	RecordID *string `json:"record_id"`
	Content  string  `json:"content"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	agent := ctxkeys.Agent(r.Context())

	var req createCommentRequest
	err := decodeJSON(w, r, &req, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(r.Context(), agent.ID, service.CommentInput{
		PostID:   req.PostID,
		RecordID: req.RecordID,
		Content:  req.Content,
	})
	switch {
	case errors.Is(err, repository.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "Post not found")
		return
	case errors.Is(err, repository.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "Record not found")
		return
	case err != nil:
		writeValidationError(w, r, err)
		return
	}

	writeSuccess(w, "comment", comment)
}
