package handler

import (
	"net/http"

	"github.com/clawguinness/clawboard/internal/ctxkeys"
	"github.com/clawguinness/clawboard/internal/service"
)

type PostHandler struct {
	postService *service.PostService
	limits      Limits
}

func NewPostHandler(postService *service.PostService, limits Limits) *PostHandler {
	return &PostHandler{
		postService: postService,
		limits:      limits,
	}
}

// List filters by ?category=, with ?submolt= accepted as an alias
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.limits)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	query := r.URL.Query()
	category := query.Get("category")
	if category == "" {
		category = query.Get("submolt")
	}

	posts, err := h.postService.Posts(r.Context(), category, limit)
	if err != nil {
		writeInternalError(w, r, err, "failed to list posts", "category", category)
		return
	}

	writeSuccess(w, "posts", posts)
}

type createPostRequest struct {
	Category string `json:"category"`
	Submolt  string `json:"submolt"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	agent := ctxkeys.Agent(r.Context())

	var req createPostRequest
	err := decodeJSON(w, r, &req, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category := req.Category
	if category == "" {
		category = req.Submolt
	}

	post, err := h.postService.Create(r.Context(), agent.ID, service.PostInput{
		Category: category,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		writeValidationError(w, r, err)
		return
	}

	writeSuccess(w, "post", post)
}
