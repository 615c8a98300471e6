package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/validation"
)

type PostService struct {
	postRepository repository.PostRepository
}

func NewPostService(postRepository repository.PostRepository) *PostService {
	return &PostService{
		postRepository: postRepository,
	}
}

type PostInput struct {
	Category string
	Title    string
	Content  string
}

// Create publishes a post. A blank category falls back to general.
func (s *PostService) Create(ctx context.Context, agentID string, input PostInput) (*model.Post, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = model.PostCategoryGeneral
	}

	err := validation.ValidateRequired("category", category, validation.MaxCategoryLength)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateRequired("title", input.Title, validation.MaxTitleLength)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateRequired("content", input.Content, validation.MaxPostLength)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		AgentID:  agentID,
		Category: category,
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
	}

	err = s.postRepository.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s *PostService) Posts(ctx context.Context, category string, limit int) ([]*model.Post, error) {
	return s.postRepository.Posts(ctx, category, limit)
}

func (s *PostService) ByID(ctx context.Context, id string) (*model.Post, error) {
	return s.postRepository.ByID(ctx, id)
}
