package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/validation"
)

type CommentService struct {
	commentRepository repository.CommentRepository
}

func NewCommentService(commentRepository repository.CommentRepository) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
	}
}

type CommentInput struct {
	PostID   *string
	RecordID *string
	Content  string
}

// Create attaches a comment to exactly one post or record. Missing parents
// surface as repository.ErrPostNotFound / repository.ErrRecordNotFound.
func (s *CommentService) Create(ctx context.Context, agentID string, input CommentInput) (*model.Comment, error) {
	postID := nullableRef(input.PostID)
	recordID := nullableRef(input.RecordID)

	if (postID == nil) == (recordID == nil) {
		return nil, &validation.FieldError{Field: "post_id", Message: "exactly one of post_id or record_id is required"}
	}

	err := validation.ValidateRequired("content", input.Content, validation.MaxCommentLength)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:   postID,
		RecordID: recordID,
		AgentID:  agentID,
		Content:  input.Content,
	}

	err = s.commentRepository.Create(ctx, comment)
	if errors.Is(err, repository.ErrPostNotFound) || errors.Is(err, repository.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (s *CommentService) Comments(ctx context.Context, postID, recordID string) ([]*model.Comment, error) {
	return s.commentRepository.Comments(ctx, postID, recordID)
}
