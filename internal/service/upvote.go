package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/validation"
)

var (
	ErrAlreadyUpvoted = errors.New("already upvoted")
)

type UpvoteService struct {
	upvoteRepository repository.UpvoteRepository
}

func NewUpvoteService(upvoteRepository repository.UpvoteRepository) *UpvoteService {
	return &UpvoteService{
		upvoteRepository: upvoteRepository,
	}
}

// Upvote casts the agent's single vote for a target.
func (s *UpvoteService) Upvote(ctx context.Context, agentID, targetType, targetID string) error {
	err := validation.ValidateUpvoteTarget(targetType, targetID)
	if err != nil {
		return err
	}

	added, err := s.upvoteRepository.Add(ctx, agentID, targetType, targetID)
	if errors.Is(err, repository.ErrTargetNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to add upvote: %w", err)
	}

	if !added {
		return ErrAlreadyUpvoted
	}

	return nil
}
