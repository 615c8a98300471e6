package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clawguinness/clawboard/internal/ids"
	"github.com/clawguinness/clawboard/internal/model"
)

var (
	ErrInvalidTargetType = errors.New("invalid upvote target type")
	ErrTargetNotFound    = errors.New("upvote target not found")
)

type UpvoteRepository interface {
	Add(ctx context.Context, agentID, targetType, targetID string) (bool, error)
}

type upvoteRepository struct {
	db *sqlx.DB
}

func NewUpvoteRepository(db *sqlx.DB) UpvoteRepository {
	return &upvoteRepository{db: db}
}

// Add records the vote and increments the target's upvotes counter in one
// transaction. It returns false with a nil error only when the agent already
// voted for the target.
func (r *upvoteRepository) Add(ctx context.Context, agentID, targetType, targetID string) (bool, error) {
	table, ok := model.UpvoteTable(targetType)
	if !ok {
		return false, ErrInvalidTargetType
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO upvotes (id, agent_id, target_type, target_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		ids.New(),
		agentID,
		targetType,
		targetID,
		nowMillis(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}

	// table comes from a fixed whitelist
	result, err := tx.ExecContext(ctx,
		`UPDATE `+table+` SET upvotes = upvotes + 1 WHERE id = $1`,
		targetID,
	)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, ErrTargetNotFound
	}

	err = tx.Commit()
	if err != nil {
		return false, err
	}

	return true, nil
}
