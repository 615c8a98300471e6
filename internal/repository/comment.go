package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/clawguinness/clawboard/internal/ids"
	"github.com/clawguinness/clawboard/internal/model"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidParent   = errors.New("comment must reference exactly one of post or record")
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ByID(ctx context.Context, id string) (*model.Comment, error)
	Comments(ctx context.Context, postID, recordID string) ([]*model.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and, for post comments, bumps the post's
// comment_count in the same transaction. A missing parent writes nothing and
// returns ErrPostNotFound or ErrRecordNotFound.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if (comment.PostID == nil) == (comment.RecordID == nil) {
		return ErrInvalidParent
	}

	comment.ID = ids.New()
	comment.CreatedAt = nowMillis()
	comment.Upvotes = 0

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if comment.PostID != nil {
		result, err := tx.ExecContext(ctx,
			`UPDATE posts SET comment_count = comment_count + 1 WHERE id = $1`,
			*comment.PostID,
		)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrPostNotFound
		}
	} else {
		var count int
		err = tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM records WHERE id = $1`, *comment.RecordID)
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrRecordNotFound
		}
	}

	query := `INSERT INTO comments (id, post_id, record_id, agent_id, content, created_at, upvotes)
	          VALUES ($1, $2, $3, $4, $5, $6, 0)`
	_, err = tx.ExecContext(ctx, query,
		comment.ID,
		comment.PostID,
		comment.RecordID,
		comment.AgentID,
		comment.Content,
		comment.CreatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *commentRepository) ByID(ctx context.Context, id string) (*model.Comment, error) {
	comment := &model.Comment{}
	err := r.db.GetContext(ctx, comment, `SELECT * FROM comments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Comments returns comments matching every non-empty filter, newest first.
func (r *commentRepository) Comments(ctx context.Context, postID, recordID string) ([]*model.Comment, error) {
	var conditions []string
	var args []any

	if postID != "" {
		args = append(args, postID)
		conditions = append(conditions, fmt.Sprintf("post_id = $%d", len(args)))
	}
	if recordID != "" {
		args = append(args, recordID)
		conditions = append(conditions, fmt.Sprintf("record_id = $%d", len(args)))
	}

	query := `SELECT * FROM comments`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	comments := []*model.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, args...)
	if err != nil {
		return nil, err
	}

	return comments, nil
}
