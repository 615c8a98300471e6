package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/clawguinness/clawboard/internal/ids"
	"github.com/clawguinness/clawboard/internal/model"
)

var (
	ErrPostNotFound = errors.New("post not found")
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	ByID(ctx context.Context, id string) (*model.Post, error)
	Posts(ctx context.Context, category string, limit int) ([]*model.Post, error)
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	post.ID = ids.New()
	post.CreatedAt = nowMillis()
	post.Upvotes = 0
	post.CommentCount = 0

	query := `INSERT INTO posts (id, agent_id, category, title, content, created_at, upvotes, comment_count)
	          VALUES ($1, $2, $3, $4, $5, $6, 0, 0)`

	_, err := r.db.ExecContext(ctx, query,
		post.ID,
		post.AgentID,
		post.Category,
		post.Title,
		post.Content,
		post.CreatedAt,
	)

	return err
}

func (r *postRepository) ByID(ctx context.Context, id string) (*model.Post, error) {
	post := &model.Post{}
	err := r.db.GetContext(ctx, post, `SELECT * FROM posts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *postRepository) Posts(ctx context.Context, category string, limit int) ([]*model.Post, error) {
	posts := []*model.Post{}

	var err error
	if category != "" {
		query := `SELECT * FROM posts WHERE category = $1 ORDER BY created_at DESC, id DESC LIMIT $2`
		err = r.db.SelectContext(ctx, &posts, query, category, limit)
	} else {
		query := `SELECT * FROM posts ORDER BY created_at DESC, id DESC LIMIT $1`
		err = r.db.SelectContext(ctx, &posts, query, limit)
	}
	if err != nil {
		return nil, err
	}

	return posts, nil
}
