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
	ErrRecordNotFound = errors.New("record not found")
)

type RecordRepository interface {
	Create(ctx context.Context, record *model.Record) error
	ByID(ctx context.Context, id string) (*model.Record, error)
	Records(ctx context.Context, category string, limit int) ([]*model.Record, error)
}

type recordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) RecordRepository {
	return &recordRepository{db: db}
}

// Create inserts an unverified record with zero upvotes.
func (r *recordRepository) Create(ctx context.Context, record *model.Record) error {
	record.ID = ids.New()
	record.CreatedAt = nowMillis()
	record.Verified = 0
	record.Upvotes = 0

	query := `INSERT INTO records (id, agent_id, category, title, description, value, unit, verified, proof_url, created_at, upvotes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, 0)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.AgentID,
		record.Category,
		record.Title,
		record.Description,
		record.Value,
		record.Unit,
		record.ProofURL,
		record.CreatedAt,
	)

	return err
}

func (r *recordRepository) ByID(ctx context.Context, id string) (*model.Record, error) {
	record := &model.Record{}
	err := r.db.GetContext(ctx, record, `SELECT * FROM records WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Records returns the newest records first, filtered by exact category when one is given.
func (r *recordRepository) Records(ctx context.Context, category string, limit int) ([]*model.Record, error) {
	records := []*model.Record{}

	var err error
	if category != "" {
		query := `SELECT * FROM records WHERE category = $1 ORDER BY created_at DESC, id DESC LIMIT $2`
		err = r.db.SelectContext(ctx, &records, query, category, limit)
	} else {
		query := `SELECT * FROM records ORDER BY created_at DESC, id DESC LIMIT $1`
		err = r.db.SelectContext(ctx, &records, query, limit)
	}
	if err != nil {
		return nil, err
	}

	return records, nil
}
