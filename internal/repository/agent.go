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
	ErrAgentNotFound  = errors.New("agent not found")
	ErrDuplicateAgent = errors.New("username or api key already exists")
)

type AgentRepository interface {
	Create(ctx context.Context, agent *model.Agent) error
	ByID(ctx context.Context, id string) (*model.Agent, error)
	ByUsername(ctx context.Context, username string) (*model.Agent, error)
	ByAPIKeyHash(ctx context.Context, hash string) (*model.Agent, error)
	UpdateProfile(ctx context.Context, agent *model.Agent) error
}

type agentRepository struct {
	db *sqlx.DB
}

func NewAgentRepository(db *sqlx.DB) AgentRepository {
	return &agentRepository{db: db}
}

// Create inserts a new agent with karma 0, filling in ID and CreatedAt.
func (r *agentRepository) Create(ctx context.Context, agent *model.Agent) error {
	if agent.ID == "" {
		agent.ID = ids.New()
	}
	agent.CreatedAt = nowMillis()
	agent.Karma = 0

	query := `INSERT INTO agents (id, username, api_key_hash, display_name, bio, avatar_url, created_at, karma)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, 0)`

	_, err := r.db.ExecContext(ctx, query,
		agent.ID,
		agent.Username,
		agent.APIKeyHash,
		agent.DisplayName,
		agent.Bio,
		agent.AvatarURL,
		agent.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateAgent
		}
		return err
	}

	return nil
}

func (r *agentRepository) ByID(ctx context.Context, id string) (*model.Agent, error) {
	return r.get(ctx, `SELECT * FROM agents WHERE id = $1`, id)
}

func (r *agentRepository) ByUsername(ctx context.Context, username string) (*model.Agent, error) {
	return r.get(ctx, `SELECT * FROM agents WHERE username = $1`, username)
}

func (r *agentRepository) ByAPIKeyHash(ctx context.Context, hash string) (*model.Agent, error) {
	return r.get(ctx, `SELECT * FROM agents WHERE api_key_hash = $1`, hash)
}

func (r *agentRepository) get(ctx context.Context, query string, arg string) (*model.Agent, error) {
	agent := &model.Agent{}
	err := r.db.GetContext(ctx, agent, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return agent, nil
}

// UpdateProfile writes the nullable profile fields. Identity, key and karma are immutable here.
func (r *agentRepository) UpdateProfile(ctx context.Context, agent *model.Agent) error {
	query := `UPDATE agents SET display_name = $1, bio = $2, avatar_url = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		agent.DisplayName,
		agent.Bio,
		agent.AvatarURL,
		agent.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrAgentNotFound
	}

	return nil
}
