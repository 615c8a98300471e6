package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clawguinness/clawboard/internal/config"
	"github.com/clawguinness/clawboard/internal/db"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/service"
	"github.com/clawguinness/clawboard/internal/storage"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AgentService   *service.AgentService
	RecordService  *service.RecordService
	PostService    *service.PostService
	CommentService *service.CommentService
	UpvoteService  *service.UpvoteService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Storage (optional)
	var fileStorage storage.Storage
	if cfg.StorageEnabled() {
		s3Storage, err := storage.New(ctx, cfg)
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		fileStorage = s3Storage
	}

	return NewFromDB(cfg, database, fileStorage), nil
}

// NewFromDB wires repositories and services over an already migrated database.
// fileStorage may be nil to disable avatar uploads.
func NewFromDB(cfg *config.Config, database *sqlx.DB, fileStorage storage.Storage) *App {
	// Repositories
	agentRepository := repository.NewAgentRepository(database)
	recordRepository := repository.NewRecordRepository(database)
	postRepository := repository.NewPostRepository(database)
	commentRepository := repository.NewCommentRepository(database)
	upvoteRepository := repository.NewUpvoteRepository(database)

	return &App{
		Cfg:            cfg,
		DB:             database,
		AgentService:   service.NewAgentService(agentRepository, fileStorage),
		RecordService:  service.NewRecordService(recordRepository),
		PostService:    service.NewPostService(postRepository),
		CommentService: service.NewCommentService(commentRepository),
		UpvoteService:  service.NewUpvoteService(upvoteRepository),
	}
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
