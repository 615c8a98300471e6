package cmd

import (
	"github.com/jmoiron/sqlx"

	"github.com/clawguinness/clawboard/internal/config"
	"github.com/clawguinness/clawboard/internal/db"
)

func openDB(cfg *config.Config) (*sqlx.DB, error) {
	return db.Init(cfg.DBDriver, cfg.DBConnection)
}
