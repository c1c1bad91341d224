package infrastructure

import (
	"fmt"

	"go.uber.org/zap"

	"tcp-user-service/internal/adapter/db/postgres"
	"tcp-user-service/internal/config"
)

// BootstrapDatabase opens a one-shot connection, creates the users table
// if it does not exist, and closes the connection again. Runs once at
// startup; failure is fatal to the process.
func BootstrapDatabase(cfg *config.Config, l *zap.Logger) error {
	db, err := postgres.Open(cfg.DB.URL, l)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			l.Warn("failed to get underlying sql.DB", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			l.Warn("failed to close bootstrap connection", zap.Error(err))
		}
	}()

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	l.Info("database schema ready")
	return nil
}
