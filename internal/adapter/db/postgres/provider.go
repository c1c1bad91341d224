package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	userusecase "tcp-user-service/internal/usecase/user"
	"tcp-user-service/pkg/logger"
)

// DialProvider opens a fresh database connection on every Acquire and
// closes it on release. This is the per-request connection model; swap in
// SharedProvider to reuse a pooled handle without touching handler logic.
type DialProvider struct {
	dsn string
	log *zap.Logger
}

// NewDialProvider creates a provider that dials the given Postgres DSN.
func NewDialProvider(dsn string, log *zap.Logger) *DialProvider {
	return &DialProvider{dsn: dsn, log: log}
}

// Acquire opens a connection and returns a repository bound to it. The
// release func closes the underlying connection.
func (p *DialProvider) Acquire(ctx context.Context) (userusecase.Repository, func(), error) {
	db, err := Open(p.dsn, p.log)
	if err != nil {
		return nil, nil, err
	}

	release := func() {
		sqlDB, err := db.DB()
		if err != nil {
			p.log.Warn("failed to get underlying sql.DB on release", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			p.log.Warn("failed to close store connection", zap.Error(err))
		}
	}

	return NewUserRepoPG(db.WithContext(ctx), p.log), release, nil
}

// SharedProvider hands out repositories over a single long-lived handle.
// Release is a no-op; the handle's own pool governs connection reuse.
type SharedProvider struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewSharedProvider wraps an already-open gorm handle.
func NewSharedProvider(db *gorm.DB, log *zap.Logger) *SharedProvider {
	return &SharedProvider{db: db, log: log}
}

// Acquire returns a repository bound to the shared handle.
func (p *SharedProvider) Acquire(ctx context.Context) (userusecase.Repository, func(), error) {
	return NewUserRepoPG(p.db.WithContext(ctx), p.log), func() {}, nil
}

// Open dials Postgres with the gorm zap logger bridge attached.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
