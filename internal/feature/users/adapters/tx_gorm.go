// Package adapters provides the gorm-backed repository implementations for the users feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"user_backend/internal/feature/users/usecase"
)

// txKey is the context key under which an open transaction handle travels.
type txKey struct{}

// gormTxManager implements the TxManager interface on top of gorm transactions.
// The transaction handle is scoped through the context so that repositories
// sharing the same base connection participate transparently.
type gormTxManager struct {
	db *gorm.DB
}

var _ usecase.TxManager = (*gormTxManager)(nil)

// NewGormTxManager creates a new transaction manager for the given connection.
func NewGormTxManager(db *gorm.DB) *gormTxManager {
	return &gormTxManager{db: db}
}

// WithinTx runs fn inside a single database transaction. Returning an error
// from fn rolls everything back; returning nil commits.
func (m *gormTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn resolves the connection to operate on: the transaction handle carried
// by the context if present, otherwise the repository's base connection.
func conn(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
