package postgres

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Transaction executes the given function within a database transaction.
// If the function returns an error, the transaction is rolled back; otherwise
// it's committed. The transaction never outlives this call: every exit path
// (success, error, panic inside gorm) releases the underlying connection.
//
// Example usage:
//
//	err := pg.Transaction(ctx, func(tx *gorm.DB) error {
//		return tx.Raw("SELECT ...").Scan(&rows).Error
//	})
func (p *Postgres) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.client.WithContext(ctx).Transaction(fn)
}

// ReadOnlyTransaction executes fn inside a transaction opened with
// sql.TxOptions{ReadOnly: true}. Used by query paths that must never write.
func (p *Postgres) ReadOnlyTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.client.WithContext(ctx).Transaction(fn, &sql.TxOptions{ReadOnly: true})
}
