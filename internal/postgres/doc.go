// Package postgres provides the PostgreSQL connection layer for the
// studysearch service.
//
// It wraps gorm.DB with connection management the service relies on:
//
//   - Connection pooling with sensible defaults
//   - Periodic health checks with automatic reconnection
//   - Transaction helpers, including read-only transactions for query paths
//   - Translation of driver errors to package sentinels
//
// Basic usage:
//
//	pg, err := postgres.NewPostgres(postgres.NewConfig(), log)
//	if err != nil {
//		log.Fatal("Failed to connect to database", err, nil)
//	}
//	defer pg.GracefulShutdown()
//
//	err = pg.ReadOnlyTransaction(ctx, func(tx *gorm.DB) error {
//		return tx.Raw("SELECT study_id FROM qiita.study WHERE study_id = ?", id).
//			Scan(&row).Error
//	})
//
// In production the package is wired through FXModule, which starts the
// connection monitor and reconnection loop and closes the pool on shutdown.
package postgres
