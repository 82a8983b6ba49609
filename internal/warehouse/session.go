package warehouse

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WithSession runs fn inside a single warehouse transaction. On a nil return
// the transaction commits; on an error it rolls back and the error reaches
// the caller unchanged, so error-kind checks made by callers are unaffected
// by this wrapper. The connection returns to the pool on every path.
//
// The *gorm.DB passed to fn is valid only until WithSession returns and must
// not be shared across goroutines.
func WithSession(ctx context.Context, db *gorm.DB, logger *zap.Logger, fn func(tx *gorm.DB) error) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
	if err != nil {
		logger.Error("Rolled back warehouse session", zap.Error(err))
		return err
	}

	logger.Debug("Committed warehouse session")
	return nil
}
