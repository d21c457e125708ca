package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction executes the provided fn within a transaction while propagating context.
// Every check-then-write sequence in the register (access-code uniqueness,
// normalized-name uniqueness, levy-cap check, dues upsert) must run through
// this so the check and the write commit as one unit.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    // tx already has context - just use it directly
//	    if err := repo.Create(ctx, tx, entity); err != nil {
//	        return err // rollback
//	    }
//	    return nil // commit
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
