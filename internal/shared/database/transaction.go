package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction executes the provided fn within a transaction while propagating context.
// The transaction DB instance passed to fn already includes the context, so repository methods
// can use it directly.
//
// 정원 검사와 상태 변경처럼 묶여야 하는 쓰기는 반드시 하나의 fn 안에서 수행한다.
// SQLite가 writer를 직렬화하므로 두 운영진이 동시에 승인해도 정원 초과가 발생하지 않는다.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
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
