package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm handle whose statements run on tx.
// A nil tx returns db unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}

	bound := db.Session(&gorm.Session{
		NewDB:                  true,
		Context:                context.Background(),
		SkipDefaultTransaction: true,
	})
	bound.Statement.ConnPool = tx
	return bound
}
