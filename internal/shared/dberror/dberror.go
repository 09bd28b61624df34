// Package dberror menerjemahkan error driver database (Postgres atau sqlite)
// menjadi error domain milik masing-masing modul.
package dberror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Rules memetakan kegagalan repository ke error domain.
//
// Key Unique berupa nama constraint Postgres (uq_departments_name) atau
// kolom yang disebut sqlite (departments.name).
type Rules struct {
	NotFound   error
	Unique     map[string]error
	ForeignKey error
}

func (r Rules) Map(err error) error {
	if err == nil {
		return nil
	}

	if r.NotFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return r.NotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if mapped, ok := r.Unique[pgErr.ConstraintName]; ok {
				return mapped
			}
		case pgForeignKeyViolation:
			if r.ForeignKey != nil {
				return r.ForeignKey
			}
		}
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique"):
		for key, mapped := range r.Unique {
			if strings.Contains(msg, strings.ToLower(key)) {
				return mapped
			}
		}
	case strings.Contains(msg, "foreign key constraint"):
		if r.ForeignKey != nil {
			return r.ForeignKey
		}
	}

	return err
}

// IsNotFound true untuk gorm.ErrRecordNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
