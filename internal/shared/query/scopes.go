package query

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Scope = func(*gorm.DB) *gorm.DB

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search ORs a case-insensitive substring match over columns.
// Column names must come from code, never from the request.
func Search(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		parts := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			parts[i] = fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col)
			args[i] = pattern
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

// Equal filters on column = value when value is set.
func Equal(column string, value *string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// Range applies inclusive bounds; nil bounds are skipped.
func Range(column string, min, max *decimal.Decimal) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where(column+" >= ?", *min)
		}
		if max != nil {
			db = db.Where(column+" <= ?", *max)
		}
		return db
	}
}

func Order(o Ordering) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if o.Column == "" {
			return db
		}
		return db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.Column, Raw: true},
			Desc:   o.Desc,
		})
	}
}
