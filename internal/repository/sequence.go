package repository

import (
	"time"

	"go-erp-backend/internal/docnum"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nextDocNumber generates the next document number for a given model and
// column, scoped to today. The highest existing number of the day is read
// with a locking SELECT, so two concurrent same-day inserts serialize on
// that row (or on the index gap when the day is empty) instead of both
// formatting the same number. The unique index on the column remains the
// backstop.
func nextDocNumber(tx *gorm.DB, model interface{}, column, prefix string) (string, error) {
	now := time.Now()
	dayPrefix := docnum.DayPrefix(prefix, now)

	var last string
	err := tx.Model(model).
		Unscoped(). // soft-deleted documents still hold their numbers
		Select(column).
		Where(column+" LIKE ?", dayPrefix+"%").
		Order(column + " DESC").
		Limit(1).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	seq := 0
	if last != "" {
		seq, err = docnum.Seq(last)
		if err != nil {
			return "", err
		}
	}
	return docnum.Format(prefix, now, seq+1), nil
}
