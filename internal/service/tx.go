package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// parseDate parses the wire date format used by all date fields.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04:05"
)

// nilIfEmpty normalizes an optional reference: empty string means "absent"
// and is stored as NULL so the unique index only bites on real values.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
