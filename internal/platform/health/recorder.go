// Package health persists the ephemeral markers written by the liveness probe.
package health

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// CheckModel is the GORM model for the health_checks table.
// Rows are written on each probe to prove the persistence layer is reachable;
// nothing reads them back.
type CheckModel struct {
	ID        uint      `gorm:"primaryKey"`
	CheckedAt time.Time `gorm:"autoCreateTime;not null"`
}

// TableName returns the table name for GORM.
func (CheckModel) TableName() string {
	return "health_checks"
}

// Recorder writes health-check markers through GORM.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder creates a new Recorder instance.
func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Record inserts a marker row. An error means the store is unreachable.
func (r *Recorder) Record(ctx context.Context) error {
	return r.db.WithContext(ctx).Create(&CheckModel{}).Error
}
