package models

import "time"

const DefaultCycleLength = 28

// CycleRecord is one closed-out cycle. Rows are append-only; derived
// statistics are always recomputed from the full history.
type CycleRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id,omitempty"`
	UserID    uint      `gorm:"not null;index:idx_cycle_records_user_start" json:"-"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_cycle_records_user_start" json:"startDate"`
	EndDate   time.Time `gorm:"type:date" json:"endDate"`
	Length    int       `gorm:"not null" json:"length"`
	Symptoms  []string  `gorm:"serializer:json" json:"symptoms"`
	PHIScore  int       `gorm:"column:phi_score;not null;default:0" json:"phiScore"`
	CreatedAt time.Time `json:"-"`
}
