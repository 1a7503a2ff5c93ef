package models

import "time"

// PHIScore is one day of the personal health index as produced by the
// external aggregator. Overall is the composite; the rest are sub-scores.
type PHIScore struct {
	ID        uint      `gorm:"primaryKey" json:"id,omitempty"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_phi_user_date" json:"-"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_phi_user_date" json:"date"`
	Overall   int       `gorm:"not null" json:"overall"`
	Physical  int       `gorm:"not null" json:"physical"`
	Mental    int       `gorm:"not null" json:"mental"`
	Sleep     int       `gorm:"not null" json:"sleep"`
	Nutrition int       `gorm:"not null" json:"nutrition"`
	CreatedAt time.Time `json:"-"`
}

func (PHIScore) TableName() string {
	return "phi_scores"
}
