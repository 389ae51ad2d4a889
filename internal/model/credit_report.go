package model

import "time"

// CreditReport is one persisted credit decision: whether a badge's
// reconstructed presence overlapped a scheduled session block. Rows are
// written only when an admin saves a day's CE report; the live report is
// always recomputed from the scan log.
type CreditReport struct {
	ID           int64     `gorm:"autoIncrement;primaryKey"`
	BadgeID      int64     `gorm:"index;not null" json:"badge_id"`
	SessionTitle string    `gorm:"size:256;not null" json:"session_title"`
	Attended     bool      `gorm:"not null" json:"attended"`
	ReportDate   time.Time `gorm:"not null;index" json:"report_date"`
	CreatedAt    time.Time
}
