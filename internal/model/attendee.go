package model

import "time"

// Attendee is one registered conference participant. The badge number printed
// on their QR code is the primary key; it is assigned sequentially at
// registration time and never reused.
type Attendee struct {
	BadgeID   int64  `gorm:"primaryKey" json:"badge_id"`
	Name      string `gorm:"size:256;not null" json:"name"`
	Email     string `gorm:"size:256" json:"email"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
