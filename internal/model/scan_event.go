package model

// ScanEvent is one raw badge observation in the append-only scan log.
// Both columns are kept as the text that was captured at the door: badge
// numbers arrive from QR decoding or manual entry, and timestamps in the log
// have accumulated several encodings over time (RFC3339 with a trailing Z,
// zone-less ISO strings, stringified time values). Nothing is normalized
// here; internal/parse is the only place the variants are interpreted.
type ScanEvent struct {
	ID        int64  `gorm:"autoIncrement;primaryKey"`
	BadgeID   string `gorm:"size:64;index;not null" json:"badge_id"`
	Timestamp string `gorm:"size:64;not null" json:"timestamp"`
}
