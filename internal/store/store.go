package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ceu-checkin-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB
	RegisterAttendee(ctx context.Context, name, email string) (model.Attendee, error)
	ListAttendees(ctx context.Context) ([]model.Attendee, error)
	AppendScan(ctx context.Context, badgeID, timestamp string) error
	ListScans(ctx context.Context) ([]model.ScanEvent, error)
	SaveCreditReport(ctx context.Context, reportDate time.Time, rows []model.CreditReport) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection for handlers that query directly.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// RegisterAttendee inserts a new attendee with the next free badge number.
// Badge numbers are assigned sequentially starting at 1 and never reused.
func (s *gormStore) RegisterAttendee(ctx context.Context, name, email string) (model.Attendee, error) {
	var attendee model.Attendee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxBadge int64
		if err := tx.Model(&model.Attendee{}).
			Select("COALESCE(MAX(badge_id), 0)").
			Scan(&maxBadge).Error; err != nil {
			return fmt.Errorf("failed to determine next badge id: %w", err)
		}

		attendee = model.Attendee{BadgeID: maxBadge + 1, Name: name, Email: email}
		if err := tx.Create(&attendee).Error; err != nil {
			return fmt.Errorf("failed to insert attendee: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Attendee{}, err
	}
	return attendee, nil
}

// ListAttendees returns the full registry ordered by badge number.
func (s *gormStore) ListAttendees(ctx context.Context) ([]model.Attendee, error) {
	var attendees []model.Attendee
	if err := s.db.WithContext(ctx).Order("badge_id asc").Find(&attendees).Error; err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	return attendees, nil
}

// AppendScan records one badge observation. The scan log is append-only:
// rows are stored exactly as captured and never updated.
func (s *gormStore) AppendScan(ctx context.Context, badgeID, timestamp string) error {
	ev := model.ScanEvent{BadgeID: badgeID, Timestamp: timestamp}
	if err := s.db.WithContext(ctx).Create(&ev).Error; err != nil {
		return fmt.Errorf("failed to append scan for badge %q: %w", badgeID, err)
	}
	return nil
}

// ListScans returns the whole scan log in insertion order.
func (s *gormStore) ListScans(ctx context.Context) ([]model.ScanEvent, error) {
	var events []model.ScanEvent
	if err := s.db.WithContext(ctx).Order("id asc").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	return events, nil
}

// SaveCreditReport replaces the persisted credit rows for one report date.
// Saving the same day twice leaves a single copy of the latest computation.
func (s *gormStore) SaveCreditReport(ctx context.Context, reportDate time.Time, rows []model.CreditReport) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_date = ?", reportDate).
			Delete(&model.CreditReport{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous report for %s: %w", reportDate.Format("2006-01-02"), err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert credit report rows: %w", err)
		}
		return nil
	})
}
