package database

import (
	"coinwidget/models"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordStore keeps serialized widget records in the widget_records table.
// It satisfies prefs.Backend.
type RecordStore struct {
	db *gorm.DB
}

// NewRecordStore wraps an opened, migrated database.
func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Load returns the stored record for key. ok is false when it does not exist.
func (s *RecordStore) Load(key string) (value string, ok bool, err error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, errors.New("empty record key")
	}

	var rec models.WidgetRecord
	if err := s.db.Take(&rec, "widget_id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load record %s: %w", key, err)
	}
	return rec.Data, true, nil
}

// Save inserts or replaces the record for key.
func (s *RecordStore) Save(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty record key")
	}

	rec := models.WidgetRecord{WidgetID: key, Data: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "widget_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", key, err)
	}
	return nil
}

// Remove deletes the record for key if it exists.
func (s *RecordStore) Remove(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty record key")
	}

	if err := s.db.Where("widget_id = ?", key).Delete(&models.WidgetRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.WidgetRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}
