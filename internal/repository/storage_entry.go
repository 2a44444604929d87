package repository

import (
	"context"
	"errors"

	"employee-roster/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageEntryRepository keeps key-value pairs in the storage_entries table
type StorageEntryRepository struct {
	db *gorm.DB
}

// NewStorageEntryRepository creates a new storage entry repository
func NewStorageEntryRepository(db *gorm.DB) *StorageEntryRepository {
	return &StorageEntryRepository{db: db}
}

// GetItem retrieves a value by key
func (r *StorageEntryRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	var entry models.StorageEntry
	err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// SetItem upserts the value stored under key
func (r *StorageEntryRepository) SetItem(ctx context.Context, key, value string) error {
	entry := models.StorageEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// RemoveItem deletes key if present
func (r *StorageEntryRepository) RemoveItem(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&models.StorageEntry{}, "key = ?", key).Error
}

// Clear deletes every entry
func (r *StorageEntryRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.StorageEntry{}).Error
}

// Keys lists the stored keys in order
func (r *StorageEntryRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&models.StorageEntry{}).Order("key").Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
