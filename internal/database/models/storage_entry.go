package models

import "time"

// StorageEntry is one key of the key-value store when it is backed by a
// relational database. Value holds the raw string exactly as written.
type StorageEntry struct {
	Key       string    `json:"key" gorm:"primaryKey;size:100"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for StorageEntry
func (StorageEntry) TableName() string {
	return "storage_entries"
}
