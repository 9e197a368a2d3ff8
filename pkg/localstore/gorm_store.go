package localstore

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is the persisted shape of a single storage slot.
type Slot struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value []byte
}

// GORMStore is a GORM/SQLite implementation of Store. The database is a
// single local file, so durability is whatever the local filesystem gives us.
type GORMStore struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and returns a
// GORMStore bound to it.
func Open(path string) (*GORMStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %s: %w", path, err)
	}
	return NewGORMStore(db)
}

// NewGORMStore wraps an existing GORM connection and migrates the slot table.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate slot table: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// Get returns the value stored under key.
func (s *GORMStore) Get(key string) ([]byte, bool, error) {
	var slot Slot
	if err := s.db.First(&slot, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return slot.Value, true, nil
}

// Set creates or overwrites the slot under key.
func (s *GORMStore) Set(key string, value []byte) error {
	slot := Slot{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot under key, if present.
func (s *GORMStore) Delete(key string) error {
	if err := s.db.Delete(&Slot{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
