// Package database provides the portal's persistence layer: a small
// key-value record store backed by SQLite, plus an in-memory variant for
// tests and ephemeral runs.
package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/culibrary/portal/internal/entities"
)

// RecordStore reads and writes whole JSON documents by key. Each portal
// collection is one record; repositories layer typed load/save contracts on
// top of this interface.
type RecordStore interface {
	GetRecord(key string) (value string, found bool, err error)
	SetRecord(key, value string) error
	DeleteRecord(key string) error
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetRecord retrieves a record by key. A missing key is not an error.
func (d *Database) GetRecord(key string) (string, bool, error) {
	var record entities.Record
	err := d.DB.Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return record.Value, true, nil
}

// SetRecord creates or overwrites a record.
func (d *Database) SetRecord(key, value string) error {
	var record entities.Record
	result := d.DB.Where("key = ?", key).First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		record = entities.Record{
			Key:   key,
			Value: value,
		}
		return d.DB.Create(&record).Error
	} else if result.Error != nil {
		return result.Error
	}

	record.Value = value
	return d.DB.Save(&record).Error
}

// DeleteRecord removes a record by key. Deleting a missing key is a no-op.
func (d *Database) DeleteRecord(key string) error {
	return d.DB.Where("key = ?", key).Delete(&entities.Record{}).Error
}

var _ RecordStore = (*Database)(nil)
