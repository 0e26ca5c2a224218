package kv

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// entry is the single table of the SQL store.
type entry struct {
	Key       string `gorm:"primaryKey;column:name"`
	Value     []byte
	UpdatedAt time.Time
}

func (entry) TableName() string { return "entries" }

// SQL stores values in a SQLite database through GORM.
type SQL struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the SQLite database at 'dsn' and migrates it.
func OpenSQLite(dsn string) (*SQL, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", dsn, err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database %q: %w", dsn, err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Get(key string) ([]byte, error) {
	var e entry
	err := s.db.First(&e, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (s *SQL) Set(key string, value []byte) error {
	e := entry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *SQL) Delete(key string) error {
	return s.db.Delete(&entry{}, "name = ?", key).Error
}

func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
