package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	db *gorm.DB
	mu sync.RWMutex
)

// InitDB initializes database connection. The first handle wins until CloseDB.
func InitDB(database *gorm.DB) {
	mu.Lock()
	defer mu.Unlock()
	if db == nil {
		db = database
	}
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}

// CloseDB closes the shared connection pool. Safe to call when InitDB never ran.
func CloseDB() error {
	mu.Lock()
	defer mu.Unlock()
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	db = nil
	return sqlDB.Close()
}
