package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// InitDB opens the MySQL connection and migrates the schema. The returned
// handle is passed explicitly to the stores; there is no package-level
// connection.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{
		// Map driver duplicate-key errors to gorm.ErrDuplicatedKey so the
		// stores can rely on the unique index for the signup conflict check.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate the database models
	if err := db.AutoMigrate(&User{}, &Appointment{}); err != nil {
		return nil, err
	}

	return db, nil
}
