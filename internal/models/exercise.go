package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Exercise struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"-"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"` // whole minutes
	Date        time.Time `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (Exercise) TableName() string {
	return "exercises"
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
