package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string     `gorm:"primaryKey;size:36" json:"_id"`
	Username  string     `gorm:"uniqueIndex;not null;size:80" json:"username"`
	CreatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
	Exercises []Exercise `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns the opaque id. Ids are immutable once persisted.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
