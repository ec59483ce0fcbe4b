package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity is the string primary key shared by every directory entity.
type Identity struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`
}

// BeforeCreate assigns a UUID when the caller did not choose one.
func (i *Identity) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
