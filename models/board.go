package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// Board is a subject task board owned by one user. Boards are seeded from the
// curriculum table at signup but freely renamable afterwards.
type Board struct {
	ID     string `gorm:"primaryKey;size:21" json:"id"`
	Name   string `gorm:"not null;size:200" json:"name"`
	UserID string `gorm:"not null;size:21" json:"userId"`

	Cards []Card `gorm:"foreignKey:BoardID" json:"-"`
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		b.ID = id
	}
	return nil
}
