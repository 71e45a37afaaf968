package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Card is a single task on a board. Date and time are stored as plain text,
// and Tags holds an arbitrary JSON value (array, object or null) with no
// server-side shape enforcement.
type Card struct {
	ID          string         `gorm:"primaryKey;size:21" json:"id"`
	Name        string         `gorm:"size:200" json:"name"`
	Description string         `json:"description"`
	Date        string         `gorm:"size:50" json:"date"`
	Time        string         `gorm:"size:50" json:"time"`
	Tags        datatypes.JSON `json:"tags"`
	BoardID     string         `gorm:"not null;size:21" json:"boardId"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		c.ID = id
	}
	return nil
}
