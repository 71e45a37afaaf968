package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// User represents an account in the system. Password always holds a bcrypt
// hash, never the plaintext.
type User struct {
	ID       string `gorm:"primaryKey;size:21" json:"id"`
	Name     string `gorm:"size:200" json:"name"`
	Email    string `gorm:"uniqueIndex;not null;size:200" json:"email"`
	Year     string `gorm:"size:10" json:"year"`
	Password string `gorm:"not null" json:"password"`

	Boards []Board `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		u.ID = id
	}
	return nil
}
