package models

import (
	"time"
)

type User struct {
	Id           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
}
