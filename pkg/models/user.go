package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// PasswordHashCost is the bcrypt work factor for stored passwords.
const PasswordHashCost = 12

type User struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Name          string    `gorm:"type:varchar(255)" json:"name"`
	Image         string    `gorm:"type:text" json:"image,omitempty"`
	Password      *string   `json:"-"` // nil for accounts that only sign in with Google
	GoogleSubject *string   `gorm:"uniqueIndex" json:"-"`
	Role          UserRole  `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
