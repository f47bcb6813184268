// File: /models/user.go
package models

import (
	"encoding/json"
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:UserID"`
}

// EmailAddress is trimmed and lowercased while decoding, so binding
// validation sees the normalized value.
type EmailAddress string

func (e *EmailAddress) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = EmailAddress(strings.ToLower(strings.TrimSpace(raw)))
	return nil
}

func (e EmailAddress) String() string {
	return string(e)
}

type RegisterRequest struct {
	Name     string       `json:"name" binding:"required,max=255"`
	Email    EmailAddress `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    EmailAddress `json:"email" binding:"required,email"`
	Password string       `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name  *string       `json:"name" binding:"omitempty,max=255"`
	Email *EmailAddress `json:"email" binding:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
