package entity

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type User struct {
	ID        uint                        `json:"id" gorm:"primaryKey"`
	Email     string                      `json:"email" gorm:"size:180;uniqueIndex;not null"`
	Password  string                      `json:"-" gorm:"not null"`
	City      string                      `json:"city" gorm:"size:255"`
	Pseudo    string                      `json:"pseudo" gorm:"size:255;uniqueIndex;not null"`
	Roles     datatypes.JSONSlice[string] `json:"roles"`
	CreatedAt time.Time                   `json:"createdDate"`
	UpdatedAt time.Time                   `json:"updatedDate"`
}

// HasRole reports whether the user carries role. Every user implicitly has ROLE_USER.
func (u *User) HasRole(role string) bool {
	if role == RoleUser {
		return true
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
