package model

import (
	"encoding/json"
	"fmt"
)

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@ecogarden.fr"`
	Password string `json:"password" validate:"required,min=6" example:"secret1"`
	City     string `json:"city" validate:"required" example:"Lyon"`
	Pseudo   string `json:"pseudo" validate:"required" example:"jane"`
}

type UpdateUserRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	City     string   `json:"city" validate:"required"`
	Pseudo   string   `json:"pseudo" validate:"required"`
	Role     RoleList `json:"role" validate:"required,min=1" swaggertype:"array,string"`
}

// RoleList accepts either a single role or an array of roles
type RoleList []string

func (r *RoleList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*r = nil
			return nil
		}
		*r = RoleList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("role must be a string or an array of strings")
	}
	*r = many
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
