package user

import (
	"github.com/yellomango9/it-mgmt-tool/internal"
)

type RegisterDTO struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	DepartmentID *int64 `json:"department_id"`
}

func (d *RegisterDTO) Validate() error {
	if d.FullName == "" || d.Email == "" || d.Password == "" {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeMissingFields)
	}
	return nil
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d *LoginDTO) Validate() error {
	if d.Email == "" || d.Password == "" {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeMissingFields)
	}
	return nil
}
