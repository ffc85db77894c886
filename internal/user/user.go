// Package user covers account registration and login. Accounts are never
// updated or deleted through this API; deactivation happens out of band by
// flipping is_active.
package user

import (
	"errors"
	"time"
)

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"column:full_name" json:"full_name"`
	Email        string    `gorm:"column:email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Role         string    `gorm:"column:role" json:"role"`
	DepartmentID *int64    `gorm:"column:department_id" json:"department_id"`
	IsActive     bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// PublicUser is the projection returned by login: no hash, no flags.
type PublicUser struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:   u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// ErrUserNotFound is internal to the package; the service collapses it into
// the shared invalid-credentials error so lookups and bad passwords are
// indistinguishable to clients.
var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Create(u *User) error
	GetActiveByEmail(email string) (*User, error)
}
