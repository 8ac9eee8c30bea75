package domain

import (
	"context"
	"strings"
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return invalid("email", "must not be empty")
	}
	if !strings.Contains(u.Email, "@") {
		return invalid("email", "must be an email address")
	}
	if u.PasswordHash == "" {
		return invalid("password", "must not be empty")
	}
	return nil
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
}
