package models

import (
	"golang.org/x/crypto/bcrypt"
)

// UserRole enum
type UserRole string

const (
	Citizen    UserRole = "Citizen"
	Councillor UserRole = "Councillor"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == Citizen || r == Councillor
}

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext credential.
type User struct {
	ID       string   `json:"id"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Ward     string   `json:"ward"`
	Role     UserRole `json:"role"`
	Password string   `json:"-"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
