package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// User is a storefront account. Password-based accounts carry a bcrypt hash;
// accounts created through Google sign-in may have no password at all.
type User struct {
	id           uint
	email        string
	passwordHash string
	name         string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, passwordHash, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	email string,
	passwordHash string,
	name string,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

func (u *User) Name() string {
	return u.name
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}
