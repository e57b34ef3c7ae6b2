package user

import (
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 100
	passwordMinLength = 8
)

// User is an account identity. The email and username are globally unique;
// an inactive account cannot authenticate for new operations even while it
// holds a still-valid token (the active flag is re-checked per request).
type User struct {
	id           uint
	email        string
	username     string
	fullName     string
	passwordHash string
	active       bool
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

// PasswordHasher is the one-way credential hashing port.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func NewUser(email, username, fullName, password string, hasher PasswordHasher) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if len(password) < passwordMinLength {
		return nil, fmt.Errorf("password must be at least %d characters", passwordMinLength)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		email:        email,
		username:     username,
		fullName:     fullName,
		passwordHash: hash,
		active:       true,
		role:         authorization.RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	email string,
	username string,
	fullName string,
	passwordHash string,
	active bool,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		username:     username,
		fullName:     fullName,
		passwordHash: passwordHash,
		active:       active,
		role:         role,
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

func (u *User) Username() string {
	return u.username
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
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

// VerifyPassword checks the candidate password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, u.passwordHash)
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	u.active = true
	u.updatedAt = biztime.NowUTC()
}

func (u *User) PromoteToAdmin() {
	u.role = authorization.RoleAdmin
	u.updatedAt = biztime.NowUTC()
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// Bounds count characters, not bytes, matching the request binding.
func validateUsername(username string) error {
	length := utf8.RuneCountInString(username)
	if length < usernameMinLength {
		return fmt.Errorf("username must be at least %d characters", usernameMinLength)
	}
	if length > usernameMaxLength {
		return fmt.Errorf("username exceeds maximum length of %d characters", usernameMaxLength)
	}
	return nil
}
