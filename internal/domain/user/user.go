package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/constants"
)

// PasswordHasher abstracts the hashing scheme so the domain never sees
// bcrypt directly.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is the account aggregate. Accounts start pending and become active
// once the verification email is confirmed.
type User struct {
	id                    uint
	email                 string
	name                  string
	passwordHash          string
	role                  authorization.UserRole
	status                string
	emailVerified         bool
	verificationToken     *string
	verificationExpiresAt *time.Time
	createdAt             time.Time
	updatedAt             time.Time
}

func NewUser(email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &User{
		email:     email,
		name:      name,
		role:      authorization.RoleUser,
		status:    constants.UserStatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence without validation.
func ReconstructUser(
	id uint,
	email, name, passwordHash string,
	role authorization.UserRole,
	status string,
	emailVerified bool,
	verificationToken *string,
	verificationExpiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                    id,
		email:                 email,
		name:                  name,
		passwordHash:          passwordHash,
		role:                  role,
		status:                status,
		emailVerified:         emailVerified,
		verificationToken:     verificationToken,
		verificationExpiresAt: verificationExpiresAt,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (u *User) ID() uint                          { return u.id }
func (u *User) Email() string                     { return u.email }
func (u *User) Name() string                      { return u.name }
func (u *User) PasswordHash() string              { return u.passwordHash }
func (u *User) Role() authorization.UserRole      { return u.role }
func (u *User) Status() string                    { return u.status }
func (u *User) EmailVerified() bool               { return u.emailVerified }
func (u *User) VerificationToken() *string        { return u.verificationToken }
func (u *User) VerificationExpiresAt() *time.Time { return u.verificationExpiresAt }
func (u *User) CreatedAt() time.Time              { return u.createdAt }
func (u *User) UpdatedAt() time.Time              { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	u.id = id
	return nil
}

func (u *User) IsActive() bool {
	return u.status == constants.UserStatusActive
}

// SetPassword hashes and stores a new password.
func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("password exceeds maximum length of 128 characters")
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

// Authenticate verifies a password against the stored hash.
func (u *User) Authenticate(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// GenerateVerificationToken issues a fresh email verification token valid
// for the given duration.
func (u *User) GenerateVerificationToken(ttl time.Duration) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	token := hex.EncodeToString(buf)
	expires := time.Now().Add(ttl)
	u.verificationToken = &token
	u.verificationExpiresAt = &expires
	u.touch()
	return token, nil
}

// VerifyEmail marks the account verified and active when the token matches
// and has not expired.
func (u *User) VerifyEmail(token string) error {
	if u.emailVerified {
		return fmt.Errorf("email already verified")
	}
	if u.verificationToken == nil || *u.verificationToken != token {
		return fmt.Errorf("invalid verification token")
	}
	if u.verificationExpiresAt == nil || time.Now().After(*u.verificationExpiresAt) {
		return fmt.Errorf("verification token expired")
	}
	u.emailVerified = true
	u.status = constants.UserStatusActive
	u.verificationToken = nil
	u.verificationExpiresAt = nil
	u.touch()
	return nil
}

func (u *User) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	u.name = name
	u.touch()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.touch()
	return nil
}

func (u *User) ChangeStatus(status string) error {
	switch status {
	case constants.UserStatusActive, constants.UserStatusInactive, constants.UserStatusPending:
		u.status = status
		u.touch()
		return nil
	default:
		return fmt.Errorf("invalid status: %s", status)
	}
}

func (u *User) touch() {
	u.updatedAt = time.Now()
}
