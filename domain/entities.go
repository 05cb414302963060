package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
	"unicode"
)

// User represents an account in the system
type User struct {
	ID           uint
	Name         string
	Surname      string
	Age          int
	Email        string
	PasswordHash string `gorm:"column:password"`
	Image        string
	OTP          string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Todo represents a task item owned by exactly one user
type Todo struct {
	ID         uint
	Title      string
	CreatedAt  time.Time
	Deadline   time.Time
	IsFinished bool
	IsUrgent   bool
	UserID     uint
}

// TodoUpdate carries the editable todo fields; nil means "leave unchanged"
type TodoUpdate struct {
	Title    *string
	Deadline *time.Time
}

// TokenPair represents the access/refresh tokens issued at registration and login
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents validated JWT token claims
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// VerificationCodeLength is the number of digits in an account activation code
const VerificationCodeLength = 5

// NewVerificationCode generates a fresh 5-digit activation code. It must be
// called once per user construction, never evaluated into a shared default.
func NewVerificationCode() (string, error) {
	// 10000..99999 so the code always has five digits
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+10000), nil
}

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// ValidatePassword enforces the registration password policy
func ValidatePassword(value string) error {
	if len(value) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	for _, r := range value {
		if unicode.IsDigit(r) {
			return nil
		}
	}
	return ErrPasswordNoDigit
}
