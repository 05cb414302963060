package mocks

import (
	"context"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// MockAccountService implements domain.AccountService interface for testing
type MockAccountService struct {
	RegisterFunc func(ctx context.Context, name, surname string, age int, email, password string) (*domain.User, *domain.TokenPair, error)
	VerifyFunc   func(ctx context.Context, userID uint, code string) (bool, error)
	LoginFunc    func(ctx context.Context, email, password string) (*domain.TokenPair, error)
	ProfileFunc  func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

// Register registers a new account
func (m *MockAccountService) Register(ctx context.Context, name, surname string, age int, email, password string) (*domain.User, *domain.TokenPair, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, surname, age, email, password)
	}
	user := &domain.User{ID: 1, Name: name, Surname: surname, Age: age, Email: email, OTP: "12345"}
	return user, &domain.TokenPair{AccessToken: "access_token", RefreshToken: "refresh_token"}, nil
}

// Verify confirms or rejects a verification code
func (m *MockAccountService) Verify(ctx context.Context, userID uint, code string) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, userID, code)
	}
	return true, nil
}

// Login authenticates by email and password
func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.TokenPair{AccessToken: "access_token", RefreshToken: "refresh_token"}, nil
}

// Profile returns the user's profile
func (m *MockAccountService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*MockAccountService)(nil)
