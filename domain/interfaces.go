package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Activate(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// TodoRepository defines todo data access operations. Every method that
// addresses a single todo takes the owner id as part of the lookup predicate;
// a row that exists but belongs to someone else is indistinguishable from a
// row that does not exist.
type TodoRepository interface {
	Create(ctx context.Context, todo *Todo) error
	ListByOwner(ctx context.Context, ownerID uint) ([]Todo, error)
	FindOwned(ctx context.Context, ownerID, todoID uint) (*Todo, error)
	UpdateOwned(ctx context.Context, ownerID, todoID uint, update TodoUpdate) error
	MarkFinished(ctx context.Context, ownerID, todoID uint) error
	DeleteOwned(ctx context.Context, ownerID, todoID uint) error
}

// AccountService defines the account lifecycle business logic
type AccountService interface {
	Register(ctx context.Context, name, surname string, age int, email, password string) (*User, *TokenPair, error)
	Verify(ctx context.Context, userID uint, code string) (bool, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Profile(ctx context.Context, userID uint) (*User, error)
}

// TodoService defines owner-scoped todo operations
type TodoService interface {
	List(ctx context.Context, ownerID uint) ([]Todo, error)
	Retrieve(ctx context.Context, ownerID, todoID uint) (*Todo, error)
	Create(ctx context.Context, ownerID uint, todo *Todo) error
	Edit(ctx context.Context, ownerID, todoID uint, update TodoUpdate) error
	Finish(ctx context.Context, ownerID, todoID uint) error
	Delete(ctx context.Context, ownerID, todoID uint) error
}

// OTPService defines verification code delivery operations
type OTPService interface {
	Dispatch(ctx context.Context, email, code string) error
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint) (string, error)
	GenerateRefreshToken(userID uint) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
}
