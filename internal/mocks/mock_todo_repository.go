package mocks

import (
	"context"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// MockTodoRepository implements domain.TodoRepository interface for testing
type MockTodoRepository struct {
	CreateFunc       func(ctx context.Context, todo *domain.Todo) error
	ListByOwnerFunc  func(ctx context.Context, ownerID uint) ([]domain.Todo, error)
	FindOwnedFunc    func(ctx context.Context, ownerID, todoID uint) (*domain.Todo, error)
	UpdateOwnedFunc  func(ctx context.Context, ownerID, todoID uint, update domain.TodoUpdate) error
	MarkFinishedFunc func(ctx context.Context, ownerID, todoID uint) error
	DeleteOwnedFunc  func(ctx context.Context, ownerID, todoID uint) error
}

// NewMockTodoRepository creates a new MockTodoRepository with default behaviors
func NewMockTodoRepository() *MockTodoRepository {
	return &MockTodoRepository{}
}

// Create creates a new todo
func (m *MockTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, todo)
	}
	// Default behavior: success
	return nil
}

// ListByOwner lists the owner's todos
func (m *MockTodoRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Todo, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	// Default behavior: empty list
	return []domain.Todo{}, nil
}

// FindOwned finds one owned todo
func (m *MockTodoRepository) FindOwned(ctx context.Context, ownerID, todoID uint) (*domain.Todo, error) {
	if m.FindOwnedFunc != nil {
		return m.FindOwnedFunc(ctx, ownerID, todoID)
	}
	// Default behavior: not found
	return nil, domain.ErrTodoNotFound
}

// UpdateOwned applies a partial update to one owned todo
func (m *MockTodoRepository) UpdateOwned(ctx context.Context, ownerID, todoID uint, update domain.TodoUpdate) error {
	if m.UpdateOwnedFunc != nil {
		return m.UpdateOwnedFunc(ctx, ownerID, todoID, update)
	}
	// Default behavior: not found
	return domain.ErrTodoNotFound
}

// MarkFinished sets is_finished on one owned todo
func (m *MockTodoRepository) MarkFinished(ctx context.Context, ownerID, todoID uint) error {
	if m.MarkFinishedFunc != nil {
		return m.MarkFinishedFunc(ctx, ownerID, todoID)
	}
	// Default behavior: not found
	return domain.ErrTodoNotFound
}

// DeleteOwned removes one owned todo
func (m *MockTodoRepository) DeleteOwned(ctx context.Context, ownerID, todoID uint) error {
	if m.DeleteOwnedFunc != nil {
		return m.DeleteOwnedFunc(ctx, ownerID, todoID)
	}
	// Default behavior: not found
	return domain.ErrTodoNotFound
}

// Compile-time interface compliance verification
var _ domain.TodoRepository = (*MockTodoRepository)(nil)
