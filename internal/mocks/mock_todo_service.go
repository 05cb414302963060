package mocks

import (
	"context"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// MockTodoService implements domain.TodoService interface for testing
type MockTodoService struct {
	ListFunc     func(ctx context.Context, ownerID uint) ([]domain.Todo, error)
	RetrieveFunc func(ctx context.Context, ownerID, todoID uint) (*domain.Todo, error)
	CreateFunc   func(ctx context.Context, ownerID uint, todo *domain.Todo) error
	EditFunc     func(ctx context.Context, ownerID, todoID uint, update domain.TodoUpdate) error
	FinishFunc   func(ctx context.Context, ownerID, todoID uint) error
	DeleteFunc   func(ctx context.Context, ownerID, todoID uint) error
}

// NewMockTodoService creates a new MockTodoService with default behaviors
func NewMockTodoService() *MockTodoService {
	return &MockTodoService{}
}

// List lists the owner's todos
func (m *MockTodoService) List(ctx context.Context, ownerID uint) ([]domain.Todo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return []domain.Todo{}, nil
}

// Retrieve returns one owned todo
func (m *MockTodoService) Retrieve(ctx context.Context, ownerID, todoID uint) (*domain.Todo, error) {
	if m.RetrieveFunc != nil {
		return m.RetrieveFunc(ctx, ownerID, todoID)
	}
	return nil, domain.ErrTodoNotFound
}

// Create creates a todo owned by ownerID
func (m *MockTodoService) Create(ctx context.Context, ownerID uint, todo *domain.Todo) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, todo)
	}
	todo.ID = 1
	todo.UserID = ownerID
	return nil
}

// Edit applies a partial update to one owned todo
func (m *MockTodoService) Edit(ctx context.Context, ownerID, todoID uint, update domain.TodoUpdate) error {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, ownerID, todoID, update)
	}
	return domain.ErrTodoNotFound
}

// Finish marks one owned todo finished
func (m *MockTodoService) Finish(ctx context.Context, ownerID, todoID uint) error {
	if m.FinishFunc != nil {
		return m.FinishFunc(ctx, ownerID, todoID)
	}
	return domain.ErrTodoNotFound
}

// Delete removes one owned todo
func (m *MockTodoService) Delete(ctx context.Context, ownerID, todoID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, todoID)
	}
	return domain.ErrTodoNotFound
}

// Compile-time interface compliance verification
var _ domain.TodoService = (*MockTodoService)(nil)
