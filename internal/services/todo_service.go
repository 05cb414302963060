package services

import (
	"context"
	"time"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// TodoServiceImpl implements domain.TodoService
type TodoServiceImpl struct {
	todoRepo domain.TodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo domain.TodoRepository) domain.TodoService {
	return &TodoServiceImpl{todoRepo: todoRepo}
}

// List implements domain.TodoService
func (s *TodoServiceImpl) List(ctx context.Context, ownerID uint) ([]domain.Todo, error) {
	return s.todoRepo.ListByOwner(ctx, ownerID)
}

// Retrieve implements domain.TodoService
func (s *TodoServiceImpl) Retrieve(ctx context.Context, ownerID, todoID uint) (*domain.Todo, error) {
	return s.todoRepo.FindOwned(ctx, ownerID, todoID)
}

// Create implements domain.TodoService. The deadline defaults to the creation
// instant when the caller leaves it unset.
func (s *TodoServiceImpl) Create(ctx context.Context, ownerID uint, todo *domain.Todo) error {
	todo.UserID = ownerID
	todo.IsFinished = false
	if todo.Deadline.IsZero() {
		todo.Deadline = time.Now()
	}
	return s.todoRepo.Create(ctx, todo)
}

// Edit implements domain.TodoService
func (s *TodoServiceImpl) Edit(ctx context.Context, ownerID, todoID uint, update domain.TodoUpdate) error {
	return s.todoRepo.UpdateOwned(ctx, ownerID, todoID, update)
}

// Finish implements domain.TodoService
func (s *TodoServiceImpl) Finish(ctx context.Context, ownerID, todoID uint) error {
	return s.todoRepo.MarkFinished(ctx, ownerID, todoID)
}

// Delete implements domain.TodoService
func (s *TodoServiceImpl) Delete(ctx context.Context, ownerID, todoID uint) error {
	return s.todoRepo.DeleteOwned(ctx, ownerID, todoID)
}
