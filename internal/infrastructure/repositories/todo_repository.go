package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// TodoRepositoryImpl implements domain.TodoRepository using GORM. Ownership
// scoping is part of every WHERE clause: a todo owned by another user is
// never materialized, it simply does not match.
type TodoRepositoryImpl struct {
	db *gorm.DB
}

// DBTodo represents the database model for Todo (with GORM tags)
type DBTodo struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string
	CreatedAt  time.Time
	Deadline   time.Time
	IsFinished bool
	IsUrgent   bool
	UserID     uint `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBTodo) TableName() string {
	return "todos"
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *gorm.DB) domain.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

// Create implements domain.TodoRepository
func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *domain.Todo) error {
	dbTodo := r.domainToDB(todo)
	if err := r.db.WithContext(ctx).Create(dbTodo).Error; err != nil {
		return err
	}
	todo.ID = dbTodo.ID
	todo.CreatedAt = dbTodo.CreatedAt
	return nil
}

// ListByOwner implements domain.TodoRepository
func (r *TodoRepositoryImpl) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Todo, error) {
	var dbTodos []DBTodo
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&dbTodos).Error; err != nil {
		return nil, err
	}
	todos := make([]domain.Todo, 0, len(dbTodos))
	for i := range dbTodos {
		todos = append(todos, *r.dbToDomain(&dbTodos[i]))
	}
	return todos, nil
}

// FindOwned implements domain.TodoRepository
func (r *TodoRepositoryImpl) FindOwned(ctx context.Context, ownerID, todoID uint) (*domain.Todo, error) {
	var dbTodo DBTodo
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", todoID, ownerID).First(&dbTodo).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbTodo), nil
}

// UpdateOwned implements domain.TodoRepository. The ownership predicate and
// the field update run as one statement; zero affected rows means the todo is
// absent or owned by someone else, reported identically.
func (r *TodoRepositoryImpl) UpdateOwned(ctx context.Context, ownerID, todoID uint, update domain.TodoUpdate) error {
	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Deadline != nil {
		fields["deadline"] = *update.Deadline
	}
	if len(fields) == 0 {
		// Nothing to change; still report not-found for unowned rows
		_, err := r.FindOwned(ctx, ownerID, todoID)
		return err
	}

	res := r.db.WithContext(ctx).Model(&DBTodo{}).
		Where("id = ? AND user_id = ?", todoID, ownerID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

// MarkFinished implements domain.TodoRepository. Finishing an already
// finished todo matches the row again, so the call stays idempotent.
func (r *TodoRepositoryImpl) MarkFinished(ctx context.Context, ownerID, todoID uint) error {
	res := r.db.WithContext(ctx).Model(&DBTodo{}).
		Where("id = ? AND user_id = ?", todoID, ownerID).
		Update("is_finished", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

// DeleteOwned implements domain.TodoRepository
func (r *TodoRepositoryImpl) DeleteOwned(ctx context.Context, ownerID, todoID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", todoID, ownerID).Delete(&DBTodo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

// domainToDB converts domain todo to database todo
func (r *TodoRepositoryImpl) domainToDB(todo *domain.Todo) *DBTodo {
	return &DBTodo{
		ID:         todo.ID,
		Title:      todo.Title,
		Deadline:   todo.Deadline,
		IsFinished: todo.IsFinished,
		IsUrgent:   todo.IsUrgent,
		UserID:     todo.UserID,
	}
}

// dbToDomain converts database todo to domain todo
func (r *TodoRepositoryImpl) dbToDomain(dbTodo *DBTodo) *domain.Todo {
	return &domain.Todo{
		ID:         dbTodo.ID,
		Title:      dbTodo.Title,
		CreatedAt:  dbTodo.CreatedAt,
		Deadline:   dbTodo.Deadline,
		IsFinished: dbTodo.IsFinished,
		IsUrgent:   dbTodo.IsUrgent,
		UserID:     dbTodo.UserID,
	}
}
