package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/http/middleware"
)

// TodoHandlers handles owner-scoped todo HTTP requests
type TodoHandlers struct {
	todoSvc domain.TodoService
}

// NewTodoHandlers creates new todo handlers
func NewTodoHandlers(todoSvc domain.TodoService) *TodoHandlers {
	return &TodoHandlers{todoSvc: todoSvc}
}

// TodoCreateRequest represents todo creation request
type TodoCreateRequest struct {
	Title    string     `json:"title" binding:"required"`
	Deadline *time.Time `json:"deadline"`
	IsUrgent bool       `json:"is_urgent"`
}

// TodoEditRequest represents a partial todo update
type TodoEditRequest struct {
	Title    *string    `json:"title"`
	Deadline *time.Time `json:"deadline"`
}

const errNotOwned = "Does not exist or the object does not belong to the user"

// todoID parses the :id path parameter. A value that is not a positive
// integer can never match an owned row, so it reports not-found rather than a
// separate error class.
func todoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotOwned})
		return 0, false
	}
	return uint(id), true
}

func todoPayload(todo *domain.Todo) gin.H {
	return gin.H{
		"id":          todo.ID,
		"title":       todo.Title,
		"created_at":  todo.CreatedAt,
		"deadline":    todo.Deadline,
		"is_finished": todo.IsFinished,
		"is_urgent":   todo.IsUrgent,
		"user_id":     todo.UserID,
	}
}

// List handles listing all todos owned by the principal, with the owner's
// name embedded in each item
func (h *TodoHandlers) List(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	todos, err := h.todoSvc.List(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list todos"})
		return
	}

	owner := gin.H{
		"id":      principal.ID,
		"name":    principal.Name,
		"surname": principal.Surname,
	}

	items := make([]gin.H, 0, len(todos))
	for i := range todos {
		items = append(items, gin.H{
			"id":         todos[i].ID,
			"title":      todos[i].Title,
			"created_at": todos[i].CreatedAt,
			"deadline":   todos[i].Deadline,
			"user":       owner,
		})
	}

	c.JSON(http.StatusOK, items)
}

// Retrieve handles getting a single owned todo
func (h *TodoHandlers) Retrieve(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	id, ok := todoID(c)
	if !ok {
		return
	}

	todo, err := h.todoSvc.Retrieve(c.Request.Context(), principal.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotOwned})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo"})
		return
	}

	c.JSON(http.StatusOK, todoPayload(todo))
}

// Create handles todo creation for the principal
func (h *TodoHandlers) Create(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	var req TodoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, bindingErrorDetails(err))
		return
	}

	todo := &domain.Todo{
		Title:    req.Title,
		IsUrgent: req.IsUrgent,
	}
	if req.Deadline != nil {
		todo.Deadline = *req.Deadline
	}

	if err := h.todoSvc.Create(c.Request.Context(), principal.ID, todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, todoPayload(todo))
}

// Edit handles partial update of an owned todo's title and deadline
func (h *TodoHandlers) Edit(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	id, ok := todoID(c)
	if !ok {
		return
	}

	// Ownership is resolved before the body is validated: a request against
	// somebody else's todo gets the same not-found answer whatever it carries.
	if _, err := h.todoSvc.Retrieve(c.Request.Context(), principal.ID, id); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotOwned})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to edit todo"})
		return
	}

	var req TodoEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, bindingErrorDetails(err))
		return
	}

	update := domain.TodoUpdate{Title: req.Title, Deadline: req.Deadline}
	if err := h.todoSvc.Edit(c.Request.Context(), principal.ID, id, update); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotOwned})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to edit todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Edited"})
}

// Finish handles marking an owned todo finished; repeating it is a no-op
func (h *TodoHandlers) Finish(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	id, ok := todoID(c)
	if !ok {
		return
	}

	if err := h.todoSvc.Finish(c.Request.Context(), principal.ID, id); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotOwned})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finish todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo is finished"})
}

// Delete handles removing an owned todo
func (h *TodoHandlers) Delete(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	id, ok := todoID(c)
	if !ok {
		return
	}

	if err := h.todoSvc.Delete(c.Request.Context(), principal.ID, id); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotOwned})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
