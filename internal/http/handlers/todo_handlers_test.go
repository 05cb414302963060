package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/mocks"
)

func setupTodoRouter(h *TodoHandlers, principal *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	todos := r.Group("/todolist", withPrincipal(principal))
	todos.GET("/", h.List)
	todos.GET("/:id/", h.Retrieve)
	todos.POST("/create/", h.Create)
	todos.PATCH("/:id/finish/", h.Finish)
	todos.PUT("/:id/edit/", h.Edit)
	todos.DELETE("/:id/delete/", h.Delete)
	return r
}

var todoPrincipal = &domain.User{ID: 7, Name: "Ada", Surname: "Lovelace"}

// doList issues the list request directly because the endpoint returns a JSON
// array rather than an object.
func doList(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/todolist/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTodoHandlers_List(t *testing.T) {
	todoSvc := mocks.NewMockTodoService()
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	todoSvc.ListFunc = func(ctx context.Context, ownerID uint) ([]domain.Todo, error) {
		if ownerID != 7 {
			t.Errorf("expected owner 7, got %d", ownerID)
		}
		return []domain.Todo{
			{ID: 1, Title: "buy milk", CreatedAt: created, Deadline: created, UserID: 7},
			{ID: 2, Title: "write report", CreatedAt: created, Deadline: created.Add(time.Hour), UserID: 7},
		}, nil
	}

	r := setupTodoRouter(NewTodoHandlers(todoSvc), todoPrincipal)
	w := doList(t, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0]["title"] != "buy milk" {
		t.Errorf("unexpected first item: %v", items[0])
	}

	owner, ok := items[0]["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected embedded owner, got %v", items[0])
	}
	if owner["name"] != "Ada" || owner["surname"] != "Lovelace" {
		t.Errorf("unexpected owner payload: %v", owner)
	}
}

func TestTodoHandlers_ListEmpty(t *testing.T) {
	r := setupTodoRouter(NewTodoHandlers(mocks.NewMockTodoService()), todoPrincipal)
	w := doList(t, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty array, got %v", items)
	}
}

func TestTodoHandlers_Retrieve(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockTodoService)
		expectedStatus int
	}{
		{
			name: "owned todo",
			path: "/todolist/1/",
			setupMocks: func(svc *mocks.MockTodoService) {
				svc.RetrieveFunc = func(ctx context.Context, ownerID, todoID uint) (*domain.Todo, error) {
					return &domain.Todo{ID: 1, Title: "buy milk", IsFinished: true, UserID: ownerID}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not owned or absent",
			path:           "/todolist/1/",
			setupMocks:     func(svc *mocks.MockTodoService) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			path:           "/todolist/abc/",
			setupMocks:     func(svc *mocks.MockTodoService) {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todoSvc := mocks.NewMockTodoService()
			tt.setupMocks(todoSvc)

			r := setupTodoRouter(NewTodoHandlers(todoSvc), todoPrincipal)
			w, body := doJSON(t, r, http.MethodGet, tt.path, nil)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK {
				if body["title"] != "buy milk" || body["is_finished"] != true {
					t.Errorf("unexpected payload: %v", body)
				}
			} else {
				if _, ok := body["error"]; !ok {
					t.Errorf("expected error body, got %v", body)
				}
			}
		})
	}
}

func TestTodoHandlers_Create(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		todoSvc := mocks.NewMockTodoService()
		var createdTodo *domain.Todo
		todoSvc.CreateFunc = func(ctx context.Context, ownerID uint, todo *domain.Todo) error {
			todo.ID = 1
			todo.UserID = ownerID
			todo.CreatedAt = time.Now()
			if todo.Deadline.IsZero() {
				todo.Deadline = todo.CreatedAt
			}
			createdTodo = todo
			return nil
		}

		r := setupTodoRouter(NewTodoHandlers(todoSvc), todoPrincipal)
		w, body := doJSON(t, r, http.MethodPost, "/todolist/create/", map[string]interface{}{"title": "buy milk"})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body: %s)", w.Code, w.Body.String())
		}
		if createdTodo.UserID != 7 {
			t.Errorf("expected owner 7, got %d", createdTodo.UserID)
		}
		if body["title"] != "buy milk" || body["is_urgent"] != false {
			t.Errorf("unexpected payload: %v", body)
		}
	})

	t.Run("explicit deadline and urgency", func(t *testing.T) {
		todoSvc := mocks.NewMockTodoService()
		var createdTodo *domain.Todo
		todoSvc.CreateFunc = func(ctx context.Context, ownerID uint, todo *domain.Todo) error {
			createdTodo = todo
			return nil
		}

		r := setupTodoRouter(NewTodoHandlers(todoSvc), todoPrincipal)
		payload := map[string]interface{}{
			"title":     "file taxes",
			"deadline":  "2026-12-31T23:59:00Z",
			"is_urgent": true,
		}
		w, _ := doJSON(t, r, http.MethodPost, "/todolist/create/", payload)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body: %s)", w.Code, w.Body.String())
		}
		want := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
		if !createdTodo.Deadline.Equal(want) {
			t.Errorf("expected deadline %v, got %v", want, createdTodo.Deadline)
		}
		if !createdTodo.IsUrgent {
			t.Error("expected urgent flag set")
		}
	})

	t.Run("missing title", func(t *testing.T) {
		r := setupTodoRouter(NewTodoHandlers(mocks.NewMockTodoService()), todoPrincipal)
		w, body := doJSON(t, r, http.MethodPost, "/todolist/create/", map[string]interface{}{"is_urgent": true})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		details, ok := body["details"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected details map, got %v", body)
		}
		if _, ok := details["title"]; !ok {
			t.Errorf("expected details to name title, got %v", details)
		}
	})
}

func TestTodoHandlers_Edit(t *testing.T) {
	ownedTodo := func(svc *mocks.MockTodoService) {
		svc.RetrieveFunc = func(ctx context.Context, ownerID, todoID uint) (*domain.Todo, error) {
			return &domain.Todo{ID: todoID, Title: "buy milk", UserID: ownerID}, nil
		}
	}

	t.Run("partial update", func(t *testing.T) {
		todoSvc := mocks.NewMockTodoService()
		ownedTodo(todoSvc)
		var gotUpdate domain.TodoUpdate
		todoSvc.EditFunc = func(ctx context.Context, ownerID, todoID uint, update domain.TodoUpdate) error {
			gotUpdate = update
			return nil
		}

		r := setupTodoRouter(NewTodoHandlers(todoSvc), todoPrincipal)
		w, body := doJSON(t, r, http.MethodPut, "/todolist/1/edit/", map[string]interface{}{"title": "new title"})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
		}
		if body["message"] != "Edited" {
			t.Errorf("unexpected body: %v", body)
		}
		if gotUpdate.Title == nil || *gotUpdate.Title != "new title" {
			t.Errorf("expected title update, got %+v", gotUpdate)
		}
		if gotUpdate.Deadline != nil {
			t.Error("deadline must stay untouched when omitted")
		}
	})

	t.Run("not owned", func(t *testing.T) {
		r := setupTodoRouter(NewTodoHandlers(mocks.NewMockTodoService()), todoPrincipal)
		w, _ := doJSON(t, r, http.MethodPut, "/todolist/1/edit/", map[string]interface{}{"title": "hijack"})

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed deadline on owned todo", func(t *testing.T) {
		todoSvc := mocks.NewMockTodoService()
		ownedTodo(todoSvc)

		r := setupTodoRouter(NewTodoHandlers(todoSvc), todoPrincipal)
		w, _ := doJSON(t, r, http.MethodPut, "/todolist/1/edit/", map[string]interface{}{"deadline": "next tuesday"})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ownership outranks body validation", func(t *testing.T) {
		r := setupTodoRouter(NewTodoHandlers(mocks.NewMockTodoService()), todoPrincipal)
		w, body := doJSON(t, r, http.MethodPut, "/todolist/1/edit/", map[string]interface{}{"deadline": "next tuesday"})

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body["error"] != errNotOwned {
			t.Errorf("unexpected error body: %v", body)
		}
	})
}

func TestTodoHandlers_Finish(t *testing.T) {
	t.Run("finish and refinish both succeed", func(t *testing.T) {
		todoSvc := mocks.NewMockTodoService()
		calls := 0
		todoSvc.FinishFunc = func(ctx context.Context, ownerID, todoID uint) error {
			calls++
			return nil
		}

		r := setupTodoRouter(NewTodoHandlers(todoSvc), todoPrincipal)
		for i := 0; i < 2; i++ {
			w, body := doJSON(t, r, http.MethodPatch, "/todolist/1/finish/", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("call %d: expected 200, got %d", i+1, w.Code)
			}
			if body["message"] != "Todo is finished" {
				t.Errorf("call %d: unexpected body: %v", i+1, body)
			}
		}
		if calls != 2 {
			t.Errorf("expected 2 service calls, got %d", calls)
		}
	})

	t.Run("not owned", func(t *testing.T) {
		r := setupTodoRouter(NewTodoHandlers(mocks.NewMockTodoService()), todoPrincipal)
		w, _ := doJSON(t, r, http.MethodPatch, "/todolist/1/finish/", nil)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTodoHandlers_Delete(t *testing.T) {
	t.Run("owned todo removed", func(t *testing.T) {
		todoSvc := mocks.NewMockTodoService()
		todoSvc.DeleteFunc = func(ctx context.Context, ownerID, todoID uint) error {
			return nil
		}

		r := setupTodoRouter(NewTodoHandlers(todoSvc), todoPrincipal)
		w, body := doJSON(t, r, http.MethodDelete, "/todolist/1/delete/", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body["message"] != "Deleted successfully" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("not owned", func(t *testing.T) {
		r := setupTodoRouter(NewTodoHandlers(mocks.NewMockTodoService()), todoPrincipal)
		w, body := doJSON(t, r, http.MethodDelete, "/todolist/1/delete/", nil)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body["error"] != errNotOwned {
			t.Errorf("unexpected error body: %v", body)
		}
	})
}
