package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/dilshodmuxtorov/TodoLIstApi/internal/http/handlers"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/http/middleware"
)

func BuildRouter(uh *handlers.UserHandlers, th *handlers.TodoHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	users := r.Group("/users")
	users.POST("/login/", uh.Login)
	users.POST("/create/", uh.Register)

	// Verification runs authenticated: the token issued at registration
	// resolves the principal even while the account is still inactive
	account := users.Group("/").Use(jwtmw.WithJWT())
	account.GET("/myinfo/", uh.MyInfo)
	account.POST("/verify/", uh.Verify)

	todos := r.Group("/todolist").Use(jwtmw.WithJWT())
	todos.GET("/", th.List)
	todos.GET("/:id/", th.Retrieve)
	todos.POST("/create/", th.Create)
	todos.PATCH("/:id/finish/", th.Finish)
	todos.PUT("/:id/edit/", th.Edit)
	todos.DELETE("/:id/delete/", th.Delete)

	return r
}
