package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dilshodmuxtorov/TodoLIstApi/internal/config"
	httpx "github.com/dilshodmuxtorov/TodoLIstApi/internal/http"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/http/handlers"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/http/middleware"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/infrastructure/auth"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/infrastructure/database"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/infrastructure/notifications"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/infrastructure/repositories"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Initialize infrastructure services
	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	notificationSvc := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(gdb)
	todoRepo := repositories.NewTodoRepository(gdb)

	// Initialize services
	otpSvc := services.NewOTPService(notificationSvc, rdb, cfg.OTPResendWindow)
	accountSvc := services.NewAccountService(userRepo, passwordSvc, tokenSvc, otpSvc)
	todoSvc := services.NewTodoService(todoRepo)

	// Initialize handlers and middleware
	userH := handlers.NewUserHandlers(accountSvc)
	todoH := handlers.NewTodoHandlers(todoSvc)
	jwtMW := middleware.NewAuthMW(tokenSvc, userRepo)

	r := httpx.BuildRouter(userH, todoH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
