package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"

	_ "msgboard/docs" // swagger docs

	"msgboard/internal/auth"
	"msgboard/internal/cache"
	"msgboard/internal/config"
	"msgboard/internal/db"
	"msgboard/internal/handler"
	"msgboard/internal/repository"
	"msgboard/internal/router"
	"msgboard/internal/service"
	"msgboard/internal/view"
)

// @title Message Board
// @version 1.0
// @description Users, their messages and tags, with session login.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	gormDB, err := db.Open(cfg)
	if err != nil {
		fatal("database init", err)
	}

	if cfg.ResetDB {
		slog.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			slog.Warn("drop tables", "error", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		fatal("auto-migrate", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		slog.Warn("redis unreachable, logins will fail until it is up", "addr", cfg.RedisAddr, "error", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	sessionStore := auth.NewRedisSessionStore(cacheClient)
	sessions := auth.NewSessions(tokens, sessionStore, cfg.SessionCookie, cfg.SessionTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher)
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(userRepo, messageRepo)
	tagService := service.NewTagService(tagRepo, messageRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, authService)
	authHandler := handler.NewAuthHandler(authService, sessions)
	messageHandler := handler.NewMessageHandler(messageService, userService)
	tagHandler := handler.NewTagHandler(tagService)

	renderer, err := view.New()
	if err != nil {
		fatal("templates", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	router.Register(
		e,
		sessions,
		userHandler,
		authHandler,
		messageHandler,
		tagHandler,
	)

	slog.Info("swagger documentation available", "url", swaggerURL(cfg))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fatal("server start", err)
	}
}

func swaggerURL(cfg *config.Config) string {
	if cfg.SwaggerHost == "" {
		return "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	host := cfg.SwaggerHost
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
