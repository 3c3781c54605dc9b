package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"redcross/docs"
	"redcross/internal/auth"
	"redcross/internal/cache"
	"redcross/internal/chatbot"
	"redcross/internal/config"
	"redcross/internal/db"
	"redcross/internal/handler"
	"redcross/internal/model"
	"redcross/internal/notification"
	"redcross/internal/receipt"
	"redcross/internal/repository"
	"redcross/internal/router"
	"redcross/internal/service"
)

// @title Indian Red Cross Society Tripura API
// @version 1.0
// @description Volunteer, membership and contact registration with admin moderation, receipts, analytics and a chatbot.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Connect(ctx, db.NewMySQL, cfg.MySQLDSN, cfg.DBRetryDelay, logger)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		for _, table := range []interface{}{&model.Volunteer{}, &model.Member{}, &model.Contact{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warn("drop table", zap.Error(err))
			}
		}
	}

	if err := gormDB.AutoMigrate(
		&model.Volunteer{},
		&model.Member{},
		&model.Contact{},
		&model.User{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Notifications
	transport := notification.NewTransport(cfg.Email, logger)
	mailer := notification.NewMailer(transport, cfg.Email.From, config.NewCircuitBreaker("Email", logger), logger)
	dispatcher := notification.NewDispatcher(mailer, cfg.Email.AdminAddress, cfg.NotifyWorkers, cfg.NotifyQueueSize, logger)
	defer dispatcher.Close()

	// Chatbot
	var llm chatbot.LLM
	if cfg.GeminiAPIKey != "" {
		client, err := chatbot.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini client init failed, chatbot will use the knowledge base", zap.Error(err))
		} else {
			llm = client
			logger.Info("gemini chatbot enabled", zap.String("model", cfg.GeminiModel))
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, chatbot will use the knowledge base")
	}
	responder := chatbot.NewResponder(llm, config.NewCircuitBreaker("Gemini", logger), logger)

	// Initialize repositories
	volunteerRepo := repository.NewVolunteerRepository(gormDB)
	memberRepo := repository.NewMemberRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	analyticsRepo := repository.NewAnalyticsRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	portalURL := cfg.FrontendURL + "/admin/login"

	// Initialize services
	volunteerService := service.NewVolunteerService(volunteerRepo, dispatcher, cacheClient, portalURL, logger)
	memberService := service.NewMemberService(memberRepo, receipt.NewGenerator(), dispatcher, cacheClient, portalURL, logger)
	contactService := service.NewContactService(contactRepo, dispatcher, cacheClient, portalURL, logger)
	authService := service.NewAuthService(userRepo, jwtService, logger)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	e := echo.New()
	router.Register(e, cfg, router.Handlers{
		Volunteer: handler.NewVolunteerHandler(volunteerService),
		Member:    handler.NewMemberHandler(memberService),
		Contact:   handler.NewContactHandler(contactService),
		Chatbot:   handler.NewChatbotHandler(responder),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Auth:      handler.NewAuthHandler(authService),
		Health:    handler.NewHealthHandler(dbPinger(gormDB), cacheClient, cfg.Version),
	}, jwtService, logger)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	logger.Info("swagger documentation available", zap.String("url", swaggerURL(cfg)))

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func dbPinger(gormDB *gorm.DB) handler.PingFunc {
	return func(ctx context.Context) error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func swaggerURL(cfg *config.Config) string {
	switch {
	case cfg.SwaggerHost == "":
		return "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	case strings.HasPrefix(cfg.SwaggerHost, "http://"), strings.HasPrefix(cfg.SwaggerHost, "https://"):
		return cfg.SwaggerHost + "/swagger/index.html"
	default:
		return "http://" + cfg.SwaggerHost + "/swagger/index.html"
	}
}
