package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"redcross/internal/auth"
	"redcross/internal/config"
	apperrors "redcross/internal/errors"
	"redcross/internal/handler"
	"redcross/internal/metrics"
	"redcross/internal/model"
)

const (
	publicRate  = rate.Limit(20)
	publicBurst = 40
	bodyLimit   = "1M"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Volunteer *handler.VolunteerHandler
	Member    *handler.MemberHandler
	Contact   *handler.ContactHandler
	Chatbot   *handler.ChatbotHandler
	Analytics *handler.AnalyticsHandler
	Auth      *handler.AuthHandler
	Health    *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers, jwtService *auth.JWTService, logger *zap.Logger) {
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(metrics.Middleware())

	e.GET("/health", h.Health.Health)
	e.GET("/health/ready", h.Health.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	limited := publicLimiter()
	bearer := auth.Middleware(jwtService)
	admin := []echo.MiddlewareFunc{bearer, auth.RequireRole(model.RoleAdmin)}

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register, limited)
	api.POST("/auth/login", h.Auth.Login, limited)
	api.POST("/volunteers", h.Volunteer.Create, limited)
	api.POST("/members", h.Member.Create, limited)
	api.GET("/members/:id/receipt", h.Member.DownloadReceipt)
	api.POST("/contact", h.Contact.Create, limited)
	api.POST("/chatbot/message", h.Chatbot.Message, limited)

	// Any authenticated user
	api.GET("/auth/profile", h.Auth.Profile, bearer)

	// Admin routes
	volunteers := api.Group("/volunteers", admin...)
	volunteers.GET("", h.Volunteer.List)
	volunteers.GET("/:id", h.Volunteer.Get)
	volunteers.PATCH("/:id/status", h.Volunteer.UpdateStatus)
	volunteers.DELETE("/:id", h.Volunteer.Delete)

	members := api.Group("/members", admin...)
	members.GET("", h.Member.List)
	members.GET("/:id", h.Member.Get)
	members.PATCH("/:id/status", h.Member.UpdateStatus)
	members.DELETE("/:id", h.Member.Delete)

	contacts := api.Group("/contact", admin...)
	contacts.GET("", h.Contact.List)
	contacts.GET("/:id", h.Contact.Get)
	contacts.PATCH("/:id/status", h.Contact.UpdateStatus)

	analytics := api.Group("/analytics", admin...)
	analytics.GET("/dashboard", h.Analytics.Dashboard)
	analytics.GET("/volunteers", h.Analytics.Volunteers)
	analytics.GET("/members", h.Analytics.Members)
}

func publicLimiter() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      publicRate,
			Burst:     publicBurst,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{
				Message: "Too many requests, please try again later",
				Code:    "RATE_LIMITED",
			})
		},
	})
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
