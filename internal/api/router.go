package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/practicum/employee-model/docs"
	"github.com/practicum/employee-model/internal/api/handler"
	"github.com/practicum/employee-model/internal/api/middleware"
	"github.com/practicum/employee-model/internal/core/ports"
)

// RouterConfig carries the dependencies of NewRouter.
type RouterConfig struct {
	Service ports.StaffService
	Logger  zerolog.Logger
	// JWTSecret enables bearer auth on /v1 when non-empty.
	JWTSecret string
	// Registerer receives the HTTP metrics. Nil skips the metrics middleware.
	Registerer prometheus.Registerer
	// Summons queues summon requests. Nil summons synchronously.
	Summons ports.SummonQueue
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	if cfg.Registerer != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "staff",
			Registerer: cfg.Registerer,
		}))
	}

	// --- Public routes ---
	healthHandler := handler.NewHealthHandler(cfg.Service)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Roster routes ---
	staffHandler := handler.NewStaffHandler(cfg.Service, cfg.Summons)

	v1 := e.Group("/v1")
	readers, writers := []echo.MiddlewareFunc{}, []echo.MiddlewareFunc{}
	if cfg.JWTSecret != "" {
		v1.Use(middleware.Auth(cfg.JWTSecret))
		readers = append(readers, middleware.RBAC(middleware.RoleViewer, middleware.RoleHR))
		writers = append(writers, middleware.RBAC(middleware.RoleHR))
	} else {
		cfg.Logger.Warn().Msg("JWT_SECRET is empty, /v1 routes are served without authentication")
	}

	v1.GET("/currency/convert", staffHandler.Convert, readers...)
	v1.GET("/staff", staffHandler.List, readers...)
	v1.GET("/staff/:id", staffHandler.Get, readers...)

	v1.POST("/staff", staffHandler.Hire, writers...)
	v1.PATCH("/staff/:id/age", staffHandler.UpdateAge, writers...)
	v1.PATCH("/staff/:id/salary", staffHandler.UpdateSalary, writers...)
	v1.POST("/staff/:id/currency", staffHandler.ChangeCurrency, writers...)
	v1.POST("/staff/:id/premium", staffHandler.GrantPremium, writers...)
	v1.POST("/staff/:id/summon", staffHandler.Summon, writers...)
	v1.POST("/managers/:id/engineers", staffHandler.AssignEngineer, writers...)
	v1.POST("/managers/:id/salary", staffHandler.ChangeManagerSalary, writers...)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
