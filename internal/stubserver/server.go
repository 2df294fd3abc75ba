// Package stubserver hosts an in-process stand-in for the three TaskHub
// backend services (users, tasks/projects, notifications) behind one Echo
// instance. It exists for local development and for exercising the client
// pipeline end to end in tests; state lives in memory only.
package stubserver

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Server bundles the stub's state and configuration.
type Server struct {
	store     *memStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// New builds the Echo instance with every route of the combined backend
// surface registered.
func New(jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	s := &Server{
		store:     newMemStore(),
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	e.GET("/health", s.handleHealth)

	v1 := e.Group("/api/v1")

	// User service surface.
	v1.POST("/auth/register", s.handleRegister)
	v1.POST("/auth/login", s.handleLogin)
	v1.GET("/users/me", s.handleCurrentUser, auth(jwtSecret))

	// Task service surface.
	authed := v1.Group("", auth(jwtSecret))
	authed.GET("/tasks", s.handleListTasks)
	authed.POST("/tasks", s.handleCreateTask)
	authed.GET("/tasks/:id", s.handleGetTask)
	authed.PUT("/tasks/:id", s.handleUpdateTask)
	authed.GET("/projects", s.handleListProjects)
	authed.POST("/projects", s.handleCreateProject)
	authed.GET("/projects/:id", s.handleGetProject)
	authed.PUT("/projects/:id", s.handleUpdateProject)
	authed.GET("/projects/:id/tasks", s.handleListProjectTasks)

	// Notification service surface.
	authed.GET("/notifications", s.handleListNotifications)
	authed.POST("/notifications/:id/read", s.handleMarkRead)

	return e
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}
