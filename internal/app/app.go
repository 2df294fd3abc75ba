// Package app wires the client stack: storage tiers, gateway, service
// bindings, use cases, session, and resource stores.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/taskhub/taskhub-client/internal/client"
	"github.com/taskhub/taskhub-client/internal/config"
	"github.com/taskhub/taskhub-client/internal/core/ports"
	"github.com/taskhub/taskhub-client/internal/core/service"
	"github.com/taskhub/taskhub-client/internal/core/store"
	"github.com/taskhub/taskhub-client/internal/infrastructure/storage"
)

// App is the composed client. One instance per process; the Session lives as
// long as the App does.
type App struct {
	Session       *service.Session
	Users         ports.UserAPI
	Tasks         *store.TaskStore
	Projects      *store.ProjectStore
	Notifications *store.NotificationStore
}

// New builds the full stack from configuration. nav receives the redirect
// when the gateway declares the session expired.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, nav ports.Navigator) (*App, error) {
	durable, err := durableTier(ctx, cfg)
	if err != nil {
		return nil, err
	}
	scoped := storage.NewMemory()

	gw := client.NewGateway(client.Options{
		Durable:     durable,
		Session:     scoped,
		Navigator:   nav,
		Logger:      log,
		GracePeriod: cfg.LoginGracePeriod,
	})

	users := service.NewAuthUseCases(client.NewUsersClient(gw, cfg.UserServiceURL))
	tasks := service.NewTaskUseCases(client.NewTasksClient(gw, cfg.TaskServiceURL))
	projects := service.NewProjectUseCases(client.NewProjectsClient(gw, cfg.TaskServiceURL))
	notifications := service.NewNotificationUseCases(client.NewNotificationsClient(gw, cfg.NotificationServiceURL))

	return &App{
		Session:       service.NewSession(users, durable, scoped, log),
		Users:         users,
		Tasks:         store.NewTaskStore(tasks),
		Projects:      store.NewProjectStore(projects),
		Notifications: store.NewNotificationStore(notifications),
	}, nil
}

// durableTier selects the durable storage backend: Redis when enabled, a
// state file otherwise.
func durableTier(ctx context.Context, cfg *config.Config) (ports.KeyValue, error) {
	if cfg.Redis.Enabled {
		rdb, err := storage.ConnectRedis(ctx, storage.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis tier: %w", err)
		}
		return storage.NewRedis(rdb, 0), nil
	}

	path := cfg.StateFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state file: %w", err)
		}
		path = filepath.Join(home, ".taskhub", "state.json")
	}
	return storage.NewFile(path)
}
