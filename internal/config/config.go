package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	UserServiceURL         string `env:"USER_SERVICE_URL,         default=http://localhost:8001"`
	TaskServiceURL         string `env:"TASK_SERVICE_URL,         default=http://localhost:8002"`
	NotificationServiceURL string `env:"NOTIFICATION_SERVICE_URL, default=http://localhost:8003"`

	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StateFile is the durable token store. Empty selects
	// $HOME/.taskhub/state.json at startup.
	StateFile string `env:"STATE_FILE"`

	// LoginGracePeriod is the window after login during which 401s are
	// treated as races rather than session expiry.
	LoginGracePeriod time.Duration `env:"LOGIN_GRACE_PERIOD, default=5s"`

	Redis RedisConfig
	Stub  StubConfig
}

// RedisConfig selects the optional Redis-backed durable tier.
type RedisConfig struct {
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int    `env:"REDIS_DB,      default=0"`
}

// StubConfig configures the local stub of the three backend services.
type StubConfig struct {
	Port      string        `env:"STUB_PORT,       default=8080"`
	JWTSecret string        `env:"STUB_JWT_SECRET, default=dev-secret"`
	TokenTTL  time.Duration `env:"STUB_TOKEN_TTL,  default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
