package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	DB        DBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Weather   WeatherConfig
}

type AuthConfig struct {
	AccessSecret  string        `env:"JWT_SECRET"`
	RefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL,  default=1h"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
	BcryptCost    int           `env:"BCRYPT_COST,       default=10"`
}

type DBConfig struct {
	User string `env:"DB_USER, default=root"`
	Pass string `env:"DB_PASS"`
	Host string `env:"DB_HOST, default=localhost"`
	Port string `env:"DB_PORT, default=3306"`
	Name string `env:"DB_NAME, default=booking"`
}

// RedisConfig is optional: an empty Addr keeps all Redis-backed features
// (rate-limit counters, readiness probe) on their in-process fallbacks.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type RateLimitConfig struct {
	Enabled bool          `env:"RATE_LIMIT_ENABLED, default=true"`
	Window  time.Duration `env:"RATE_LIMIT_WINDOW,  default=15m"`
	Max     int64         `env:"RATE_LIMIT_MAX,     default=100"`
}

type WeatherConfig struct {
	APIKey string `env:"OPENWEATHER_API_KEY"`
	City   string `env:"WEATHER_CITY, default=Mondorf"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
