package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port               int           `envconfig:"PORT" default:"8080"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL        string        `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret          string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL           time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	SecureCookies      bool          `envconfig:"SECURE_COOKIES" default:"false"`
	BcryptCost         int           `envconfig:"BCRYPT_COST" default:"10"`
	DBRetryAttempts    int           `envconfig:"DB_RETRY_ATTEMPTS" default:"3"`
	DBRetryBackoff     time.Duration `envconfig:"DB_RETRY_BACKOFF" default:"2s"`
	LoginRatePerMinute int           `envconfig:"LOGIN_RATE_PER_MINUTE" default:"10"`
	Version            string        `envconfig:"VERSION" default:"dev"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
