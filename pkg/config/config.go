package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	API         APIConfig
	DeviceCache DeviceCacheConfig
	MockAPI     MockAPIConfig
	JWT         JWTConfig
	Password    PasswordConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GROCERLY_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"GROCERLY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GROCERLY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the client boundary at the remote storefront API.
type APIConfig struct {
	BaseURL string        `envconfig:"GROCERLY_API_BASE_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"GROCERLY_API_TIMEOUT" default:"30s"`
}

// DeviceCacheConfig locates the on-device sqlite file holding the cached
// user identifier.
type DeviceCacheConfig struct {
	Path string `envconfig:"GROCERLY_DEVICE_CACHE_PATH" default:"grocerly-device.db"`
}

// MockAPIConfig configures the local stand-in for the remote storefront API.
type MockAPIConfig struct {
	Port      string `envconfig:"GROCERLY_MOCKAPI_PORT" default:"8080"`
	DBDSN     string `envconfig:"GROCERLY_MOCKAPI_DB_DSN"`
	UseSQLite bool   `envconfig:"GROCERLY_MOCKAPI_USE_SQLITE" default:"true"`
	Seed      bool   `envconfig:"GROCERLY_MOCKAPI_SEED" default:"true"`
}

type JWTConfig struct {
	Secret            string `envconfig:"GROCERLY_JWT_SECRET" default:"dev-only-secret"`
	Issuer            string `envconfig:"GROCERLY_JWT_ISSUER" default:"grocerly-mockapi"`
	ExpirationMinutes int    `envconfig:"GROCERLY_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// TokenTTL returns the access token TTL configured in minutes.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GROCERLY_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GROCERLY_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GROCERLY_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GROCERLY_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GROCERLY_ARGON_KEY_LEN" default:"32"`
}
