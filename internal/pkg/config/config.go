package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Reaper ReaperConfig
	Redis  RedisConfig
	Retry  RetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`

	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// Server-side bounds for a single reservation transaction. A lock wait that
	// exceeds LockTimeout surfaces as a transient failure.
	LockTimeout      time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"5s"`
	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"15s"`
	IdleTxTimeout    time.Duration `envconfig:"DB_IDLE_TX_TIMEOUT" default:"30s"`

	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string        `envconfig:"JWT_ISSUER"`
	Leeway   time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type ReaperConfig struct {
	Enabled   bool          `envconfig:"REAPER_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"REAPER_INTERVAL" default:"1m"`
	TTL       time.Duration `envconfig:"REAPER_TTL" default:"10m"`
	BatchSize int           `envconfig:"REAPER_BATCH_SIZE" default:"500"`
}

// Redis is optional; an empty Addr disables the distributed reaper lease.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LeaseTTL time.Duration `envconfig:"REAPER_LEASE_TTL" default:"50s"`
}

type RetryConfig struct {
	MaxAttempts int           `envconfig:"RETRY_MAX_ATTEMPTS" default:"3"`
	BaseDelay   time.Duration `envconfig:"RETRY_BASE_DELAY" default:"50ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Reaper.BatchSize <= 0 || c.Reaper.BatchSize > 10000:
		return fmt.Errorf("REAPER_BATCH_SIZE must be within 1..10000, got %d", c.Reaper.BatchSize)
	case c.Reaper.TTL <= 0:
		return fmt.Errorf("REAPER_TTL must be positive, got %s", c.Reaper.TTL)
	case c.Reaper.Enabled && c.Reaper.Interval <= 0:
		return fmt.Errorf("REAPER_INTERVAL must be positive, got %s", c.Reaper.Interval)
	case c.Retry.MaxAttempts < 1:
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:             "localhost",
			Port:             "15433", // Test DB port
			User:             "test",
			Password:         "test",
			DBName:           "test_db",
			SSLMode:          "disable",
			TimeZone:         "Asia/Tokyo",
			MaxConns:         30,
			MinConns:         1,
			MaxConnLifetime:  time.Hour,
			LockTimeout:      5 * time.Second,
			StatementTimeout: 15 * time.Second,
			IdleTxTimeout:    30 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: time.Hour,
		},
		Reaper: ReaperConfig{
			// The e2e suites drive reaper runs explicitly.
			Enabled:   false,
			Interval:  time.Minute,
			TTL:       10 * time.Minute,
			BatchSize: 500,
		},
		Redis: RedisConfig{
			LeaseTTL: 50 * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			BaseDelay:   10 * time.Millisecond,
		},
	}
}
