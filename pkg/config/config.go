package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "CAREWELL"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Config is built once at process start and handed to every component.
type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Cookie        CookieConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CAREWELL_APP_ENV" default:"development"`
	Port         string `envconfig:"CAREWELL_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CAREWELL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CAREWELL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CAREWELL_DB_DSN"`
	Driver string `envconfig:"CAREWELL_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"CAREWELL_DB_HOST"`
	Port     int    `envconfig:"CAREWELL_DB_PORT" default:"5432"`
	User     string `envconfig:"CAREWELL_DB_USER"`
	Password string `envconfig:"CAREWELL_DB_PASSWORD"`
	Name     string `envconfig:"CAREWELL_DB_NAME"`
	SSLMode  string `envconfig:"CAREWELL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CAREWELL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CAREWELL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CAREWELL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CAREWELL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either CAREWELL_DB_DSN or host/user/name settings are required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"CAREWELL_REDIS_URL"`
	Address      string        `envconfig:"CAREWELL_REDIS_ADDR"`
	Password     string        `envconfig:"CAREWELL_REDIS_PASSWORD"`
	DB           int           `envconfig:"CAREWELL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CAREWELL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CAREWELL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CAREWELL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CAREWELL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CAREWELL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"CAREWELL_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CAREWELL_JWT_ISSUER" default:"carewell"`
	ExpirationMinutes int    `envconfig:"CAREWELL_JWT_EXPIRATION_MINUTES" default:"43200"`
}

// Expiration returns the configured token lifetime (30 days by default).
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type CookieConfig struct {
	Name   string `envconfig:"CAREWELL_COOKIE_NAME" default:"token"`
	Domain string `envconfig:"CAREWELL_COOKIE_DOMAIN"`
	Secure bool   `envconfig:"CAREWELL_COOKIE_SECURE" default:"false"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CAREWELL_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CAREWELL_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CAREWELL_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CAREWELL_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CAREWELL_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"CAREWELL_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"CAREWELL_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"CAREWELL_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"CAREWELL_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"CAREWELL_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"CAREWELL_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CAREWELL_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CAREWELL_AUTO_MIGRATE" default:"false"`
}
