package configuration

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/commerce-admin/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}
	if len(existingFiles) == 0 {
		return 0, nil
	}
	return len(existingFiles), godotenv.Load(existingFiles...)
}

type APIOptions struct {
	URL     string        `env:"API_URL" envDefault:"http://localhost:8000/graphql/"`
	Token   string        `env:"API_TOKEN"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	// Validate operation documents against the bundled schema on startup.
	ValidateOperations bool `env:"API_VALIDATE_OPERATIONS" envDefault:"true"`
}

func (a *APIOptions) Validate() error {
	u, err := url.Parse(strings.TrimSpace(a.URL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API_URL=%q", a.URL)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", a.Timeout)
	}
	return nil
}

type LogOptions struct {
	Level      string `env:"LOG_LEVEL" envDefault:"error"`
	Path       string `env:"LOG_PATH" envDefault:"./logs/app.log"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"commerce-admin"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type RateLimitOptions struct {
	Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	MutationRPM int    `env:"RATE_LIMIT_MUTATION_RPM" envDefault:"120"`
	Storage     string `env:"RATE_LIMIT_STORAGE" envDefault:"memory"` // memory or redis
}

// Validate checks the rate limit configuration for errors
func (r *RateLimitOptions) Validate(redisURL string) error {
	if r.MutationRPM < 0 {
		return fmt.Errorf("rate limit MutationRPM must be non-negative, got %d", r.MutationRPM)
	}
	if r.Storage != "memory" && r.Storage != "redis" {
		return fmt.Errorf("rate limit Storage must be 'memory' or 'redis', got '%s'", r.Storage)
	}
	if r.Storage == "redis" && redisURL == "" {
		return fmt.Errorf("rate limit Storage 'redis' requires REDIS_URL")
	}
	return nil
}

type StorageOptions struct {
	// FilterPresets selects where saved list filters live: memory or redis.
	FilterPresets string        `env:"FILTER_PRESETS_STORAGE" envDefault:"memory"`
	MenuCache     string        `env:"MENU_CACHE_STORAGE" envDefault:"memory"`
	MenuCacheTTL  time.Duration `env:"MENU_CACHE_TTL" envDefault:"5m"`
}

func (s *StorageOptions) Validate(redisURL string) error {
	for name, v := range map[string]string{
		"FILTER_PRESETS_STORAGE": s.FilterPresets,
		"MENU_CACHE_STORAGE":     s.MenuCache,
	} {
		switch v {
		case "memory":
		case "redis":
			if redisURL == "" {
				return fmt.Errorf("%s=redis requires REDIS_URL", name)
			}
		default:
			return fmt.Errorf("invalid %s=%q (expected memory|redis)", name, v)
		}
	}
	if s.MenuCacheTTL < 0 {
		return fmt.Errorf("MENU_CACHE_TTL must be non-negative, got %s", s.MenuCacheTTL)
	}
	return nil
}

// OpsGuardOptions protect operational endpoints such as metrics in
// production. Any one of the configured credentials grants access.
type OpsGuardOptions struct {
	Enabled       bool   `env:"OPS_GUARD_ENABLED" envDefault:"true"`
	CIDRs         string `env:"OPS_GUARD_CIDRS" envDefault:""`
	Token         string `env:"OPS_GUARD_TOKEN" envDefault:""`
	BasicAuthUser string `env:"OPS_GUARD_BASIC_AUTH_USER" envDefault:""`
	BasicAuthPass string `env:"OPS_GUARD_BASIC_AUTH_PASS" envDefault:""`
}

type Configuration struct {
	API           APIOptions
	Log           LogOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions
	RateLimit     RateLimitOptions
	Storage       StorageOptions
	OpsGuard      OpsGuardOptions

	RedisURL         string `env:"REDIS_URL"`
	ServerPort       int    `env:"PORT" envDefault:"3200"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string `env:"-"`
	Domain           string `env:"DOMAIN" envDefault:"localhost"`
	Origin           string `env:"ORIGIN" envDefault:"http://localhost:3200"`
	PageSize         int    `env:"PAGE_SIZE" envDefault:"20"`
	MaxPageSize      int    `env:"MAX_PAGE_SIZE" envDefault:"100"`
	// Header carrying the request id; a uuid is generated when it is absent.
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// Header carrying the client IP; request.RemoteAddr is used when it is absent.
	RealIPHeader   string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`
	FlashCookieKey string `env:"FLASH_COOKIE_KEY" envDefault:"flash"`
	// Signs the flash cookie; a random key is generated when empty.
	SessionKey        string `env:"SESSION_KEY"`
	SupportedLanguage string `env:"SUPPORTED_LANGUAGES" envDefault:"en,zh"`

	logFile *logging.RotatingFile
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.Log.Level {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production {
		return "https"
	}
	return "http"
}

func (c *Configuration) Languages() []string {
	var out []string
	for _, code := range strings.Split(c.SupportedLanguage, ",") {
		if code = strings.TrimSpace(code); code != "" {
			out = append(out, code)
		}
	}
	return out
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := c.validate(); err != nil {
		return err
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), logging.FileOptions{
		Path:       c.Log.Path,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}
	if os.Getenv("ORIGIN") == "" {
		if c.GoAppEnvironment == "development" {
			c.Origin = fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Domain, c.ServerPort)
		} else {
			c.Origin = fmt.Sprintf("%s://%s", c.Scheme(), c.Domain)
		}
	}
	return nil
}

func (c *Configuration) validate() error {
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api configuration error: %w", err)
	}
	if err := c.RateLimit.Validate(c.RedisURL); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}
	if err := c.Storage.Validate(c.RedisURL); err != nil {
		return fmt.Errorf("storage configuration error: %w", err)
	}
	if c.PageSize <= 0 || c.PageSize > c.MaxPageSize {
		return fmt.Errorf("invalid PAGE_SIZE=%d (expected 1..%d)", c.PageSize, c.MaxPageSize)
	}
	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
