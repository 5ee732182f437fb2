// Package config loads application settings from environment variables,
// applying defaults and validation. It covers the HTTP server, logging, the
// record store, the chat assistant, edge protection and observability.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry tracing settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
	DriverNone   = "none"
)

// StoreConfig selects and tunes the record store.
type StoreConfig struct {
	Driver         string        // mongo|sqlite|none
	MongoURI       string        // MONGO_URI
	MongoDatabase  string        // MONGO_DATABASE; empty means "from the URI"
	SQLitePath     string        // DB_PATH
	ConnectTimeout time.Duration // server selection + ping
	WriteTimeout   time.Duration // per background insert
}

// AssistantConfig selects the chatbot backend.
type AssistantConfig struct {
	Provider      string // rules|openai|ollama
	OpenAIKey     string
	OpenAIBaseURL string // empty keeps the client default; any OpenAI-compatible URL works
	OpenAIModel   string
	OllamaBaseURL string
	OllamaModel   string
	Timeout       time.Duration
	MaxWords      int
}

// LogConfig selects log output.
type LogConfig struct {
	Level     string // debug|info|warn|error|fatal|panic
	Pretty    bool   // console writer instead of JSON
	File      string // optional rotating log file
	MaxSizeMB int
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration // covers PDF export
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	GinMode           string // debug|release|test
	Debug             bool   // APP_DEBUG forces gin debug mode
	SecretKey         string

	Log            LogConfig
	SwaggerEnabled bool

	Store     StoreConfig
	Assistant AssistantConfig

	// Rate limiting
	RateRPS   float64
	RateBurst int

	CORS     CORSConfig
	Security SecurityConfig

	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		Port:              getenv("PORT", "5000"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),
		Debug:             getbool("APP_DEBUG", false),
		SecretKey:         getenv("SECRET_KEY", "health-toolkit-secret-key-2024"),

		Log: LogConfig{
			Level:     strings.ToLower(getenv("LOG_LEVEL", "info")),
			Pretty:    getbool("LOG_PRETTY", false),
			File:      getenv("LOG_FILE", ""),
			MaxSizeMB: getint("LOG_MAX_SIZE_MB", 50),
		},
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),

		Store: StoreConfig{
			Driver:         strings.ToLower(getenv("STORE_DRIVER", DriverMongo)),
			MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017/holistiq"),
			MongoDatabase:  getenv("MONGO_DATABASE", ""),
			SQLitePath:     getenv("DB_PATH", "holistiq.db"),
			ConnectTimeout: getdur("STORE_CONNECT_TIMEOUT", 5*time.Second),
			WriteTimeout:   getdur("STORE_WRITE_TIMEOUT", 5*time.Second),
		},

		Assistant: AssistantConfig{
			Provider:      strings.ToLower(getenv("ASSISTANT_PROVIDER", "rules")),
			OpenAIKey:     getenv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getenv("OPENAI_BASE_URL", ""),
			OpenAIModel:   getenv("OPENAI_MODEL", "gpt-4o-mini"),
			OllamaBaseURL: getenv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getenv("OLLAMA_MODEL", "llama3:latest"),
			Timeout:       getdur("ASSISTANT_TIMEOUT", 20*time.Second),
			MaxWords:      getint("ASSISTANT_MAX_WORDS", 150),
		},

		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "holistiq"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.Log.Level == "warning" {
		cfg.Log.Level = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	if cfg.Debug {
		cfg.GinMode = "debug"
	}
	if cfg.Store.Driver == "mongodb" {
		cfg.Store.Driver = DriverMongo
	}

	// --- validation ---
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if cfg.Log.MaxSizeMB <= 0 {
		return cfg, errors.New("LOG_MAX_SIZE_MB must be > 0")
	}
	switch cfg.Store.Driver {
	case DriverMongo:
		if strings.TrimSpace(cfg.Store.MongoURI) == "" {
			return cfg, errors.New("MONGO_URI must not be empty when STORE_DRIVER=mongo")
		}
	case DriverSQLite:
		if strings.TrimSpace(cfg.Store.SQLitePath) == "" {
			return cfg, errors.New("DB_PATH must not be empty when STORE_DRIVER=sqlite")
		}
	case DriverNone:
	default:
		return cfg, errors.New("STORE_DRIVER must be one of: mongo, sqlite, none")
	}
	if cfg.Store.ConnectTimeout <= 0 || cfg.Store.WriteTimeout <= 0 {
		return cfg, errors.New("store timeouts must be positive durations")
	}
	switch cfg.Assistant.Provider {
	case "rules", "openai", "ollama":
	default:
		return cfg, errors.New("ASSISTANT_PROVIDER must be one of: rules, openai, ollama")
	}
	if cfg.Assistant.Timeout <= 0 {
		return cfg, errors.New("ASSISTANT_TIMEOUT must be > 0")
	}
	if cfg.Assistant.MaxWords < 10 {
		return cfg, errors.New("ASSISTANT_MAX_WORDS must be >= 10")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// ---- helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
