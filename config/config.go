package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Server settings
	ServerPort   string        `json:"server_port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
	Debug        bool          `json:"debug"`

	// Application paths
	LogDir    string `json:"log_dir"`
	TempDir   string `json:"temp_dir"`
	StaticDir string `json:"static_dir"`

	// Middleware settings
	Middleware MiddlewareConfig `json:"middleware"`

	// CORS Configuration
	CORS CORSConfig `json:"cors"`

	// Rate Limiting
	RateLimit RateLimitConfig `json:"rate_limit"`

	// Pipeline configurations
	Video   VideoConfig   `json:"video"`
	Gemini  GeminiConfig  `json:"gemini"`
	Whisper WhisperConfig `json:"whisper"`

	// Application version
	Version string `json:"version"`

	// Request and shutdown timeouts
	RequestTimeout  time.Duration `json:"request_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type MiddlewareConfig struct {
	EnableRecover   bool `json:"enable_recover"`
	EnableRequestID bool `json:"enable_request_id"`
	EnableLogger    bool `json:"enable_logger"`
	EnableCORS      bool `json:"enable_cors"`
	EnableRateLimit bool `json:"enable_rate_limit"`
	EnableCompress  bool `json:"enable_compress"`
	EnableETag      bool `json:"enable_etag"`
}

type VideoConfig struct {
	// ProcessTimeout bounds a single summarize request end to end.
	ProcessTimeout time.Duration `json:"process_timeout"`
	MaxDuration    time.Duration `json:"max_duration"`
	YtdlpPath      string        `json:"ytdlp_path"`
	FFmpegPath     string        `json:"ffmpeg_path"`
	SubtitleLang   string        `json:"subtitle_lang"`
}

type GeminiConfig struct {
	APIKey string `json:"-"`
	Model  string `json:"model"`
	// ChunkSize is the character threshold above which a transcript is
	// summarized in pieces and merged.
	ChunkSize int `json:"chunk_size"`
	// RequestsPerMinute paces calls to the Gemini API.
	RequestsPerMinute int `json:"requests_per_minute"`
}

type WhisperConfig struct {
	BinaryPath string `json:"binary_path"`
	ModelPath  string `json:"model_path"`
	Language   string `json:"language"`
	Threads    int    `json:"threads"`
}

type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	ExposedHeaders   []string `json:"exposed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
	MaxAge           int      `json:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerMinute int  `json:"requests_per_minute"`
}

// secretsFile mirrors the original deployment's secrets layout: a small
// local YAML file holding the Gemini API key, used when the environment
// variable is absent.
type secretsFile struct {
	GeminiAPIKey string `yaml:"gemini_api_key"`
}

func defaultDevConfig() MiddlewareConfig {
	return MiddlewareConfig{
		EnableRecover:   true,
		EnableRequestID: true,
		EnableLogger:    true,
		EnableCORS:      true,
		EnableRateLimit: false,
		EnableCompress:  false,
		EnableETag:      false,
	}
}

func defaultProdConfig() MiddlewareConfig {
	return MiddlewareConfig{
		EnableRecover:   true,
		EnableRequestID: true,
		EnableLogger:    true,
		EnableCORS:      true,
		EnableRateLimit: true,
		EnableCompress:  true,
		EnableETag:      true,
	}
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		Debug:        getEnvAsBool("DEBUG", false),

		LogDir:    getEnv("LOG_DIR", "./logs"),
		TempDir:   getEnv("TEMP_DIR", filepath.Join(os.TempDir(), "yt-brief")),
		StaticDir: getEnv("STATIC_DIR", "./static"),

		Version: getEnv("VERSION", "1.0.0"),

		RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Minute),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		CORS: CORSConfig{
			AllowedOrigins: getEnvAsStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsStringSlice(
				"CORS_ALLOWED_METHODS",
				[]string{"GET", "POST", "OPTIONS"},
			),
			AllowedHeaders:   getEnvAsStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type"}),
			ExposedHeaders:   getEnvAsStringSlice("CORS_EXPOSED_HEADERS", []string{"Content-Disposition"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},

		RateLimit: RateLimitConfig{
			Enabled:           getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_RPM", 30),
		},

		Video: VideoConfig{
			ProcessTimeout: getEnvAsDuration("VIDEO_PROCESS_TIMEOUT", 30*time.Minute),
			MaxDuration:    getEnvAsDuration("VIDEO_MAX_DURATION", 4*time.Hour),
			YtdlpPath:      getEnv("YTDLP_PATH", "yt-dlp"),
			FFmpegPath:     getEnv("FFMPEG_PATH", "ffmpeg"),
			SubtitleLang:   getEnv("SUBTITLE_LANG", "en"),
		},

		Gemini: GeminiConfig{
			APIKey:            getEnv("GEMINI_API_KEY", ""),
			Model:             getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			ChunkSize:         getEnvAsInt("SUMMARY_CHUNK_SIZE", 2000),
			RequestsPerMinute: getEnvAsInt("GEMINI_RPM", 15),
		},

		Whisper: WhisperConfig{
			BinaryPath: getEnv("WHISPER_PATH", "whisper"),
			ModelPath:  getEnv("WHISPER_MODEL_PATH", "./models/ggml-base.en.bin"),
			Language:   getEnv("WHISPER_LANGUAGE", "en"),
			Threads:    getEnvAsInt("WHISPER_THREADS", 4),
		},

		Middleware: defaultDevConfig(),
	}

	if os.Getenv("ENV") == "production" {
		cfg.Middleware = defaultProdConfig()
	}

	// Fall back to the secrets file for the API key.
	if cfg.Gemini.APIKey == "" {
		if key, err := loadSecretKey(getEnv("SECRETS_FILE", "secrets.yaml")); err == nil {
			cfg.Gemini.APIKey = key
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadSecretKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var secrets secretsFile
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return "", fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}

	if secrets.GeminiAPIKey == "" {
		return "", fmt.Errorf("secrets file %s has no gemini_api_key", path)
	}
	return secrets.GeminiAPIKey, nil
}

func (c *Config) Validate() error {
	if err := validatePaths(c); err != nil {
		return err
	}
	if err := validateTimeouts(c); err != nil {
		return err
	}
	return validateServices(c)
}

func validatePaths(c *Config) error {
	paths := []struct {
		path string
		name string
	}{
		{c.LogDir, "log directory"},
		{c.TempDir, "temp directory"},
	}

	for _, p := range paths {
		if err := os.MkdirAll(p.path, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", p.name, err)
		}
	}

	return nil
}

func validateTimeouts(c *Config) error {
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}
	return nil
}

func validateServices(c *Config) error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key not found: set GEMINI_API_KEY or provide a secrets file")
	}
	if c.Gemini.ChunkSize <= 0 {
		return fmt.Errorf("summary chunk size must be positive")
	}
	if c.Video.MaxDuration <= 0 {
		return fmt.Errorf("max video duration must be positive")
	}
	return nil
}

// Helper functions for reading environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		if value = strings.TrimSpace(value); value != "" {
			return strings.Split(value, ",")
		}
	}
	return defaultValue
}
