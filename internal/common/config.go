package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Storage   StorageConfig
	Media     MediaConfig
	Providers ProvidersConfig
	Queue     QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
	HTTPAddr string // signed-download endpoint for the local store
}

// StorageConfig holds blob-store configuration. Backend selects the
// implementation ("local" or "s3").
type StorageConfig struct {
	Backend       string
	RootDir       string
	Bucket        string
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string
	SigningSecret string
	BaseURL       string
	SignedURLTTL  time.Duration
}

// MediaConfig holds audio splitting configuration.
type MediaConfig struct {
	FFmpegPath       string
	FFprobePath      string
	WorkDir          string
	ChunkThresholdMB int
}

// ProvidersConfig holds per-backend credentials. A key is required
// only for the backends actually requested at runtime.
type ProvidersConfig struct {
	DeepgramAPIKey   string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	AssemblyAIAPIKey string
	GoogleAPIKey     string
	DeepSeekAPIKey   string
	DeepSeekBaseURL  string
	RequestTimeout   time.Duration
}

// QueueConfig holds async worker configuration.
type QueueConfig struct {
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
			HTTPAddr: getEnv("HTTP_ADDR", ":8081"),
		},
		Storage: StorageConfig{
			Backend:       getEnv("STORAGE_BACKEND", "local"),
			RootDir:       getEnv("STORAGE_ROOT_DIR", "./data"),
			Bucket:        getEnv("STORAGE_BUCKET", ""),
			Region:        getEnv("STORAGE_REGION", "us-east-1"),
			AccessKey:     getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:     getEnv("STORAGE_SECRET_KEY", ""),
			Endpoint:      getEnv("STORAGE_ENDPOINT", ""),
			SigningSecret: getEnv("STORAGE_SIGNING_SECRET", ""),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:8081"),
			SignedURLTTL:  getEnvAsDuration("SIGNED_URL_TTL", 5*time.Minute),
		},
		Media: MediaConfig{
			FFmpegPath:       getEnv("FFMPEG_PATH", "ffmpeg"),
			FFprobePath:      getEnv("FFPROBE_PATH", "ffprobe"),
			WorkDir:          getEnv("MEDIA_WORK_DIR", ""),
			ChunkThresholdMB: getEnvAsInt("CHUNK_THRESHOLD_MB", 20),
		},
		Providers: ProvidersConfig{
			DeepgramAPIKey:   getEnv("DEEPGRAM_API_KEY", ""),
			OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			AssemblyAIAPIKey: getEnv("ASSEMBLYAI_API_KEY", ""),
			GoogleAPIKey:     getEnv("GOOGLE_TRANSLATE_API_KEY", ""),
			DeepSeekAPIKey:   getEnv("DEEPSEEK_API_KEY", ""),
			DeepSeekBaseURL:  getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
			RequestTimeout:   getEnvAsDuration("PROVIDER_TIMEOUT", 5*time.Minute),
		},
		Queue: QueueConfig{
			Workers:        getEnvAsInt("QUEUE_WORKERS", 4),
			QueueSize:      getEnvAsInt("QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", 30*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return ConfigurationError("DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return ConfigurationError("GRPC_ADDR is required", ErrInvalidInput)
	}
	switch c.Storage.Backend {
	case "local":
		if c.Storage.RootDir == "" {
			return ConfigurationError("STORAGE_ROOT_DIR is required for the local backend", ErrInvalidInput)
		}
		if c.Storage.SigningSecret == "" {
			return ConfigurationError("STORAGE_SIGNING_SECRET is required for the local backend", ErrInvalidInput)
		}
	case "s3":
		if c.Storage.Bucket == "" {
			return ConfigurationError("STORAGE_BUCKET is required for the s3 backend", ErrInvalidInput)
		}
	default:
		return ConfigurationError("STORAGE_BACKEND must be local or s3", ErrInvalidInput)
	}
	return nil
}
