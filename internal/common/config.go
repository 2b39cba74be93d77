package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Storage    StorageConfig
	OMR        OMRConfig
	Text       TextConfig
	Summarizer SummarizerConfig
	Pipeline   PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string // dev/test fallback when DSN is empty
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
}

// StorageConfig holds artifact-store configuration. When Endpoint is
// empty the local filesystem store rooted at LocalDir is used instead.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	LocalDir  string
}

// OMRConfig holds external conversion tool configuration
type OMRConfig struct {
	Command      string        // OMR tool binary (or launcher script)
	ToolHome     string        // working directory for the subprocess
	WorkDir      string        // scratch root for per-job staging dirs
	Timeout      time.Duration // wall-clock budget per conversion attempt
	MidiRenderer string        // optional musicxml->midi command; "" disables
	MaxStderr    int           // bytes of stderr kept in error messages
}

// TextConfig holds text-extraction tool configuration
type TextConfig struct {
	Pdftotext string
	Pdftoppm  string
	Tesseract string
	Language  string
	DPI       int
	MaxPages  int
}

// SummarizerConfig holds summarization service configuration
type SummarizerConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds orchestration configuration
type PipelineConfig struct {
	Workers         int
	QueueSize       int
	RetryCeiling    int
	BackoffBase     time.Duration
	LeaseDuration   time.Duration
	ReclaimInterval time.Duration
	KillOnCancel    bool
	// CancelPoll bounds how long a kill-on-cancel job keeps its
	// subprocess alive after the cancel request lands.
	CancelPoll time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			SQLitePath:       getEnv("DB_SQLITE_PATH", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:    getEnv("STORAGE_BUCKET", "nota-scores"),
			UseSSL:    getEnvAsBool("STORAGE_USE_SSL", true),
			LocalDir:  getEnv("STORAGE_LOCAL_DIR", "./data/artifacts"),
		},
		OMR: OMRConfig{
			Command:      getEnv("OMR_COMMAND", "audiveris"),
			ToolHome:     getEnv("OMR_HOME", ""),
			WorkDir:      getEnv("OMR_WORK_DIR", os.TempDir()),
			Timeout:      getEnvAsDuration("OMR_TIMEOUT", 5*time.Minute),
			MidiRenderer: getEnv("OMR_MIDI_RENDERER", "mscore"),
			MaxStderr:    getEnvAsInt("OMR_MAX_STDERR", 8<<10),
		},
		Text: TextConfig{
			Pdftotext: getEnv("PDFTOTEXT", "pdftotext"),
			Pdftoppm:  getEnv("PDFTOPPM", "pdftoppm"),
			Tesseract: getEnv("TESSERACT", "tesseract"),
			Language:  getEnv("TESSERACT_LANG", "eng"),
			DPI:       getEnvAsInt("TEXT_DPI", 300),
			MaxPages:  getEnvAsInt("TEXT_MAX_PAGES", 0),
		},
		Summarizer: SummarizerConfig{
			BaseURL:     getEnv("SUMMARY_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("SUMMARY_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("SUMMARY_API_KEY", ""),
			Temperature: getEnvAsFloat32("SUMMARY_TEMPERATURE", 0.2),
			Timeout:     getEnvAsDuration("SUMMARY_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			Workers:         getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:       getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			RetryCeiling:    getEnvAsInt("PIPELINE_RETRY_CEILING", 3),
			BackoffBase:     getEnvAsDuration("PIPELINE_BACKOFF_BASE", 30*time.Second),
			LeaseDuration:   getEnvAsDuration("PIPELINE_LEASE_DURATION", 10*time.Minute),
			ReclaimInterval: getEnvAsDuration("PIPELINE_RECLAIM_INTERVAL", time.Minute),
			KillOnCancel:    getEnvAsBool("PIPELINE_KILL_ON_CANCEL", false),
			CancelPoll:      getEnvAsDuration("PIPELINE_CANCEL_POLL", 5*time.Second),
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL or DB_SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Storage.Endpoint != "" && (c.Storage.AccessKey == "" || c.Storage.SecretKey == "") {
		return NewAppError("CONFIG_ERROR", "STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required with STORAGE_ENDPOINT", ErrInvalidInput)
	}
	if c.Pipeline.RetryCeiling < 1 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_RETRY_CEILING must be at least 1", ErrInvalidInput)
	}
	if c.Pipeline.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_WORKERS must be at least 1", ErrInvalidInput)
	}
	return nil
}
