package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var (
	ErrMissingOpenAIAPIKey  = errors.New("missing OPENAI_API_KEY")
	ErrWriteTimeoutTooShort = errors.New("WRITE_TIMEOUT shorter than READ_TIMEOUT + TRANSCRIPTION_TIMEOUT + COMPLETION_TIMEOUT")
)

// Config is read once at startup and passed down explicitly; nothing below
// cmd/ reads the process environment.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	OpenAI  OpenAIConfig
	Upload  UploadConfig
	PDF     PDFConfig
	Origins []string `validate:"dive,required"`
}

type ServerConfig struct {
	Port            int           `validate:"min=1,max=65535"`
	GinMode         string        `validate:"oneof=debug release test"`
	ReadTimeout     time.Duration `validate:"required"`
	WriteTimeout    time.Duration `validate:"required"`
	IdleTimeout     time.Duration `validate:"required"`
	ShutdownTimeout time.Duration `validate:"required"`
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// OpenAIConfig configures the speech-to-text and completion provider.
type OpenAIConfig struct {
	APIKey               string
	BaseURL              string        `validate:"required,url"`
	TranscriptionModel   string        `validate:"required"`
	CompletionModel      string        `validate:"required"`
	TranscriptionTimeout time.Duration `validate:"required"`
	CompletionTimeout    time.Duration `validate:"required"`
	// Mock swaps the provider for local stubs.
	Mock bool
}

type UploadConfig struct {
	MaxBytes int64 `validate:"min=1"`
	TempDir  string
}

type PDFConfig struct {
	Compress bool
}

const defaultOrigin = "https://quickestimate.site"

// Load reads the configuration from environment variables.
//
// Supported env vars:
//   - PORT (default: 8080), GIN_MODE (default: release)
//   - LOG_LEVEL (default: info), LOG_FORMAT (default: json)
//   - ALLOWED_ORIGINS comma separated (default: https://quickestimate.site)
//   - MAX_UPLOAD_MB (default: 25), TEMP_DIR (default: os temp dir)
//   - OPENAI_API_KEY (required unless OPENAI_MOCK is set), OPENAI_BASE_URL
//   - TRANSCRIPTION_MODEL, COMPLETION_MODEL
//   - TRANSCRIPTION_TIMEOUT (default: 120s), COMPLETION_TIMEOUT (default: 60s)
//   - READ_TIMEOUT (default: 60s), IDLE_TIMEOUT (default: 120s)
//   - WRITE_TIMEOUT (default: 270s), must cover READ_TIMEOUT plus both
//     provider timeouts since the write deadline starts when headers are read
//   - SHUTDOWN_TIMEOUT (default: 10s), PDF_COMPRESSION (default: true)
func Load() (Config, error) {
	return load(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("READ_TIMEOUT", 60*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 270*time.Second)
	v.SetDefault("IDLE_TIMEOUT", 120*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ALLOWED_ORIGINS", defaultOrigin)
	v.SetDefault("MAX_UPLOAD_MB", 25)
	v.SetDefault("TEMP_DIR", "")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_MOCK", false)
	v.SetDefault("TRANSCRIPTION_MODEL", "whisper-1")
	v.SetDefault("COMPLETION_MODEL", "gpt-4o-mini")
	v.SetDefault("TRANSCRIPTION_TIMEOUT", 120*time.Second)
	v.SetDefault("COMPLETION_TIMEOUT", 60*time.Second)
	v.SetDefault("PDF_COMPRESSION", true)
	return v
}

func load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Port:            v.GetInt("PORT"),
			GinMode:         strings.ToLower(strings.TrimSpace(v.GetString("GIN_MODE"))),
			ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("IDLE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		},
		OpenAI: OpenAIConfig{
			APIKey:               strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
			BaseURL:              strings.TrimRight(strings.TrimSpace(v.GetString("OPENAI_BASE_URL")), "/"),
			TranscriptionModel:   v.GetString("TRANSCRIPTION_MODEL"),
			CompletionModel:      v.GetString("COMPLETION_MODEL"),
			TranscriptionTimeout: v.GetDuration("TRANSCRIPTION_TIMEOUT"),
			CompletionTimeout:    v.GetDuration("COMPLETION_TIMEOUT"),
			Mock:                 v.GetBool("OPENAI_MOCK"),
		},
		Upload: UploadConfig{
			MaxBytes: v.GetInt64("MAX_UPLOAD_MB") << 20,
			TempDir:  v.GetString("TEMP_DIR"),
		},
		PDF: PDFConfig{
			Compress: v.GetBool("PDF_COMPRESSION"),
		},
		Origins: splitList(v.GetString("ALLOWED_ORIGINS")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct constraints, the timeout budget and the provider
// credential.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if budget := c.Server.ReadTimeout + c.OpenAI.TranscriptionTimeout + c.OpenAI.CompletionTimeout; c.Server.WriteTimeout < budget {
		return fmt.Errorf("%w: %s < %s", ErrWriteTimeoutTooShort, c.Server.WriteTimeout, budget)
	}
	if c.OpenAI.APIKey == "" && !c.OpenAI.Mock {
		return ErrMissingOpenAIAPIKey
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
