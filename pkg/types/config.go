package types

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server   ServerConfig
	Provider string
	Audio    AudioConfig
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AppEnv          string
	LogLevel        string
}

// AudioConfig controls where uploaded audio is staged before transcription.
type AudioConfig struct {
	TempDir string
}

type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	TranscriptionModel string
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("TRANSLATION_PROVIDER", ProviderOpenAI)
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OPENAI_CHAT_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_TRANSCRIPTION_MODEL", "gpt-4o-transcribe")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
}

func validateRequiredEnvs(v *viper.Viper, requiredEnvs []string) error {
	for _, env := range requiredEnvs {
		if v.GetString(env) == "" {
			return fmt.Errorf("%s is required", env)
		}
	}
	return nil
}

// LoadConfig reads configuration from envFile (a dotenv file, usually ".env")
// and the process environment. Environment variables win over the file, and a
// missing file is not an error.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Enable environment variable reading first
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
			log.Print("No config file found, falling back to environment variables")
		}
	}

	provider := strings.ToLower(strings.TrimSpace(v.GetString("TRANSLATION_PROVIDER")))
	switch provider {
	case ProviderOpenAI:
		if err := validateRequiredEnvs(v, []string{"OPENAI_API_KEY"}); err != nil {
			return nil, err
		}
	case ProviderGemini:
		if err := validateRequiredEnvs(v, []string{"GEMINI_API_KEY"}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("TRANSLATION_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, provider)
	}

	config := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetString("SERVER_PORT"),
			ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			AppEnv:          v.GetString("APP_ENV"),
			LogLevel:        v.GetString("LOG_LEVEL"),
		},
		Provider: provider,
		Audio: AudioConfig{
			TempDir: v.GetString("AUDIO_TEMP_DIR"),
		},
		OpenAI: OpenAIConfig{
			APIKey:             v.GetString("OPENAI_API_KEY"),
			BaseURL:            v.GetString("OPENAI_BASE_URL"),
			ChatModel:          v.GetString("OPENAI_CHAT_MODEL"),
			TranscriptionModel: v.GetString("OPENAI_TRANSCRIPTION_MODEL"),
		},
		Gemini: GeminiConfig{
			APIKey:  v.GetString("GEMINI_API_KEY"),
			BaseURL: v.GetString("GEMINI_BASE_URL"),
			Model:   v.GetString("GEMINI_MODEL"),
		},
	}

	if config.Audio.TempDir == "" {
		config.Audio.TempDir = os.TempDir()
	}
	if config.Server.ReadTimeout < 0 || config.Server.WriteTimeout < 0 {
		return nil, fmt.Errorf("READ_TIMEOUT and WRITE_TIMEOUT cannot be negative")
	}

	return config, nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *ServerConfig) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
