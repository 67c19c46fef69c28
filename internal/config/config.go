package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const envPrefix = "BAMBORA_"

type Config struct {
	Merchant MerchantConfig `koanf:"merchant"`
	HTTP     HTTPConfig     `koanf:"http"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type MerchantConfig struct {
	ID                int    `koanf:"id" validate:"required,gt=0"`
	PaymentsPasscode  string `koanf:"payments_passcode"`
	ProfilesPasscode  string `koanf:"profiles_passcode"`
	ReportingPasscode string `koanf:"reporting_passcode"`
	APIVersion        string `koanf:"api_version" validate:"omitempty,numeric"`
	Platform          string `koanf:"platform" validate:"omitempty,alphanum"`
}

type HTTPConfig struct {
	Timeout          time.Duration `koanf:"timeout" validate:"gte=0"`
	UserAgent        string        `koanf:"user_agent"`
	MaxResponseBytes int64         `koanf:"max_response_bytes" validate:"gte=0"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// LoadConfig reads an optional YAML file and then BAMBORA_ prefixed environment
// variables, which take precedence. Nested keys use a double underscore, e.g.
// BAMBORA_MERCHANT__REPORTING_PASSCODE.
func LoadConfig(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
