package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port" envconfig:"SERVER_PORT" default:"8080"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds" envconfig:"SERVER_TIMEOUT_SECONDS" default:"30"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" envconfig:"DB_HOST" default:"localhost"`
	Port     int    `mapstructure:"port" envconfig:"DB_PORT" default:"5432"`
	User     string `mapstructure:"user" envconfig:"DB_USER" default:"postgres"`
	Password string `mapstructure:"password" envconfig:"DB_PASSWORD"`
	Name     string `mapstructure:"name" envconfig:"DB_NAME" default:"health"`
	SSLMode  string `mapstructure:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins" envconfig:"CORS_ALLOW_ORIGINS"`
	AllowCredentials bool     `mapstructure:"allow_credentials" envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST" default:"200"`
}

type LogConfig struct {
	Level string `mapstructure:"level" envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig builds configuration from environment variables (with defaults)
// and config.yaml when present; file values override defaults. The resulting
// struct is injected from main, nothing here is global.
func LoadConfig() (*Config, error) {
	var config Config

	if err := envconfig.Process("clinic", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(config.CORS.AllowOrigins) == 0 {
		config.CORS.AllowOrigins = []string{
			"http://localhost",
			"http://localhost:8000",
			"http://127.0.0.1",
		}
	}

	return &config, nil
}
