// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	sharedConfig "github.com/greenflow-inc/greenflow/internal/shared/config"
)

// Config is the full application configuration tree.
type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Storage      sharedConfig.StorageConfig      `mapstructure:"storage"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Subscription sharedConfig.SubscriptionConfig `mapstructure:"subscription"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads config.yaml plus GREENFLOW_* environment overrides, applies
// defaults, validates the result and caches it for Get.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("GREENFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults and environment variables alone are a valid setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", modeForEnv(env))
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// modeForEnv maps the CLI environment name onto the server mode it runs in.
// Unknown names pass through unchanged so validation reports them.
func modeForEnv(env string) string {
	switch env {
	case "development":
		return "debug"
	case "production":
		return "release"
	default:
		return env
	}
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "text")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("auth.jwt_secret", "change-me-in-production")
	viper.SetDefault("auth.token_exp_minute", 60)
	viper.SetDefault("auth.bcrypt_cost", 12)

	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("storage.path", "greenflow.db")
	viper.SetDefault("storage.host", "localhost")
	viper.SetDefault("storage.port", 3306)
	viper.SetDefault("storage.username", "root")
	viper.SetDefault("storage.password", "")
	viper.SetDefault("storage.database", "greenflow")

	viper.SetDefault("email.host", "")
	viper.SetDefault("email.port", 587)
	viper.SetDefault("email.username", "")
	viper.SetDefault("email.password", "")
	viper.SetDefault("email.from", "noreply@greenflow.local")

	viper.SetDefault("subscription.default_plan", "premium")
	viper.SetDefault("subscription.duration_days", 30)
}
