package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "chefviral/internal/shared/config"
)

// Config is the full application configuration, loaded once at startup and
// passed by reference to collaborators. Nothing reads viper after Load.
type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Auth     sharedConfig.AuthConfig     `mapstructure:"auth"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email"`
	Gemini   sharedConfig.GeminiConfig   `mapstructure:"gemini"`
	Billing  sharedConfig.BillingConfig  `mapstructure:"billing"`
	Storage  sharedConfig.StorageConfig  `mapstructure:"storage"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configuration from ./configs/config.yaml (optional) and
// CHEFVIRAL_-prefixed environment variables. A missing config file is not an
// error: defaults keep the server bootable so misconfiguration surfaces as
// request errors instead of a dead process.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("CHEFVIRAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "chefviral_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "change-me-in-production")
	viper.SetDefault("auth.access_exp_hours", 72)
	viper.SetDefault("auth.login_token_ttl_minutes", 15)
	viper.SetDefault("auth.login_link_path", "/entrar")

	// Email defaults
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@chefviral.local")
	viper.SetDefault("email.from_name", "ChefViral")

	// Gemini defaults; api_key stays empty and is validated on first use
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.text_model", "gemini-3-flash-preview")
	viper.SetDefault("gemini.image_model", "gemini-3-pro-image-preview")
	viper.SetDefault("gemini.image_delay_ms", 2000)
	viper.SetDefault("gemini.timeout_seconds", 60)

	// Billing defaults
	viper.SetDefault("billing.publishable_key", "")
	viper.SetDefault("billing.price_id_solo", "")
	viper.SetDefault("billing.price_id_pro", "")
	viper.SetDefault("billing.price_id_agency", "")
	viper.SetDefault("billing.trial_days", 7)

	// Storage defaults
	viper.SetDefault("storage.path", "./data/assets")
	viper.SetDefault("storage.public_url", "/public/assets")
	viper.SetDefault("storage.max_size_mb", 5)
}
