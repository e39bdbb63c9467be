package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"` // public origin used in menu links and emails
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GetAddr returns the listen address.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig holds Redis settings for the login-token store and the
// dashboard stats cache.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the host:port pair for the Redis client.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig holds passwordless login and session token settings.
type AuthConfig struct {
	JWTSecret        string `mapstructure:"jwt_secret"`
	AccessExpHours   int    `mapstructure:"access_exp_hours"`
	LoginTokenTTLMin int    `mapstructure:"login_token_ttl_minutes"`
	LoginLinkPath    string `mapstructure:"login_link_path"` // appended to server.base_url
}

// EmailConfig holds SMTP settings for login-link delivery.
type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// GeminiConfig holds the generative-AI provider settings. An empty APIKey is
// tolerated at startup; generation operations fail with a configuration
// error before any network call.
type GeminiConfig struct {
	APIKey         string `mapstructure:"api_key"`
	TextModel      string `mapstructure:"text_model"`
	ImageModel     string `mapstructure:"image_model"`
	ImageDelayMS   int    `mapstructure:"image_delay_ms"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// BillingConfig carries the payment provider's publishable key and the
// per-tier price identifiers. Payment processing itself is out of scope; the
// values are only echoed to clients on the plans endpoint.
type BillingConfig struct {
	PublishableKey string `mapstructure:"publishable_key"`
	PriceIDSolo    string `mapstructure:"price_id_solo"`
	PriceIDPro     string `mapstructure:"price_id_pro"`
	PriceIDAgency  string `mapstructure:"price_id_agency"`
	TrialDays      int    `mapstructure:"trial_days"`
}

// StorageConfig holds the tenant asset store settings.
type StorageConfig struct {
	Path      string `mapstructure:"path"`       // root directory for uploaded assets
	PublicURL string `mapstructure:"public_url"` // URL prefix the assets are served under
	MaxSizeMB int    `mapstructure:"max_size_mb"`
}
