package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	Mode string `mapstructure:"mode" validate:"oneof=debug release test"`
}

// GetAddr returns the listen address in host:port form.
func (c ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig holds token and credential hashing settings.
type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret" validate:"required"`
	TokenExpMinute int    `mapstructure:"token_exp_minute" validate:"gt=0"`
	BcryptCost     int    `mapstructure:"bcrypt_cost"`
}

// StorageConfig selects the repository backend. The default "memory" backend
// keeps everything process-local; "sqlite" and "mysql" persist through GORM
// behind the same repository interfaces.
type StorageConfig struct {
	Driver   string `mapstructure:"driver" validate:"oneof=memory sqlite mysql"`
	Path     string `mapstructure:"path"` // sqlite file path
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// EmailConfig holds SMTP settings for consultation confirmations.
// Sending is disabled when Host is empty.
type EmailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Enabled reports whether outbound email is configured.
func (c EmailConfig) Enabled() bool {
	return c.Host != ""
}

// SubscriptionConfig holds the default subscription terms applied by the
// subscribe operation.
type SubscriptionConfig struct {
	DefaultPlan  string `mapstructure:"default_plan" validate:"required"`
	DurationDays int    `mapstructure:"duration_days" validate:"gt=0"`
}
