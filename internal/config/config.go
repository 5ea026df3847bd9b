package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs every issued token; rotating it invalidates the
	// entire outstanding token space.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenTTLMinutes is the advertised access token lifetime. Zero
	// means unset; the token service then applies its own default,
	// which is deliberately shorter than the standard configured here.
	TokenTTLMinutes int `mapstructure:"token_ttl_minutes" validate:"gte=0"`

	// BcryptCost is the work factor for password hashing. Zero means
	// bcrypt's default cost.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}
