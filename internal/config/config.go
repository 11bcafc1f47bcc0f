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
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig contains all database-related configuration settings.
// For the sqlite driver URL is a file path or ":memory:".
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"         validate:"required,oneof=pgx sqlite"`
	URL          string `mapstructure:"url"            validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string         `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int            `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
	BcryptCost           int            `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
	Password             PasswordConfig `mapstructure:"password"`
}

// PasswordConfig is the strong-password policy applied at signup.
type PasswordConfig struct {
	MinLength    int `mapstructure:"min_length"    validate:"gte=1,lte=72"`
	MinLowercase int `mapstructure:"min_lowercase" validate:"gte=0"`
	MinUppercase int `mapstructure:"min_uppercase" validate:"gte=0"`
	MinNumbers   int `mapstructure:"min_numbers"   validate:"gte=0"`
	MinSymbols   int `mapstructure:"min_symbols"   validate:"gte=0"`
}
