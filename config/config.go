// Package config loads application configuration from YAML files with
// environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"clinic/internal/errors"
)

// Config is the root application configuration.
type Config struct {
	Env              EnvConfig              `mapstructure:"env"`
	HTTP             HTTPConfig             `mapstructure:"http"`
	Postgres         *PostgresConfig        `mapstructure:"postgres"`
	SecretKey        SecretKeyConfig        `mapstructure:"secretKey"`
	Auth             AuthConfig             `mapstructure:"auth"`
	PasswordStrength PasswordStrengthConfig `mapstructure:"passwordStrength"`
	Pagination       PaginationConfig       `mapstructure:"pagination"`
}

// EnvConfig holds deployment environment settings.
type EnvConfig struct {
	Env         string    `mapstructure:"env"`
	ServiceName string    `mapstructure:"serviceName"`
	Debug       bool      `mapstructure:"debug"`
	Log         LogConfig `mapstructure:"log"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Pretty bool   `mapstructure:"pretty"`
	Level  string `mapstructure:"level"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

// PostgresConfig holds database connection settings.
type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbName"`
	SSLMode         string        `mapstructure:"sslMode"`
	Timezone        string        `mapstructure:"timezone"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
}

// DSN builds the Postgres connection string.
func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	timezone := c.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode, timezone,
	)
}

// SecretKeyConfig holds the JWT signing secrets. Access and refresh tokens
// use separate secrets so one class of token cannot stand in for the other.
type SecretKeyConfig struct {
	Access  string `mapstructure:"access"`
	Refresh string `mapstructure:"refresh"`
}

// AuthConfig holds authentication behavior settings.
type AuthConfig struct {
	BcryptCost      int           `mapstructure:"bcryptCost"`
	AccessTokenTTL  time.Duration `mapstructure:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `mapstructure:"refreshTokenTTL"`
}

// PasswordStrengthConfig holds the password strength policy.
type PasswordStrengthConfig struct {
	MinLength      int  `mapstructure:"minLength"`
	RequireUpper   bool `mapstructure:"requireUpper"`
	RequireLower   bool `mapstructure:"requireLower"`
	RequireNumber  bool `mapstructure:"requireNumber"`
	RequireSpecial bool `mapstructure:"requireSpecial"`
}

// PaginationConfig holds list endpoint page size settings.
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"defaultPageSize"`
	MaxPageSize     int `mapstructure:"maxPageSize"`
}

const envPrefix = "CLINIC_"

// LoadWithEnv loads configuration from the given YAML file, then applies
// CLINIC_-prefixed environment variable overrides. Nested keys use double
// underscores, e.g. CLINIC_POSTGRES__HOST overrides postgres.host.
func LoadWithEnv[T any](configPath string) (*T, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "load config file %s", configPath)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: canonicalizeEnvKey,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	var cfg T
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "mapstructure",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	return &cfg, nil
}

// canonicalizeEnvKey maps CLINIC_SECTION__NESTEDKEY to section.nestedKey,
// matching the camelCase keys used in the YAML file.
func canonicalizeEnvKey(key, value string) (string, any) {
	key = strings.TrimPrefix(key, envPrefix)
	parts := strings.Split(key, "__")
	for i, part := range parts {
		parts[i] = camelize(part)
	}
	return strings.Join(parts, "."), value
}

func camelize(s string) string {
	segments := strings.Split(strings.ToLower(s), "_")
	for i := 1; i < len(segments); i++ {
		if segments[i] == "" {
			continue
		}
		segments[i] = strings.ToUpper(segments[i][:1]) + segments[i][1:]
	}
	return strings.Join(segments, "")
}
