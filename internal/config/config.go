package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from config.yaml and environment variables.
type Config struct {
	ServerPort    string        `mapstructure:"server_port"`
	DBDriver      string        `mapstructure:"db_driver"`
	MySQLDSN      string        `mapstructure:"mysql_dsn"`
	SQLitePath    string        `mapstructure:"sqlite_path"`
	ResetDB       bool          `mapstructure:"reset_db"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisDB       int           `mapstructure:"redis_db"`
	RedisPass     string        `mapstructure:"redis_password"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SessionCookie string        `mapstructure:"session_cookie"`
	BcryptCost    int           `mapstructure:"bcrypt_cost"`
	LogLevel      string        `mapstructure:"log_level"`
	SwaggerHost   string        `mapstructure:"swagger_host"`
}

var defaults = map[string]interface{}{
	"server_port":    "8080",
	"db_driver":      "sqlite",
	"mysql_dsn":      "user:password@tcp(localhost:3306)/messages_app?charset=utf8mb4&parseTime=True&loc=Local",
	"sqlite_path":    "messages_app.db",
	"reset_db":       false,
	"redis_addr":     "localhost:6379",
	"redis_db":       0,
	"redis_password": "",
	"session_secret": "change-me",
	"session_ttl":    24 * time.Hour,
	"session_cookie": "session",
	"bcrypt_cost":    10,
	"log_level":      "info",
	"swagger_host":   "",
}

// Load builds Config from an optional config.yaml in the working directory,
// with environment variables (SERVER_PORT, MYSQL_DSN, ...) taking precedence.
func Load() (*Config, error) {
	return load(".")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
