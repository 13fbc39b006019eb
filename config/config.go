package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	JWT       JWT
	CORS      CORS
	RateLimit RateLimit
	Log       Log
	Tracing   Tracing
}

type Server struct {
	Port string
	Mode string
}

type Database struct {
	Driver     string // postgres | sqlite
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type JWT struct {
	Secret string
}

type CORS struct {
	AllowedOrigins []string
}

type RateLimit struct {
	RPS   float64
	Burst int
}

type Log struct {
	Level string
	File  string
}

type Tracing struct {
	Enabled           bool
	CollectorEndpoint string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("SQLITE_PATH", "examportal.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = viper.GetString("SQLITE_PATH")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.CORS.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	config.RateLimit.RPS = viper.GetFloat64("RATE_LIMIT_RPS")
	config.RateLimit.Burst = viper.GetInt("RATE_LIMIT_BURST")
	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.File = viper.GetString("LOG_FILE")
	config.Tracing.Enabled = viper.GetBool("TRACING_ENABLED")
	config.Tracing.CollectorEndpoint = viper.GetString("TRACING_COLLECTOR_ENDPOINT")

	if config.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Every authenticated request will be rejected.")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("mode", config.Server.Mode).
		Str("db_driver", config.Database.Driver).
		Str("db_host", config.Database.Host).
		Str("db_name", config.Database.Name).
		Bool("tracing", config.Tracing.Enabled).
		Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
