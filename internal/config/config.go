package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr    string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	MetricsAddr   string `env:"METRICS_ADDRESS" envDefault:"localhost:9090"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN   string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"secret"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`
}

// Config модель настроек сервиса
type Config struct {
	ListenAddr    string
	MetricsAddr   string
	LogLevel      string
	DatabaseDSN   string
	JWTSecret     string
	AdminPassword string
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server        = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		metrics       = pflag.StringP("metrics", "m", args.MetricsAddr, "Metrics listen address in a form host:port.")
		logLevel      = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN           = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret        = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		adminPassword = pflag.StringP("admin_password", "p", args.AdminPassword, "Bootstrap admin password (empty to skip).")
	)
	pflag.Parse()

	return Config{
		ListenAddr:    *server,
		MetricsAddr:   *metrics,
		LogLevel:      *logLevel,
		DatabaseDSN:   *DSN,
		JWTSecret:     *secret,
		AdminPassword: *adminPassword,
	}
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:  "localhost:8080",
		MetricsAddr: "localhost:9090",
		LogLevel:    "info",
		DatabaseDSN: "",
		JWTSecret:   "secret",
	}
}
