package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = "localhost:8080"
	defaultMigrations = "migrations"
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Premium bool
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// MustLoad reads the server configuration from the environment, with an
// optional .env file on top.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	viper.SetDefault("PREMIUM", false)

	return &Config{
		Env: viper.GetString("APP_ENV"),
		DB: DB{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: Server{
			RunAddress: viper.GetString("RUN_ADDRESS"),
		},
		Premium: viper.GetBool("PREMIUM"),
	}
}
