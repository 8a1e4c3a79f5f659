package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv       = "local"
	defaultConfigDir = ".qure"
	defaultDBFile    = "qure.db"
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	ConfigDir string `mapstructure:"config_dir"`
	DBPath    string `mapstructure:"db_path"`
	Premium   bool   `mapstructure:"premium"`
}

// MustLoad loads the client configuration: .env file if present, then
// environment variables, then defaults. The data directory is created on
// the way.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("PREMIUM", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config directory: %v\n", err)
	}

	dbPath := viper.GetString("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(configDir, defaultDBFile)
	}

	return &Config{
		Env:       viper.GetString("APP_ENV"),
		ConfigDir: configDir,
		DBPath:    dbPath,
		Premium:   viper.GetBool("PREMIUM"),
	}
}
