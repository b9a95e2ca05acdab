package utils

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// HTTP server
	AppPort      string `yaml:"APP_PORT"`
	LogDir       string `yaml:"LOG_DIR"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		DBUser:       "postgres",
		DBName:       "food_diary",
		DBPort:       "5432",
		DBHost:       "localhost",
		DBSSLMode:    "disable",
		DBTimeZone:   "UTC",
		AppPort:      "1000",
		LogDir:       "./logs",
		RateLimitMax: "20",
	}
}

// LoadConfig reads config.yaml and .env from the working directory.
func LoadConfig() {
	if err := LoadConfigFile("config.yaml", ".env"); err != nil {
		log.Printf("Error loading config: %s\n", err)
	}
}

// LoadConfigFile resets the config to defaults, applies the YAML file and
// then any matching environment variables, optionally seeded from envFile.
// Missing files are skipped.
func LoadConfigFile(yamlPath, envFile string) error {
	cfg := defaultConfig()

	file, err := os.ReadFile(yamlPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return err
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	for key, field := range cfg.fields() {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}

	config = cfg
	return nil
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"DB_USER":        &c.DBUser,
		"DB_NAME":        &c.DBName,
		"DB_PASSWORD":    &c.DBPassword,
		"DB_PORT":        &c.DBPort,
		"DB_HOST":        &c.DBHost,
		"DB_SSLMODE":     &c.DBSSLMode,
		"DB_TIMEZONE":    &c.DBTimeZone,
		"APP_PORT":       &c.AppPort,
		"LOG_DIR":        &c.LogDir,
		"RATE_LIMIT_MAX": &c.RateLimitMax,
	}
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "DB_TIMEZONE":
		return config.DBTimeZone
	case "APP_PORT":
		return config.AppPort
	case "LOG_DIR":
		return config.LogDir
	case "RATE_LIMIT_MAX":
		return config.RateLimitMax
	default:
		return ""
	}
}
