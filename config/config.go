package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const EnvDevelopment = "development"

type Config struct {
	ServiceName   string
	ServerAddress string

	// PetsDatabase is the connection string. When empty it is assembled from
	// the DB* parts below.
	PetsDatabase string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string
	DBSSLMode  string

	DBAutoMigrate bool

	Env         string
	LogLevel    string
	HTTPTimeout int32
}

func LoadConfig() (*Config, error) {
	return loadConfig(".")
}

func loadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "pets-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSL_MODE", "disable")
	v.SetDefault("DATABASE_AUTO_MIGRATE", false)
	v.SetDefault("ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:   v.GetString("SERVICE_NAME"),
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		PetsDatabase:  v.GetString("PETS_DATABASE"),
		DBName:        v.GetString("DATABASE_NAME"),
		DBPassword:    v.GetString("DATABASE_PASSWORD"),
		DBUser:        v.GetString("DATABASE_USER"),
		DBPort:        v.GetString("DATABASE_PORT"),
		DBHost:        v.GetString("DATABASE_HOST"),
		DBSSLMode:     v.GetString("DATABASE_SSL_MODE"),
		DBAutoMigrate: v.GetBool("DATABASE_AUTO_MIGRATE"),
		Env:           strings.ToLower(v.GetString("ENV")),
		LogLevel:      v.GetString("LOG_LEVEL"),
		HTTPTimeout:   v.GetInt32("HTTP_TIMEOUT"),
	}

	if config.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", config.HTTPTimeout)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// DatabaseDSN returns "" when neither PETS_DATABASE nor DATABASE_HOST is set.
func (c *Config) DatabaseDSN() string {
	if c.PetsDatabase != "" {
		return c.PetsDatabase
	}
	if c.DBHost == "" {
		return ""
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
