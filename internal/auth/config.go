package auth

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret    string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer       string `yaml:"issuer" mapstructure:"issuer"`
	Audience     string `yaml:"audience" mapstructure:"audience"`
	TokenTTLMins int    `yaml:"token_ttl_minutes" mapstructure:"token_ttl_minutes"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set default values
	v.SetDefault("jwt_secret", "")
	v.SetDefault("issuer", "link-manager-backend")
	v.SetDefault("audience", "link-manager")
	v.SetDefault("token_ttl_minutes", 60)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
		// Config file not found, use defaults and environment variables
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	return &config, nil
}
