package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the wallet backend.
// Values are loaded from environment variables, with an optional .env
// file for local development.
type Config struct {
	ServerPort          string `mapstructure:"SERVER_PORT"`
	DatabaseURL         string `mapstructure:"DATABASE_URL"`
	AccountEmail        string `mapstructure:"ACCOUNT_EMAIL"`
	AuthorizeServiceURL string `mapstructure:"AUTHORIZE_SERVICE_URL"`
	AuthorizeServiceKey string `mapstructure:"AUTHORIZE_SERVICE_API_KEY"`
	RabbitMQURL         string `mapstructure:"RABBITMQ_URL"`
	JWTSecret           string `mapstructure:"JWT_SECRET"`
	TokenTTLMinutes     int    `mapstructure:"TOKEN_TTL_MINUTES"`
}

// LoadConfig reads configuration from environment variables from the given path.
// Unset values fall back to defaults suitable for local development:
// in-memory ledger, static authorizer and log-only notifications.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ACCOUNT_EMAIL", "user@example.com")
	viper.SetDefault("JWT_SECRET", "dev-secret")
	viper.SetDefault("TOKEN_TTL_MINUTES", 60)

	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("ACCOUNT_EMAIL")
	_ = viper.BindEnv("AUTHORIZE_SERVICE_URL")
	_ = viper.BindEnv("AUTHORIZE_SERVICE_API_KEY")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("TOKEN_TTL_MINUTES")

	// The .env file is optional; only a parse failure is an error
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
