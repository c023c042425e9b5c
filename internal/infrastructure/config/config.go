package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr      string `mapstructure:"HTTP_ADDR"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	EventExchange string `mapstructure:"EVENT_EXCHANGE"`
	QRSize        int    `mapstructure:"QR_SIZE"`
}

// Load reads configuration from environment variables, with an optional
// .env file in the working directory.
func Load() (*Config, error) {
	v := viper.New()

	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("EVENT_EXCHANGE", "payments.events")
	v.SetDefault("QR_SIZE", 256)

	for _, key := range []string{"HTTP_ADDR", "DATABASE_URL", "RABBITMQ_URL", "EVENT_EXCHANGE", "QR_SIZE"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
