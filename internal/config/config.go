package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort             string `mapstructure:"SERVER_PORT"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
	OrderProcessingSeconds int    `mapstructure:"ORDER_PROCESSING_SECONDS"`
	OrderShippedSeconds    int    `mapstructure:"ORDER_SHIPPED_SECONDS"`
}

// ProcessingDuration Processing -> Shipped 的等待時間，全部訂單共用
func (c *Config) ProcessingDuration() time.Duration {
	return time.Duration(c.OrderProcessingSeconds) * time.Second
}

// ShippedDuration Shipped -> Delivered 的等待時間，全部訂單共用
func (c *Config) ShippedDuration() time.Duration {
	return time.Duration(c.OrderShippedSeconds) * time.Second
}

// Load reads .env if present, then environment variables.
// 單純回傳錯誤 由外部決定要不要Fatal
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ORDER_PROCESSING_SECONDS", 10)
	v.SetDefault("ORDER_SHIPPED_SECONDS", 10)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		// .env 不存在就只吃環境變數
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
