package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configurations.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	SMS struct {
		BaseURL  string `mapstructure:"base_url"`
		APIKey   string `mapstructure:"api_key"`
		SenderID string `mapstructure:"sender_id"`
	} `mapstructure:"sms"`
	Paystack struct {
		BaseURL   string `mapstructure:"base_url"`
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"paystack"`
}

// LoadConfig reads configuration from config/config.yml, with environment
// variables (MEALDASH_SECTION_KEY) taking precedence over file values.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("MEALDASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", ":3000")
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "mealdash")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "order-events")
	viper.SetDefault("sms.base_url", "https://sms.arkesel.com")
	viper.SetDefault("sms.api_key", "")
	viper.SetDefault("sms.sender_id", "MealDash")
	viper.SetDefault("paystack.base_url", "https://api.paystack.co")
	viper.SetDefault("paystack.secret_key", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults and environment variables.")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The payment-verification path cannot run without the gateway secret.
	if cfg.Paystack.SecretKey == "" {
		return nil, fmt.Errorf("paystack secret key is required (set MEALDASH_PAYSTACK_SECRET_KEY)")
	}

	return &cfg, nil
}
