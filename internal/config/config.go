package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/consumption-calendar/internal/billing"
)

// Config represents application configuration
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Tariff    TariffConfig    `mapstructure:"tariff"`
	Log       LogConfig       `mapstructure:"log"`
	MQTT      MQTTConfig      `mapstructure:"mqtt"`
	Tray      TrayConfig      `mapstructure:"tray"`
}

// GeneratorConfig controls the random readings
type GeneratorConfig struct {
	Seed int64 `mapstructure:"seed"` // 0 = seed from clock
}

// TariffConfig represents per-band prices
type TariffConfig struct {
	Rates    []int  `mapstructure:"rates"` // price per kWh for bands 00-06, 07-17, 18-23
	Currency string `mapstructure:"currency"`
}

// LogConfig represents logger configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty = console only
	Level string `mapstructure:"level"`
}

// MQTTConfig represents the MQTT publisher configuration
type MQTTConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Broker      string `mapstructure:"broker"` // host:port
	ClientID    string `mapstructure:"client_id"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	TopicPrefix string `mapstructure:"topic_prefix"`
	PublishDays bool   `mapstructure:"publish_days"` // also publish every day report
}

// TrayConfig represents system tray configuration
type TrayConfig struct {
	Title string `mapstructure:"title"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.seed", 0)
	v.SetDefault("tariff.rates", []int{200, 300, 500})
	v.SetDefault("tariff.currency", "COP")
	// Every key needs a default, AutomaticEnv only overrides keys viper knows
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "localhost:1883")
	v.SetDefault("mqtt.client_id", "consumption-calendar")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.publish_days", false)
	v.SetDefault("mqtt.topic_prefix", "consumption")
	v.SetDefault("tray.title", "kWh")
}

// Load loads configuration from file.
// With an empty path the usual locations are searched and a missing file
// falls back to defaults; an explicit path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.consumption-calendar")
		v.AddConfigPath("/etc/consumption-calendar")
	}

	// Read environment variables, e.g. CONSUMPTION_MQTT_BROKER
	v.SetEnvPrefix("consumption")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Tariff.Rates) != 3 {
		return fmt.Errorf("tariff.rates must have 3 values, got %d", len(c.Tariff.Rates))
	}
	for i, rate := range c.Tariff.Rates {
		if rate < 0 {
			return fmt.Errorf("tariff.rates[%d] must not be negative", i)
		}
	}
	if c.Tariff.Currency == "" {
		return fmt.Errorf("tariff.currency is required")
	}

	if c.MQTT.Enabled {
		if c.MQTT.Broker == "" {
			return fmt.Errorf("mqtt.broker is required when mqtt is enabled")
		}
		if c.MQTT.TopicPrefix == "" {
			return fmt.Errorf("mqtt.topic_prefix is required when mqtt is enabled")
		}
	}

	return nil
}

// BillingTariff converts the tariff section for the billing package
func (c *TariffConfig) BillingTariff() billing.Tariff {
	var t billing.Tariff
	copy(t.Rates[:], c.Rates)
	t.Currency = c.Currency
	return t
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.MQTT.Username = os.ExpandEnv(c.MQTT.Username)
	c.MQTT.Password = os.ExpandEnv(c.MQTT.Password)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
