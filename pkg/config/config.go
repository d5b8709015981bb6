package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stybik/LLD/pkg/observer"
	"github.com/stybik/LLD/pkg/strategy"
)

type Config struct {
	Strategy StrategyConfig `yaml:"strategy"`
	Observer ObserverConfig `yaml:"observer"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Log      LogConfig      `yaml:"log"`
}

type StrategyConfig struct {
	Payments []PaymentConfig `yaml:"payments"`
}

type PaymentConfig struct {
	Gateway string  `yaml:"gateway"`
	Amount  float64 `yaml:"amount"`
}

type ObserverConfig struct {
	Displays []string           `yaml:"displays"`
	Readings []observer.Reading `yaml:"readings"`
}

type ArchiveConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
	DB      DBConfig      `yaml:"db"`
}

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default reproduces the two literal example runs.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := &Config{}
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Strategy.Payments) == 0 {
		c.Strategy.Payments = []PaymentConfig{
			{Gateway: "paypal", Amount: 100},
			{Gateway: "stripe", Amount: 50},
		}
	}
	if len(c.Observer.Displays) == 0 {
		c.Observer.Displays = []string{"phone", "tv"}
	}
	if len(c.Observer.Readings) == 0 {
		c.Observer.Readings = []observer.Reading{
			{Temperature: 25, Humidity: 70, Pressure: 1013},
		}
	}
	if c.Archive.Timeout == 0 {
		c.Archive.Timeout = 5 * time.Second
	}
	if c.Archive.DB.Host == "" {
		c.Archive.DB.Host = "127.0.0.1"
	}
	if c.Archive.DB.Port == 0 {
		c.Archive.DB.Port = 5432
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects gateway and display names nothing can be built from.
func (c *Config) Validate() error {
	var problems []string
	for i, p := range c.Strategy.Payments {
		if !contains(strategy.GatewayNames(), p.Gateway) {
			problems = append(problems, fmt.Sprintf("strategy.payments[%d]: unknown gateway %q", i, p.Gateway))
		}
	}
	for i, d := range c.Observer.Displays {
		if !contains(observer.DisplayNames(), d) {
			problems = append(problems, fmt.Sprintf("observer.displays[%d]: unknown display %q", i, d))
		}
	}
	if c.Archive.Enabled && c.Archive.DB.Name == "" {
		problems = append(problems, "archive.db.name is required when the archive is enabled")
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) GetConnString() string {
	return fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%d",
		c.Archive.DB.User, c.Archive.DB.Password, c.Archive.DB.Name, c.Archive.DB.Host, c.Archive.DB.Port)
}

func contains(names []string, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
