package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	PG      PGConfig      `yaml:"pg"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Sources SourcesConfig `yaml:"sources"`
	Refresh RefreshConfig `yaml:"refresh"`
}

type AppConfig struct {
	Name    string `yaml:"name" env:"APP_NAME"`
	Version string `yaml:"version" env:"APP_VERSION"`
}

type HTTPConfig struct {
	Port string `yaml:"port" env:"HTTP_PORT"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

type PGConfig struct {
	Enabled bool   `yaml:"enabled" env:"PG_ENABLED"`
	PoolMax int    `yaml:"poolMax" env:"PG_POOL_MAX"`
	URL     string `yaml:"url" env:"PG_URL"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type KafkaConfig struct {
	Enabled           bool     `yaml:"enabled" env:"KAFKA_ENABLED"`
	Brokers           []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	TopicPriceUpdated string   `yaml:"topicPriceUpdated" env:"KAFKA_TOPIC_PRICE_UPDATED"`
}

type SourcesConfig struct {
	SkinsURL   string `yaml:"skinsUrl" env:"SOURCES_SKINS_URL"`
	ListingURL string `yaml:"listingUrl" env:"SOURCES_LISTING_URL"`
}

type RefreshConfig struct {
	IntervalMinutes int `yaml:"intervalMinutes" env:"REFRESH_INTERVAL_MINUTES"`
}

func NewConfig() (*Config, error) {
	return LoadConfig(os.Getenv("CONFIG_PATH"))
}

func LoadConfig(filename string) (*Config, error) {
	cfg := defaults()

	if strings.TrimSpace(filename) != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config yaml: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "skinpulse",
			Version: "1.0.0",
		},
		HTTP: HTTPConfig{
			Port: "8080",
		},
		Log: LogConfig{
			Level: "info",
		},
		PG: PGConfig{
			PoolMax: 10,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Kafka: KafkaConfig{
			TopicPriceUpdated: "skin.price.updated",
		},
		Sources: SourcesConfig{
			SkinsURL:   "https://bymykel.github.io/CSGO-API/api/en",
			ListingURL: "https://market.csgo.com/api/v2",
		},
		Refresh: RefreshConfig{
			IntervalMinutes: 10,
		},
	}
}

func (c *Config) validate() error {
	if c.Redis.Addr == "" {
		return fmt.Errorf("config: redis addr is required")
	}
	if c.Sources.SkinsURL == "" || c.Sources.ListingURL == "" {
		return fmt.Errorf("config: source urls are required")
	}
	if c.PG.Enabled && c.PG.URL == "" {
		return fmt.Errorf("config: pg url is required when pg is enabled")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka brokers are required when kafka is enabled")
	}
	if c.Refresh.IntervalMinutes <= 0 {
		return fmt.Errorf("config: refresh interval must be positive")
	}
	return nil
}
