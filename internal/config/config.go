package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App      App      `yaml:"app"`
	HTTP     HTTP     `yaml:"http"`
	Redis    Redis    `yaml:"redis"`
	Kafka    Kafka    `yaml:"kafka"`
	Delivery Delivery `yaml:"delivery"`
	Places   Places   `yaml:"places"`
	Booking  Booking  `yaml:"booking"`
}

type App struct {
	Name    string `yaml:"name" env:"APP_NAME" env-default:"smartride"`
	Version string `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
}

type HTTP struct {
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	// PublicBaseURL is the externally reachable origin used to build the
	// payment callback URL handed to the gateway.
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-default:"http://localhost:8080"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Kafka struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"booking-events"`
}

type Delivery struct {
	BaseURL string `yaml:"base_url" env:"DELIVERY_API_BASE_URL" env-default:"http://localhost:9090"`
}

type Places struct {
	BaseURL string `yaml:"base_url" env:"PLACES_API_BASE_URL" env-default:"http://localhost:9091"`
	APIKey  string `yaml:"api_key" env:"PLACES_API_KEY" env-default:""`
}

type Booking struct {
	// RiderMatchDelaySeconds is the simulated matching delay; 0 matches
	// immediately.
	RiderMatchDelaySeconds   int    `yaml:"rider_match_delay_seconds" env:"RIDER_MATCH_DELAY_SECONDS" env-default:"4"`
	SuccessRedirectCountdown int    `yaml:"success_redirect_countdown" env:"SUCCESS_REDIRECT_COUNTDOWN" env-default:"5"`
	DeliveriesListPath       string `yaml:"deliveries_list_path" env:"DELIVERIES_LIST_PATH" env-default:"/deliveries"`
}

func New() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		// fallback to env vars if file not found
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	} else {
		// Allow env vars to override config file
		cleanenv.ReadEnv(cfg)
	}

	return cfg, nil
}
