package config

import (
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"

	shared "github.com/shopyard/fulfillment/shared/config"
)

type Config struct {
	ServiceName  string           `mapstructure:"service_name"`
	Env          string           `mapstructure:"env"`
	Port         string           `mapstructure:"port"`
	Database     shared.Database  `mapstructure:"database"`
	AWS          shared.AWS       `mapstructure:"aws"`
	Log          shared.Log       `mapstructure:"log"`
	Telemetry    shared.Telemetry `mapstructure:"telemetry"`
	OrderService OrderService     `mapstructure:"order_service"`
	Bank         Bank             `mapstructure:"bank"`
}

// OrderService locates the order service's internal API and bounds calls to it.
type OrderService struct {
	BaseURL        string                `mapstructure:"base_url"`
	Timeout        time.Duration         `mapstructure:"timeout"`
	CircuitBreaker shared.CircuitBreaker `mapstructure:"circuit_breaker"`
}

type Bank struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ReadConfig loads <ENVIRONMENT>.json next to this file, overridable with
// PAYMENT_* environment variables.
func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, errors.New("unable to get current file")
	}

	var cfg Config
	err := shared.Read(shared.Options{
		Dir:       filepath.Dir(filename),
		EnvPrefix: "PAYMENT",
		Defaults: map[string]interface{}{
			"service_name":      "payments-service",
			"port":              "8082",
			"database.database": "payments",
			"aws.sqs_queue_url": "http://localhost:4566/000000000000/payment-events",

			"order_service.base_url":                               "http://localhost:8081",
			"order_service.timeout":                                "3s",
			"order_service.circuit_breaker.failure_rate_threshold": 0.5,
			"order_service.circuit_breaker.minimum_requests":       10,
			"order_service.circuit_breaker.window":                 "60s",
			"order_service.circuit_breaker.open_wait":              "30s",
			"order_service.circuit_breaker.half_open_max_calls":    1,

			"bank.base_url": "http://localhost:9090",
			"bank.timeout":  "10s",
		},
	}, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
