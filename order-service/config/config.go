package config

import (
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"

	shared "github.com/shopyard/fulfillment/shared/config"
)

type Config struct {
	ServiceName string           `mapstructure:"service_name"`
	Env         string           `mapstructure:"env"`
	Port        string           `mapstructure:"port"`
	Database    shared.Database  `mapstructure:"database"`
	AWS         shared.AWS       `mapstructure:"aws"`
	Log         shared.Log       `mapstructure:"log"`
	Telemetry   shared.Telemetry `mapstructure:"telemetry"`
}

// ReadConfig loads <ENVIRONMENT>.json next to this file, overridable with
// ORDER_* environment variables.
func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, errors.New("unable to get current file")
	}

	var cfg Config
	err := shared.Read(shared.Options{
		Dir:       filepath.Dir(filename),
		EnvPrefix: "ORDER",
		Defaults: map[string]interface{}{
			"service_name":      "order-service",
			"port":              "8081",
			"database.database": "orders",
			"aws.sqs_queue_url": "http://localhost:4566/000000000000/order-events",
		},
	}, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
