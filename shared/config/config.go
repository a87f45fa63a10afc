// Package config holds the settings every service shares and the viper
// loader the per-service config packages build on.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/shopyard/fulfillment/shared/infrastructure"
	"github.com/shopyard/fulfillment/shared/resilience"
)

type Database struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
	Migrate  bool   `mapstructure:"migrate"`
}

// DSN returns URL when set, otherwise builds one from the parts.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
		d.SSLMode,
	)
}

type AWS struct {
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	EndpointSNS     string `mapstructure:"endpoint_sns"`
	EndpointSQS     string `mapstructure:"endpoint_sqs"`
	SNSTopicArn     string `mapstructure:"sns_topic_arn"`
	SQSQueueURL     string `mapstructure:"sqs_queue_url"`
	SQSWorkers      int32  `mapstructure:"sqs_workers"`
}

func (a AWS) Settings() infrastructure.AWSSettings {
	return infrastructure.AWSSettings{
		Region:          a.Region,
		AccessKeyID:     a.AccessKeyID,
		SecretAccessKey: a.SecretAccessKey,
		EndpointSNS:     a.EndpointSNS,
		EndpointSQS:     a.EndpointSQS,
	}
}

type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type CircuitBreaker struct {
	FailureRateThreshold float64       `mapstructure:"failure_rate_threshold"`
	MinimumRequests      uint32        `mapstructure:"minimum_requests"`
	Window               time.Duration `mapstructure:"window"`
	OpenWait             time.Duration `mapstructure:"open_wait"`
	HalfOpenMaxCalls     uint32        `mapstructure:"half_open_max_calls"`
}

func (c CircuitBreaker) Settings() resilience.Settings {
	return resilience.Settings{
		FailureRateThreshold: c.FailureRateThreshold,
		MinimumRequests:      c.MinimumRequests,
		Window:               c.Window,
		OpenWait:             c.OpenWait,
		HalfOpenMaxCalls:     c.HalfOpenMaxCalls,
	}
}

// Options describe where a service reads its configuration from.
type Options struct {
	// Dir holds <environment>.json files.
	Dir string
	// EnvPrefix namespaces environment overrides, e.g. ORDER_PORT.
	EnvPrefix string
	// Defaults are applied after the shared ones and may override them.
	Defaults map[string]interface{}
}

// Read loads the environment's JSON file from opts.Dir into out. A missing
// file is not an error: defaults and environment variables still apply.
func Read(opts Options, out interface{}) error {
	v := viper.New()
	v.SetConfigName(Environment())
	v.SetConfigType("json")
	v.AddConfigPath(opts.Dir)

	v.SetEnvPrefix(opts.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setSharedDefaults(v)
	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "error reading config file")
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return errors.Wrap(err, "error unmarshaling config")
	}

	return nil
}

// Environment returns the ENVIRONMENT variable, defaulting to local.
func Environment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	return "local"
}

func setSharedDefaults(v *viper.Viper) {
	v.SetDefault("env", Environment())
	v.SetDefault("port", "8080")

	v.SetDefault("database.url", os.Getenv("DATABASE_URL"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.migrate", true)

	v.SetDefault("aws.access_key_id", getEnv("AWS_ACCESS_KEY_ID", "test"))
	v.SetDefault("aws.secret_access_key", getEnv("AWS_SECRET_ACCESS_KEY", "test"))
	v.SetDefault("aws.region", getEnv("AWS_DEFAULT_REGION", "us-east-1"))
	v.SetDefault("aws.endpoint_sns", getEnv("AWS_ENDPOINT_URL_SNS", "http://localhost:4566"))
	v.SetDefault("aws.endpoint_sqs", getEnv("AWS_ENDPOINT_URL_SQS", "http://localhost:4566"))
	v.SetDefault("aws.sns_topic_arn", getEnv("SNS_TOPIC_ARN", "arn:aws:sns:us-east-1:000000000000:fulfillment-events"))
	v.SetDefault("aws.sqs_workers", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.otlp_endpoint", getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
