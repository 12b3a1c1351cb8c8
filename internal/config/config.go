// Package config reads the service configuration from the environment, an
// optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/objectstore"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/packetapi"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/redisstore"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/server"
)

type Config struct {
	LogLevel string
	HTTPPort string
	GRPCPort string
	// HealthInterval is how often the gRPC health status is re-checked.
	HealthInterval time.Duration

	DB       db.Config
	Redis    redisstore.Config
	Kafka    kafka.ConsumerConfig
	MinIO    objectstore.Config
	Packeta  PacketaConfig
	Server   server.Config
	Admin    AdminConfig
	Outbox   OutboxConfig
	Checkout CheckoutConfig
}

type PacketaConfig struct {
	API           packetapi.Config
	WidgetURL     string
	WidgetAPIKey  string
	WidgetTimeout time.Duration
	// Eshop is the sender label the packets are created under.
	Eshop string
}

type AdminConfig struct {
	Username string
	Password string
}

type OutboxConfig struct {
	BatchSize    int
	PollInterval time.Duration
	MaxAttempts  int
}

type CheckoutConfig struct {
	SessionTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_port", "9000")
	v.SetDefault("grpc_port", "9001")
	v.SetDefault("health_interval", "15s")

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "packetery")
	v.SetDefault("db_sslmode", "disable")

	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)

	v.SetDefault("kafka_brokers", "localhost:9092")
	v.SetDefault("kafka_topic", "packet_events")
	v.SetDefault("kafka_group_id", "packetery-consumer-group")

	v.SetDefault("minio_endpoint", "localhost:9002")
	v.SetDefault("minio_bucket", "packetery-labels")
	v.SetDefault("minio_use_ssl", false)

	v.SetDefault("packeta_api_endpoint", packetapi.DefaultEndpoint)
	v.SetDefault("packeta_api_timeout", "30s")
	v.SetDefault("packeta_api_max_retries", 3)
	v.SetDefault("packeta_widget_url", "https://widget.packeta.com")
	v.SetDefault("packeta_widget_timeout", "5s")
	v.SetDefault("packeta_eshop", "")

	v.SetDefault("checkout_rate_limit", 5.0)
	v.SetDefault("checkout_rate_burst", 10)
	v.SetDefault("checkout_session_ttl", "2h")

	v.SetDefault("audit_workers", 2)
	v.SetDefault("audit_batch_size", 5)
	v.SetDefault("audit_timeout", "500ms")

	v.SetDefault("outbox_max_attempts", 5)
	v.SetDefault("outbox_batch_size", 10)
	v.SetDefault("outbox_poll_interval", "1s")

	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "")
}

// Load reads .env when present, then the optional config file named by
// CONFIG_FILE, with environment variables taking precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LogLevel:       v.GetString("log_level"),
		HTTPPort:       v.GetString("http_port"),
		GRPCPort:       v.GetString("grpc_port"),
		HealthInterval: v.GetDuration("health_interval"),
		DB: db.Config{
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		Redis: redisstore.Config{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		Kafka: kafka.ConsumerConfig{
			Brokers: splitList(v.GetString("kafka_brokers")),
			Topic:   v.GetString("kafka_topic"),
			GroupID: v.GetString("kafka_group_id"),
		},
		MinIO: objectstore.Config{
			Endpoint:  v.GetString("minio_endpoint"),
			AccessKey: v.GetString("minio_access_key"),
			SecretKey: v.GetString("minio_secret_key"),
			Bucket:    v.GetString("minio_bucket"),
			UseSSL:    v.GetBool("minio_use_ssl"),
		},
		Packeta: PacketaConfig{
			API: packetapi.Config{
				Endpoint:    v.GetString("packeta_api_endpoint"),
				APIPassword: v.GetString("packeta_api_password"),
				Timeout:     v.GetDuration("packeta_api_timeout"),
				MaxRetries:  v.GetUint64("packeta_api_max_retries"),
			},
			WidgetURL:     v.GetString("packeta_widget_url"),
			WidgetAPIKey:  v.GetString("packeta_api_key"),
			WidgetTimeout: v.GetDuration("packeta_widget_timeout"),
			Eshop:         v.GetString("packeta_eshop"),
		},
		Server: server.Config{
			CheckoutRate:   rate.Limit(v.GetFloat64("checkout_rate_limit")),
			CheckoutBurst:  v.GetInt("checkout_rate_burst"),
			AuditWorkers:   v.GetInt("audit_workers"),
			AuditBatchSize: v.GetInt("audit_batch_size"),
			AuditTimeout:   v.GetDuration("audit_timeout"),
		},
		Admin: AdminConfig{
			Username: v.GetString("admin_username"),
			Password: v.GetString("admin_password"),
		},
		Outbox: OutboxConfig{
			BatchSize:    v.GetInt("outbox_batch_size"),
			PollInterval: v.GetDuration("outbox_poll_interval"),
			MaxAttempts:  v.GetInt("outbox_max_attempts"),
		},
		Checkout: CheckoutConfig{
			SessionTTL: v.GetDuration("checkout_session_ttl"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Packeta.API.APIPassword == "" {
		errs = append(errs, errors.New("PACKETA_API_PASSWORD is required"))
	}
	if c.Outbox.BatchSize <= 0 || c.Outbox.PollInterval <= 0 || c.Outbox.MaxAttempts <= 0 {
		errs = append(errs, errors.New("outbox batch size, poll interval and max attempts must be positive"))
	}
	if c.Server.CheckoutRate <= 0 || c.Server.CheckoutBurst <= 0 {
		errs = append(errs, errors.New("checkout rate limit and burst must be positive"))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
