package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/packetapi"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("packeta_api_password", "secret")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "9001", cfg.GRPCPort)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "packet_events", cfg.Kafka.Topic)
	assert.Equal(t, packetapi.DefaultEndpoint, cfg.Packeta.API.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Packeta.API.Timeout)
	assert.Equal(t, rate.Limit(5), cfg.Server.CheckoutRate)
	assert.Equal(t, 2*time.Hour, cfg.Checkout.SessionTTL)
}

func TestFromViperRequiresAPIPassword(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("outbox_batch_size", 0)

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PACKETA_API_PASSWORD is required")
	assert.Contains(t, err.Error(), "outbox batch size, poll interval and max attempts must be positive")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitList(" a:9092 ,, b:9092 "))
	assert.Nil(t, splitList(" , "))
}

func TestLoadFromEnvAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packetery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"8080\"\nkafka_brokers: a:9092,b:9092\n"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PACKETA_API_PASSWORD", "secret")
	t.Setenv("HTTP_PORT", "8181")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8181", cfg.HTTPPort, "environment wins over the file")
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "secret", cfg.Packeta.API.APIPassword)
}
