package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_AUTO_MIGRATE", "")
	t.Setenv("OUTBOX_POLL_INTERVAL_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.False(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, 3*time.Second, cfg.Kafka.PollInterval())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "hr")
	t.Setenv("HTTP_WRITE_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.True(t, cfg.Postgres.AutoMigrate)
	assert.Contains(t, cfg.Postgres.DSN(), "host=db")
	assert.Contains(t, cfg.Postgres.DSN(), "dbname=hr")
	// nilai yang tidak valid kembali ke default
	assert.Equal(t, 30*time.Second, cfg.App.WriteTimeout())
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "x")

	_, err := Load()
	assert.Error(t, err)
}

func TestKafkaConfig_Brokers(t *testing.T) {
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, KafkaConfig{Broker: " k1:9092, ,k2:9092"}.Brokers())
	assert.Empty(t, KafkaConfig{}.Brokers())
}

func TestAppConfig_Addr(t *testing.T) {
	assert.Equal(t, ":8080", AppConfig{Port: "8080"}.Addr())
}
