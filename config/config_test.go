package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, "log_level: debug\n"))
		require.NoError(t, err)

		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, ":3000", cfg.HTTPServerAddr)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "emporium", cfg.Mongo.Database)
		assert.False(t, cfg.Broker.Enabled)
		assert.Equal(t, []string{"localhost:9092"}, cfg.Broker.SeedBrokers)
		assert.False(t, cfg.Mongo.TLS.Enabled())
	})

	t.Run("Regular", func(t *testing.T) {
		path := writeConfig(t, `
log_level: warn
http_server_addr: ":8080"
request_timeout: 2s
mongo:
  uri: mongodb://db:27017
  database: shop
  operation_timeout: 1500ms
broker:
  enabled: true
  seed_brokers: [k1:9092, k2:9092]
  topics:
    order_events: orders
    review_events: reviews
  consumers:
    product_rating_group: ratings
`)
		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
		assert.Equal(t, ":8080", cfg.HTTPServerAddr)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 1500*time.Millisecond, cfg.Mongo.OperationTimeout)
		assert.True(t, cfg.Broker.Enabled)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Broker.SeedBrokers)
		assert.Equal(t, "orders", cfg.Broker.Topics.OrderEvents)
		assert.Equal(t, "ratings", cfg.Broker.Consumers.ProductRatingGroup)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv("EMPORIUM_MONGO_DATABASE", "from-env")
		cfg, err := LoadFile(writeConfig(t, "mongo:\n  database: from-file\n"))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Mongo.Database)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "sql_db: postgres://\n"))
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestRedactURI(t *testing.T) {
	assert.Equal(t,
		"mongodb://admin:***@db:27017",
		redactURI("mongodb://admin:s3cret@db:27017"),
	)
	assert.Equal(t, "mongodb://db:27017", redactURI("mongodb://db:27017"))
}
