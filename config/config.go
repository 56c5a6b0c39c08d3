package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "EMPORIUM_CONFIG_FILE"
	envPrefix         = "EMPORIUM"
)

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

// Enabled reports whether all three files are set.
func (t tlsFiles) Enabled() bool {
	return t.CA != "" && t.Cert != "" && t.Key != ""
}

type mongo struct {
	URI              string        `mapstructure:"uri"`
	Database         string        `mapstructure:"database"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout"`
	TLS              tlsFiles      `mapstructure:"tls"`
}

type topics struct {
	OrderEvents  string `mapstructure:"order_events"`
	ReviewEvents string `mapstructure:"review_events"`
}

type consumers struct {
	ProductRatingGroup string `mapstructure:"product_rating_group"`
}

type broker struct {
	Enabled            bool      `mapstructure:"enabled"`
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	Consumers          consumers `mapstructure:"consumers"`
}

type Config struct {
	LogLevel        slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr  string        `mapstructure:"http_server_addr"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Mongo           mongo         `mapstructure:"mongo"`
	Broker          broker        `mapstructure:"broker"`
}

// Load reads the file named by --config or EMPORIUM_CONFIG_FILE and exits
// the process when it cannot.
func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads path on top of the defaults. EMPORIUM_ prefixed
// environment variables override both, e.g. EMPORIUM_MONGO_URI.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":3000")
	v.SetDefault("request_timeout", 5*time.Second)
	v.SetDefault("shutdown_timeout", 5*time.Second)

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "emporium")
	v.SetDefault("mongo.operation_timeout", 3*time.Second)
	v.SetDefault("mongo.tls.ca", "")
	v.SetDefault("mongo.tls.cert", "")
	v.SetDefault("mongo.tls.key", "")

	v.SetDefault("broker.enabled", false)
	v.SetDefault("broker.seed_brokers", []string{"localhost:9092"})
	v.SetDefault("broker.schema_registry_urls", []string{"http://localhost:8081"})
	v.SetDefault("broker.topics.order_events", "emporium-order-events")
	v.SetDefault("broker.topics.review_events", "emporium-review-events")
	v.SetDefault("broker.consumers.product_rating_group", "emporium-product-rating")
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	cmdLine.ParseErrorsWhitelist.UnknownFlags = true
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	RequestTimeout=%s
	ShutdownTimeout=%s

	Mongo:
	URI=%q
	Database=%q
	OperationTimeout=%s
	TLS=%t

	BrokerConfig:
	Enabled=%t
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		OrderEvents=%q
		ReviewEvents=%q
	Consumers:
		ProductRatingGroup=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.RequestTimeout,
		c.ShutdownTimeout,
		redactURI(c.Mongo.URI),
		c.Mongo.Database,
		c.Mongo.OperationTimeout,
		c.Mongo.TLS.Enabled(),
		c.Broker.Enabled,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.OrderEvents,
		c.Broker.Topics.ReviewEvents,
		c.Broker.Consumers.ProductRatingGroup,
	)
}

// redactURI hides credentials embedded in a connection string.
func redactURI(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	userinfo, host, ok := strings.Cut(rest, "@")
	if !ok {
		return uri
	}
	user, _, _ := strings.Cut(userinfo, ":")
	return scheme + "://" + user + ":***@" + host
}
