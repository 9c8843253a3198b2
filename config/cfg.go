package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/audira/music-metrics/internal/api/http"
	"github.com/audira/music-metrics/internal/client"
	"github.com/audira/music-metrics/internal/metrics"
	"github.com/audira/music-metrics/internal/store"
	"github.com/audira/music-metrics/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB              store.Config   `mapstructure:"mysql"`
	Logger          log.Config     `mapstructure:"logger"`
	HTTP            httpapi.Config `mapstructure:"http"`
	UserService     client.Config  `mapstructure:"user_service"`
	RatingService   client.Config  `mapstructure:"rating_service"`
	CommerceService client.Config  `mapstructure:"commerce_service"`
	Metrics         metrics.Config `mapstructure:"metrics"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults()
	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/music-metrics")
		viper.AddConfigPath("/etc/music-metrics")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		mysqlHost := os.Getenv("MYSQL_HOST")
		mysqlPort := os.Getenv("MYSQL_PORT")
		mysqlUser := os.Getenv("MYSQL_USER")
		mysqlPassword := os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase := os.Getenv("MYSQL_DATABASE")
		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlDatabase != "" {
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase)
			}
		}
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("http.port", "8084")
	viper.SetDefault("http.rate_limit.window", "1m")
	viper.SetDefault("http.rate_limit.max_requests", 120)
	viper.SetDefault("user_service.timeout", "5s")
	viper.SetDefault("rating_service.timeout", "5s")
	viper.SetDefault("commerce_service.timeout", "10s")
	viper.SetDefault("metrics.distribution_seed", metrics.DefaultConfig().DistributionSeed)
	viper.SetDefault("metrics.rating_fanout", metrics.DefaultConfig().RatingFanout)
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	viper.BindEnv("mysql.conn_max_lifetime", "MYSQL_CONN_MAX_LIFETIME")
	viper.BindEnv("mysql.conn_max_idle_time", "MYSQL_CONN_MAX_IDLE_TIME")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.rate_limit.window", "HTTP_RATE_LIMIT_WINDOW")
	viper.BindEnv("http.rate_limit.max_requests", "HTTP_RATE_LIMIT_MAX_REQUESTS")
	viper.BindEnv("http.rate_limit.trusted_proxies", "HTTP_RATE_LIMIT_TRUSTED_PROXIES")

	// Upstream services
	viper.BindEnv("user_service.base_url", "USER_SERVICE_URL")
	viper.BindEnv("user_service.timeout", "USER_SERVICE_TIMEOUT")
	viper.BindEnv("rating_service.base_url", "RATING_SERVICE_URL")
	viper.BindEnv("rating_service.timeout", "RATING_SERVICE_TIMEOUT")
	viper.BindEnv("commerce_service.base_url", "COMMERCE_SERVICE_URL")
	viper.BindEnv("commerce_service.timeout", "COMMERCE_SERVICE_TIMEOUT")

	// Metrics
	viper.BindEnv("metrics.distribution_seed", "METRICS_DISTRIBUTION_SEED")
	viper.BindEnv("metrics.rating_fanout", "METRICS_RATING_FANOUT")
}
