package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all generator configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Coverage API - Source of dataset counts
	Coverage CoverageConfig

	// Output - Local README
	Output OutputConfig

	// MinIO - README mirror (optional)
	MinIO MinIOConfig

	// Redis - Run snapshots (optional)
	Redis RedisConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CoverageConfig is the configuration for the coverage API client
type CoverageConfig struct {
	BaseURL   string
	Timeout   int // in seconds
	Retries   int
	RetryWait int // in milliseconds
}

// OutputConfig is the configuration for the generated README
type OutputConfig struct {
	Path string
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Enabled       bool
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Region        string
	Bucket        string
	ObjectPrefix  string
	PresignExpiry int // in seconds, 0 disables presigning
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Password    string
	DB          int
	SnapshotTTL int // in seconds, 0 keeps snapshots forever
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Enabled reports whether a webhook is configured.
func (c DiscordConfig) Enabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// TimeoutDuration returns the HTTP timeout as a time.Duration.
func (c CoverageConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// RetryWaitDuration returns the retry wait as a time.Duration.
func (c CoverageConfig) RetryWaitDuration() time.Duration {
	return time.Duration(c.RetryWait) * time.Millisecond
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("catalogue-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/a2aj/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Logger
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Coverage API
	cfg.Coverage.BaseURL = viper.GetString("coverage.base_url")
	cfg.Coverage.Timeout = viper.GetInt("coverage.timeout")
	cfg.Coverage.Retries = viper.GetInt("coverage.retries")
	cfg.Coverage.RetryWait = viper.GetInt("coverage.retry_wait")

	// Output
	cfg.Output.Path = viper.GetString("output.path")

	// MinIO - README mirror
	cfg.MinIO.Enabled = viper.GetBool("minio.enabled")
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")
	cfg.MinIO.ObjectPrefix = viper.GetString("minio.object_prefix")
	cfg.MinIO.PresignExpiry = viper.GetInt("minio.presign_expiry")

	// Redis - Run snapshots
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.SnapshotTTL = viper.GetInt("redis.snapshot_ttl")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Coverage API
	viper.SetDefault("coverage.base_url", "https://api.a2aj.ca")
	viper.SetDefault("coverage.timeout", 30)
	viper.SetDefault("coverage.retries", 0)
	viper.SetDefault("coverage.retry_wait", 1000)

	// 2. Output
	viper.SetDefault("output.path", "README.md")

	// 3. MinIO (disabled unless configured)
	viper.SetDefault("minio.enabled", false)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "a2aj-catalogue")
	viper.SetDefault("minio.object_prefix", "catalogue/")
	viper.SetDefault("minio.presign_expiry", 0)

	// 4. Redis (disabled unless configured)
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.snapshot_ttl", 0)
}

func validate(cfg *Config) error {
	// Validate Coverage API
	if cfg.Coverage.BaseURL == "" {
		return fmt.Errorf("coverage.base_url is required")
	}
	if cfg.Coverage.Timeout <= 0 {
		return fmt.Errorf("coverage.timeout must be greater than 0")
	}
	if cfg.Coverage.Retries < 0 {
		return fmt.Errorf("coverage.retries must not be negative")
	}

	if cfg.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}

	// Validate MinIO Configuration
	if cfg.MinIO.Enabled {
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required")
		}
		if cfg.MinIO.AccessKey == "" {
			return fmt.Errorf("minio.access_key is required")
		}
		if cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio.secret_key is required")
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required")
		}
		if cfg.MinIO.PresignExpiry < 0 || cfg.MinIO.PresignExpiry > 7*24*3600 {
			return fmt.Errorf("minio.presign_expiry must be between 0 and 604800 seconds")
		}
	}

	// Validate Redis Configuration
	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
		if cfg.Redis.SnapshotTTL < 0 {
			return fmt.Errorf("redis.snapshot_ttl must not be negative")
		}
	}

	if (cfg.Discord.WebhookID == "") != (cfg.Discord.WebhookToken == "") {
		return fmt.Errorf("discord.webhook_id and discord.webhook_token must be set together")
	}

	return nil
}
