package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.a2aj.ca", cfg.Coverage.BaseURL)
	assert.Equal(t, 30, cfg.Coverage.Timeout)
	assert.Equal(t, 0, cfg.Coverage.Retries)
	assert.Equal(t, "README.md", cfg.Output.Path)
	assert.False(t, cfg.MinIO.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Discord.Enabled())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OUTPUT_PATH", "docs/README.md")
	t.Setenv("COVERAGE_RETRIES", "2")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "docs/README.md", cfg.Output.Path)
	assert.Equal(t, 2, cfg.Coverage.Retries)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Coverage: CoverageConfig{BaseURL: "https://api.a2aj.ca", Timeout: 30},
			Output:   OutputConfig{Path: "README.md"},
		}
	}

	tcs := map[string]struct {
		mutate  func(*Config)
		wantErr string
	}{
		"defaults": {
			mutate: func(*Config) {},
		},
		"missing base url": {
			mutate:  func(c *Config) { c.Coverage.BaseURL = "" },
			wantErr: "coverage.base_url is required",
		},
		"negative retries": {
			mutate:  func(c *Config) { c.Coverage.Retries = -1 },
			wantErr: "coverage.retries must not be negative",
		},
		"missing output path": {
			mutate:  func(c *Config) { c.Output.Path = "" },
			wantErr: "output.path is required",
		},
		"disabled minio is not checked": {
			mutate: func(c *Config) { c.MinIO = MinIOConfig{Enabled: false} },
		},
		"enabled minio without bucket": {
			mutate: func(c *Config) {
				c.MinIO = MinIOConfig{Enabled: true, Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}
			},
			wantErr: "minio.bucket is required",
		},
		"enabled redis without host": {
			mutate:  func(c *Config) { c.Redis = RedisConfig{Enabled: true, Port: 6379} },
			wantErr: "redis.host is required",
		},
		"discord id without token": {
			mutate:  func(c *Config) { c.Discord.WebhookID = "123" },
			wantErr: "must be set together",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := validate(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
