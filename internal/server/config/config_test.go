package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionValidityDuration)
	assert.False(t, cfg.CookieSecure)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.S3Bucket)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"srv", "-a", ":9999", "-o", "https://fit.example", "-t", "48", "-k"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "https://fit.example", cfg.BaseURL)
	assert.Equal(t, 48*time.Hour, cfg.SessionValidityDuration)
	assert.True(t, cfg.CookieSecure)
	// untouched fields keep their defaults
	assert.Equal(t, "secretKey", cfg.SecretKey)
}

func TestParseJson_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	payload := map[string]any{
		"endpoint_addr":             ":7070",
		"base_url":                  "https://json.example",
		"database_dsn":              "postgres://json",
		"secret_key":                "json-secret",
		"session_validity_duration": "720h",
		"cookie_secure":             true,
		"s3_root_user":              "root",
		"s3_root_password":          "pw",
		"s3_bucket":                 "b",
		"s3_region":                 "r",
		"s3_base_endpoint":          "http://s3.local/",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"srv", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "https://json.example", cfg.BaseURL)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 720*time.Hour, cfg.SessionValidityDuration)
	assert.True(t, cfg.CookieSecure)
}
