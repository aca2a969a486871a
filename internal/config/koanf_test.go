// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// isolate points CONFIG_PATH at a file that does not exist and runs from an
// empty directory so no stray config.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	return dir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want 0.0.0.0:8080", cfg.Server.Addr())
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("Catalog.Path = %q, want built-in catalog", cfg.Catalog.Path)
	}
	if cfg.Recommend.Limits.DefaultCount != 3 {
		t.Errorf("Recommend.Limits.DefaultCount = %d, want 3", cfg.Recommend.Limits.DefaultCount)
	}
	if cfg.Sessions.Store != "memory" || cfg.Sessions.TTL != 30*time.Minute {
		t.Errorf("Sessions = %+v, want memory with 30m TTL", cfg.Sessions)
	}
	if cfg.Purchase.StatsBackend != "memory" {
		t.Errorf("Purchase.StatsBackend = %q, want memory", cfg.Purchase.StatsBackend)
	}
	if len(cfg.Purchase.AllowedDomains) == 0 {
		t.Error("Purchase.AllowedDomains should not be empty")
	}
	if cfg.NATS.Enabled {
		t.Error("NATS.Enabled should be false by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"http_port", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"CATALOG_PATH", "catalog.path"},
		{"RECOMMEND_CACHE_TTL", "recommend.cache.ttl"},
		{"SESSION_STORE", "sessions.store"},
		{"SESSION_STORE_PATH", "sessions.path"},
		{"PURCHASE_ALLOWED_DOMAINS", "purchase.allowed_domains"},
		{"PURCHASE_BREAKER_FAILURES", "purchase.breaker.failure_threshold"},
		{"NATS_URL", "nats.url"},

		// unmapped variables are ignored
		{"PATH", ""},
		{"HOME", ""},
		{"SERVER_PORT", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEnvMappingsTargetKnownKeys(t *testing.T) {
	t.Parallel()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	for env, path := range envMappings {
		if !k.Exists(path) {
			t.Errorf("%s maps to %q which is not a config key", strings.ToUpper(env), path)
		}
	}
}

func TestProcessSliceFields(t *testing.T) {
	t.Parallel()

	k := koanf.New(".")
	_ = k.Set("security.cors_origins", " https://a.example , https://b.example,, ")
	_ = k.Set("purchase.allowed_domains", []string{"kept.example"})
	_ = k.Set("security.trusted_proxies", "")

	if err := processSliceFields(k); err != nil {
		t.Fatalf("processSliceFields: %v", err)
	}

	if got := k.Strings("security.cors_origins"); !reflect.DeepEqual(got, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("cors_origins = %v", got)
	}
	if got := k.Strings("purchase.allowed_domains"); !reflect.DeepEqual(got, []string{"kept.example"}) {
		t.Errorf("allowed_domains = %v", got)
	}
	if got := k.String("security.trusted_proxies"); got != "" {
		t.Errorf("trusted_proxies = %q, want untouched empty string", got)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	want := defaultConfig()
	if cfg.Server != want.Server {
		t.Errorf("Server = %+v, want %+v", cfg.Server, want.Server)
	}
	if cfg.Logging != want.Logging {
		t.Errorf("Logging = %+v, want %+v", cfg.Logging, want.Logging)
	}
	if cfg.Sessions != want.Sessions {
		t.Errorf("Sessions = %+v, want %+v", cfg.Sessions, want.Sessions)
	}
	if cfg.Recommend.Cache != want.Recommend.Cache || cfg.Recommend.Limits != want.Recommend.Limits {
		t.Errorf("Recommend = %+v, want %+v", cfg.Recommend, want.Recommend)
	}
	if !reflect.DeepEqual(cfg.Purchase.AllowedDomains, want.Purchase.AllowedDomains) {
		t.Errorf("Purchase.AllowedDomains = %v, want %v", cfg.Purchase.AllowedDomains, want.Purchase.AllowedDomains)
	}
}

func TestLoadWithKoanf_FileAndEnvLayers(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "sakefinder.yaml")
	yaml := `
server:
  port: 9000
  environment: staging
logging:
  level: debug
recommend:
  limits:
    default_count: 5
  cache:
    ttl: 2m
sessions:
  store: badger
  ttl: 1h
purchase:
  allowed_domains:
    - shop.example
  stats_backend: duckdb
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	// environment beats the file
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("PURCHASE_ALLOWED_DOMAINS", "a.example, b.example")
	t.Setenv("SESSION_TTL", "45m")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100 from env", cfg.Server.Port)
	}
	if cfg.Server.Environment != "staging" {
		t.Errorf("Server.Environment = %q, want staging from file", cfg.Server.Environment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.Limits.DefaultCount != 5 {
		t.Errorf("Recommend.Limits.DefaultCount = %d, want 5", cfg.Recommend.Limits.DefaultCount)
	}
	if cfg.Recommend.Limits.MaxCount != 50 {
		t.Errorf("Recommend.Limits.MaxCount = %d, want default 50", cfg.Recommend.Limits.MaxCount)
	}
	if cfg.Recommend.Cache.TTL != 2*time.Minute {
		t.Errorf("Recommend.Cache.TTL = %v, want 2m", cfg.Recommend.Cache.TTL)
	}
	if cfg.Sessions.Store != "badger" || cfg.Sessions.TTL != 45*time.Minute {
		t.Errorf("Sessions = %+v, want badger with 45m TTL", cfg.Sessions)
	}
	if !reflect.DeepEqual(cfg.Purchase.AllowedDomains, []string{"a.example", "b.example"}) {
		t.Errorf("Purchase.AllowedDomains = %v", cfg.Purchase.AllowedDomains)
	}
	if cfg.Purchase.StatsBackend != "duckdb" {
		t.Errorf("Purchase.StatsBackend = %q, want duckdb", cfg.Purchase.StatsBackend)
	}
}

func TestLoadWithKoanf_InvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("SESSION_STORE", "redis")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "SESSION_STORE") {
		t.Errorf("error = %v, want SESSION_STORE mention", err)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolate(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want none", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 8081\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() = %q, want config.yaml", got)
	}

	explicit := filepath.Join(dir, "explicit.yaml")
	if err := os.WriteFile(explicit, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, explicit)
	if got := findConfigFile(); got != explicit {
		t.Errorf("findConfigFile() = %q, want %q", got, explicit)
	}
}
