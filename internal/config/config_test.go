package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d, err := cfg.Gateway.Timeout()
	if err != nil {
		t.Fatalf("Timeout: %v", err)
	}
	if d != 30*time.Second {
		t.Errorf("timeout = %v", d)
	}
	if cfg.Gateway.MaxTokens != 1024 {
		t.Errorf("max tokens = %d", cfg.Gateway.MaxTokens)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "praxis.yaml")
	body := `
gateway:
  max_tokens: 2048
  provider_timeout: 10s
cache:
  capacity: 50
  ttl: 5m
  salt: classroom-a
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gateway.MaxTokens != 2048 {
		t.Errorf("max tokens = %d", cfg.Gateway.MaxTokens)
	}
	if d, _ := cfg.Gateway.Timeout(); d != 10*time.Second {
		t.Errorf("timeout = %v", d)
	}
	// Unset fields keep their defaults.
	if cfg.Gateway.HistoryLimit != 20 {
		t.Errorf("history limit = %d", cfg.Gateway.HistoryLimit)
	}

	cc, err := cfg.Cache.Build()
	if err != nil {
		t.Fatalf("cache build: %v", err)
	}
	if cc.Capacity != 50 || cc.Salt != "classroom-a" || cc.TTL != 5*time.Minute {
		t.Errorf("cache = %+v", cc)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "praxis.yaml")
	if err := os.WriteFile(path, []byte("gateway: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml should error")
	}
}

func TestBadDuration(t *testing.T) {
	g := GatewayConfig{ProviderTimeout: "soon"}
	if _, err := g.Timeout(); err == nil {
		t.Fatal("bad duration should error")
	}

	c := CacheConfig{TTL: "whenever"}
	if _, err := c.Build(); err == nil {
		t.Fatal("bad ttl should error")
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("PRAXIS_CONFIG", "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("DefaultPath = %s", got)
	}
}
