package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Practice.Pool != nil || cfg.Log.Level != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[practice]
pool = "top"
reflexive-prob = 0.3
max-attempts = 20
reward-exts = [".gif"]

[log]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Practice.Pool == nil || *cfg.Practice.Pool != "top" {
		t.Fatalf("unexpected pool: %v", cfg.Practice.Pool)
	}
	if cfg.Practice.ReflexiveProb == nil || *cfg.Practice.ReflexiveProb != 0.3 {
		t.Fatalf("unexpected reflexive-prob: %v", cfg.Practice.ReflexiveProb)
	}
	if cfg.Practice.MaxAttempts == nil || *cfg.Practice.MaxAttempts != 20 {
		t.Fatalf("unexpected max-attempts: %v", cfg.Practice.MaxAttempts)
	}
	if cfg.Practice.RewardExts == nil || len(*cfg.Practice.RewardExts) != 1 {
		t.Fatalf("unexpected reward-exts: %v", cfg.Practice.RewardExts)
	}
	if cfg.Practice.DataDir != nil {
		t.Fatalf("expected unset data-dir")
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" || cfg.Log.Format == nil || *cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice]\nlang = \"en\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "practice.lang") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "coucou", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDataDir(); got != filepath.Join("/tmp/cfg", "coucou", "data") {
		t.Fatalf("unexpected data dir: %s", got)
	}
	if got := DefaultRewardDir(); got != filepath.Join("/tmp/cfg", "coucou", "rewards") {
		t.Fatalf("unexpected reward dir: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "coucou", "coucou.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
