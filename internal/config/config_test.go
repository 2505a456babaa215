package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: got %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Search.TopK != 5 {
		t.Errorf("top_k default: got %d, want 5", cfg.Search.TopK)
	}
	if cfg.Pipeline.ConfidenceThreshold != 0.35 {
		t.Errorf("confidence threshold default: got %f, want 0.35", cfg.Pipeline.ConfidenceThreshold)
	}
	if cfg.Pipeline.MaxWebResults != 3 {
		t.Errorf("max web results default: got %d, want 3", cfg.Pipeline.MaxWebResults)
	}
	if cfg.Pipeline.MinWebTextChars != 200 {
		t.Errorf("min web text default: got %d, want 200", cfg.Pipeline.MinWebTextChars)
	}
	if cfg.Pipeline.MaxAnswerChars != 700 {
		t.Errorf("max answer default: got %d, want 700", cfg.Pipeline.MaxAnswerChars)
	}
	if cfg.Fetch.CacheTTLHours != 72 {
		t.Errorf("cache ttl default: got %d, want 72", cfg.Fetch.CacheTTLHours)
	}
	if len(cfg.Watch.Extensions) == 0 {
		t.Error("watch extensions default missing")
	}
	if !cfg.Watch.EnabledOrDefault() {
		t.Error("watch should default to enabled")
	}
}

func TestApplyDefaults_DoesNotOverrideSetValues(t *testing.T) {
	cfg := Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 9000},
		Pipeline: PipelineConfig{ConfidenceThreshold: 0.5},
	}
	ApplyDefaults(&cfg)
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9000 {
		t.Error("explicit server settings were overridden")
	}
	if cfg.Pipeline.ConfidenceThreshold != 0.5 {
		t.Error("explicit threshold was overridden")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: 127.0.0.1
  port: 9090
storage:
  index_path: ./data/index.json
  memory_path: ./data/memory.db
pipeline:
  max_web_results: 5
watch:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug not parsed")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Pipeline.MaxWebResults != 5 {
		t.Errorf("max web results: got %d, want 5", cfg.Pipeline.MaxWebResults)
	}
	// Relative "./" paths are expanded against the config dir.
	want := filepath.Join(dir, "data/index.json")
	if cfg.Storage.IndexPath != want {
		t.Errorf("index path: got %s, want %s", cfg.Storage.IndexPath, want)
	}
	// Unset values still get defaults.
	if cfg.Search.TopK != 5 {
		t.Errorf("top_k default missing: got %d", cfg.Search.TopK)
	}
	if cfg.Watch.EnabledOrDefault() {
		t.Error("watch.enabled=false not honored")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
