// Package config provides configuration loading and structs for the oboeru server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Search   SearchConfig   `yaml:"search"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Watch    WatchConfig    `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds paths for the document collection, page cache,
// memory notebook database, and the knowledge drop directory.
type StorageConfig struct {
	IndexPath    string `yaml:"index_path"`
	PagesDir     string `yaml:"pages_dir"`
	MemoryPath   string `yaml:"memory_path"`
	KnowledgeDir string `yaml:"knowledge_dir"`
}

// SearchConfig holds search settings.
type SearchConfig struct {
	TopK int `yaml:"top_k"`
}

// PipelineConfig holds retrieval and answer-composition settings.
type PipelineConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	MaxWebResults       int     `yaml:"max_web_results"`
	MinWebTextChars     int     `yaml:"min_web_text_chars"`
	SummarySentences    int     `yaml:"summary_sentences"`
	FallbackChars       int     `yaml:"fallback_chars"`
	MaxAnswerChars      int     `yaml:"max_answer_chars"`
}

// FetchConfig holds web page fetching settings.
type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	CacheTTLHours  int    `yaml:"cache_ttl_hours"`
	UserAgent      string `yaml:"user_agent"`
}

// WatchConfig holds knowledge-directory watch settings.
type WatchConfig struct {
	Enabled    *bool    `yaml:"enabled"`
	Extensions []string `yaml:"extensions"`
}

// EnabledOrDefault returns whether watching is enabled; defaults to true when unset.
func (w *WatchConfig) EnabledOrDefault() bool {
	if w.Enabled != nil {
		return *w.Enabled
	}
	return true
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.IndexPath = expandPath(cfg.Storage.IndexPath, configDir)
	cfg.Storage.PagesDir = expandPath(cfg.Storage.PagesDir, configDir)
	cfg.Storage.MemoryPath = expandPath(cfg.Storage.MemoryPath, configDir)
	cfg.Storage.KnowledgeDir = expandPath(cfg.Storage.KnowledgeDir, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
