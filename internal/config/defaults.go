package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.IndexPath == "" {
		cfg.Storage.IndexPath = "/usr/local/var/oboeru/data/index.json"
	}
	if cfg.Storage.PagesDir == "" {
		cfg.Storage.PagesDir = "/usr/local/var/oboeru/data/pages"
	}
	if cfg.Storage.MemoryPath == "" {
		cfg.Storage.MemoryPath = "/usr/local/var/oboeru/data/memory.db"
	}
	if cfg.Storage.KnowledgeDir == "" {
		cfg.Storage.KnowledgeDir = "/usr/local/var/oboeru/knowledge"
	}
	if cfg.Search.TopK == 0 {
		cfg.Search.TopK = 5
	}
	if cfg.Pipeline.ConfidenceThreshold == 0 {
		cfg.Pipeline.ConfidenceThreshold = 0.35
	}
	if cfg.Pipeline.MaxWebResults == 0 {
		cfg.Pipeline.MaxWebResults = 3
	}
	if cfg.Pipeline.MinWebTextChars == 0 {
		cfg.Pipeline.MinWebTextChars = 200
	}
	if cfg.Pipeline.SummarySentences == 0 {
		cfg.Pipeline.SummarySentences = 4
	}
	if cfg.Pipeline.FallbackChars == 0 {
		cfg.Pipeline.FallbackChars = 400
	}
	if cfg.Pipeline.MaxAnswerChars == 0 {
		cfg.Pipeline.MaxAnswerChars = 700
	}
	if cfg.Fetch.TimeoutSeconds == 0 {
		cfg.Fetch.TimeoutSeconds = 10
	}
	if cfg.Fetch.CacheTTLHours == 0 {
		cfg.Fetch.CacheTTLHours = 72
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Oboeru/1.0 (+https://example.local)"
	}
	if cfg.Watch.Extensions == nil {
		cfg.Watch.Extensions = []string{".txt", ".md", ".rst", ".pdf", ".docx", ".xlsx"}
	}
}
