// Package main is the Oboeru CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hoshizora/oboeru/internal/config"
	"github.com/hoshizora/oboeru/internal/extract"
	"github.com/hoshizora/oboeru/internal/fetch"
	"github.com/hoshizora/oboeru/internal/index"
	"github.com/hoshizora/oboeru/internal/memory"
	"github.com/hoshizora/oboeru/internal/models"
	"github.com/hoshizora/oboeru/internal/pipeline"
	"github.com/hoshizora/oboeru/internal/server"
	"github.com/hoshizora/oboeru/internal/storage"
	"github.com/hoshizora/oboeru/internal/summarize"
	"github.com/hoshizora/oboeru/internal/watcher"
	"github.com/hoshizora/oboeru/internal/websearch"
	"github.com/hoshizora/oboeru/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/oboeru/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used, so that "oboeru server" from the project dir uses the project's
// config (including debug). Returns the config and the path actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "ask":
		runAsk()
	case "search":
		runSearch()
	case "ingest":
		runIngest()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("oboeru version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (watch events, web augmentation, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger, debugMode)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	var watchSvc *watcher.Watcher
	if cfg.Watch.EnabledOrDefault() {
		p := components.Pipeline
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc = watcher.NewWatcher(
			cfg.Storage.KnowledgeDir,
			cfg.Watch.Extensions,
			func(path string) {
				if _, err := p.IngestPath(path); err != nil {
					logger.Warn("watch ingest failed", zap.String("path", path), zap.Error(err))
				}
			},
			watchOpts...,
		)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		watchSvc.SyncExistingFiles()
	}

	srv := server.NewServer(
		components.Pipeline,
		components.Store,
		components.Notebook,
		cfg,
		logger,
	)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	if watchSvc != nil {
		watchSvc.Stop()
	}
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// argsReorder moves any flags (and their values) that appear after the query
// to the front of the slice so that flag.Parse() sees them. Go's flag package
// stops at the first non-flag argument, so "oboeru ask \"query\" -allow-web=false"
// would otherwise leave -allow-web unparsed.
func argsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = run the pipeline in-process)")
	allowWeb := fs.Bool("allow-web", true, "allow a web augmentation pass when local confidence is low")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(argsReorder(os.Args[2:]))

	question := buildQuery(fs.Args())
	if question == "" {
		fmt.Println("Usage: oboeru ask [flags] <question>")
		os.Exit(1)
	}

	var answer models.Answer
	if *serverURL != "" {
		res, err := askViaHTTP(*serverURL, question, *allowWeb)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ask failed: %v\n", err)
			os.Exit(1)
		}
		answer = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		components, err := initializeComponents(cfg, logger, cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer components.Close()
		answer = *components.Pipeline.ComposeAnswer(context.Background(), question, *allowWeb)
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(answer); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Println(answer.Answer)
		if len(answer.Sources) > 0 {
			fmt.Println()
			fmt.Println("Sources:")
			for _, src := range answer.Sources {
				fmt.Printf("  - %s (%s)\n", src.Title, src.URL)
			}
		}
		fmt.Printf("\nConfidence: %.2f\n", answer.Confidence)
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func askViaHTTP(serverURL, question string, allowWeb bool) (*models.Answer, error) {
	body, err := json.Marshal(map[string]interface{}{"message": question, "allow_web": allowWeb})
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var answer models.Answer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &answer, nil
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = search the index in-process)")
	topK := fs.Int("top-k", 0, "number of results (0 = configured default)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(argsReorder(os.Args[2:]))

	query := buildQuery(fs.Args())
	if query == "" {
		fmt.Println("Usage: oboeru search [flags] <query>")
		os.Exit(1)
	}

	var results []*models.ScoredDocument
	if *serverURL != "" {
		res, err := searchViaHTTP(*serverURL, query, *topK)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		results = res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		components, err := initializeComponents(cfg, logger, cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer components.Close()
		results = components.Store.Search(query, *topK)
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		if len(results) == 0 {
			fmt.Println("No results.")
			return
		}
		for i, r := range results {
			fmt.Printf("%d. %s (score %.3f, %s)\n", i+1, r.Document.Title, r.Score, r.Document.SourceType)
			fmt.Printf("   %s\n", utils.Truncate(r.Document.Text, 160))
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func searchViaHTTP(serverURL, query string, topK int) ([]*models.ScoredDocument, error) {
	body, err := json.Marshal(map[string]interface{}{"query": query, "top_k": topK})
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/search", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var out struct {
		Results []*models.ScoredDocument `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Results, nil
}

// isHTTPURL reports whether arg should be ingested as a web page.
func isHTTPURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

func runIngest() {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = ingest in-process)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: oboeru ingest [flags] <file-or-url>")
		os.Exit(1)
	}
	target := fs.Arg(0)

	if *serverURL != "" {
		var doc *models.Document
		var err error
		if isHTTPURL(target) {
			doc, err = ingestURLViaHTTP(*serverURL, target)
		} else {
			doc, err = ingestFileViaHTTP(*serverURL, target)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ingest failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Document ingested: %s\n", doc.ID)
		return
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	components, err := initializeComponents(cfg, logger, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer components.Close()

	var doc *models.Document
	if isHTTPURL(target) {
		doc, err = components.Pipeline.IngestURL(context.Background(), target)
	} else {
		var content []byte
		content, err = os.ReadFile(target)
		if err == nil {
			doc, err = components.Pipeline.IngestFile(filepath.Base(target), content)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ingest failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Document ingested: %s\n", doc.ID)
}

func ingestURLViaHTTP(serverURL, target string) (*models.Document, error) {
	body, err := json.Marshal(map[string]string{"url": target})
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/ingest/url", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var doc models.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &doc, nil
}

func ingestFileViaHTTP(serverURL, path string) (*models.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(content); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/ingest/file", mw.FormDataContentType(), &buf)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var doc models.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &doc, nil
}

// statusConfigResponse holds configuration info returned by status.
type statusConfigResponse struct {
	IndexPath           string  `json:"index_path,omitempty"`
	KnowledgeDir        string  `json:"knowledge_dir,omitempty"`
	TopK                int     `json:"top_k,omitempty"`
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty"`
}

// statusResponse is the shape of GET /api/v1/status response.
type statusResponse struct {
	Documents      int64                 `json:"documents"`
	Notes          int64                 `json:"notes"`
	Facts          int64                 `json:"facts"`
	DiskUsageBytes *int64                `json:"disk_usage_bytes,omitempty"`
	Config         *statusConfigResponse `json:"config,omitempty"`
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = inspect storage in-process)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status statusResponse
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		components, err := initializeComponents(cfg, logger, cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer components.Close()
		ctx := context.Background()
		noteCount, err := components.Notebook.CountNotes(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count notes failed: %v\n", err)
			os.Exit(1)
		}
		factCount, err := components.Notebook.CountFacts(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count facts failed: %v\n", err)
			os.Exit(1)
		}
		status = statusResponse{
			Documents: int64(components.Store.Count()),
			Notes:     noteCount,
			Facts:     factCount,
			Config: &statusConfigResponse{
				IndexPath:           cfg.Storage.IndexPath,
				KnowledgeDir:        cfg.Storage.KnowledgeDir,
				TopK:                cfg.Search.TopK,
				ConfidenceThreshold: cfg.Pipeline.ConfidenceThreshold,
			},
		}
		diskBytes, err := storage.DiskUsageBytes(cfg.Storage.IndexPath, cfg.Storage.PagesDir, cfg.Storage.MemoryPath, cfg.Storage.KnowledgeDir)
		if err == nil {
			status.DiskUsageBytes = &diskBytes
		}
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("documents:         %d   # count of indexed documents\n", status.Documents)
		fmt.Printf("notes:             %d   # remembered key/value notes\n", status.Notes)
		fmt.Printf("facts:             %d   # remembered facts\n", status.Facts)
		if status.DiskUsageBytes != nil {
			fmt.Printf("disk_usage_bytes:  %d   # index + cache + notebook on disk\n", *status.DiskUsageBytes)
		}
		if status.Config != nil {
			fmt.Println()
			fmt.Println("# configuration")
			if status.Config.IndexPath != "" {
				fmt.Printf("index_path:            %s\n", status.Config.IndexPath)
			}
			if status.Config.KnowledgeDir != "" {
				fmt.Printf("knowledge_dir:         %s\n", status.Config.KnowledgeDir)
			}
			if status.Config.TopK > 0 {
				fmt.Printf("top_k:                 %d\n", status.Config.TopK)
			}
			if status.Config.ConfidenceThreshold > 0 {
				fmt.Printf("confidence_threshold:  %.2f\n", status.Config.ConfidenceThreshold)
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	resp, err := http.Get(serverURL + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var s statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

// Components holds initialized services.
type Components struct {
	Store    *index.Store
	Notebook *memory.Store
	Pipeline *pipeline.Pipeline
}

func (c *Components) Close() {
	if c.Notebook != nil {
		_ = c.Notebook.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger, debug bool) (*Components, error) {
	storeOpts := []index.StoreOption{}
	if debug && logger != nil {
		storeOpts = append(storeOpts, index.WithLogger(logger))
	}
	store, err := index.NewStore(storage.NewJSONCollection(cfg.Storage.IndexPath), storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize index: %w", err)
	}

	notebook, err := memory.NewStore(cfg.Storage.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize memory notebook: %w", err)
	}

	timeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	ttl := time.Duration(cfg.Fetch.CacheTTLHours) * time.Hour

	fetchOpts := []fetch.Option{}
	searchOpts := []websearch.Option{}
	pipeOpts := []pipeline.Option{}
	if debug && logger != nil {
		fetchOpts = append(fetchOpts, fetch.WithLogger(logger))
		searchOpts = append(searchOpts, websearch.WithLogger(logger))
		pipeOpts = append(pipeOpts, pipeline.WithLogger(logger))
	}
	fetcher := fetch.NewHTTPFetcher(cfg.Storage.PagesDir, ttl, timeout, cfg.Fetch.UserAgent, fetchOpts...)
	searcher := websearch.NewDuckDuckGo(timeout, cfg.Fetch.UserAgent, searchOpts...)

	p := pipeline.NewPipeline(
		store,
		searcher,
		fetcher,
		summarize.NewExtractive(),
		notebook,
		extract.NewExtractor(),
		cfg,
		pipeOpts...,
	)

	return &Components{
		Store:    store,
		Notebook: notebook,
		Pipeline: p,
	}, nil
}

func printUsage() {
	fmt.Println(`oboeru - Personal knowledge-base assistant

Usage:
  oboeru server [flags]           Start the HTTP server
  oboeru ask [flags] <question>   Ask a question against the knowledge base
  oboeru search [flags] <query>   Search indexed documents
  oboeru ingest [flags] <target>  Ingest a file or an http(s) URL
  oboeru status [flags]           Show index/notebook/storage status
  oboeru version                  Show version
  oboeru help                     Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/oboeru/config.yaml)
  --debug            Enable debug logging (watch events, web augmentation, etc.)

Ask Flags:
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") to run in-process.
  --allow-web        Allow a web augmentation pass when local confidence is low (default: true)
  --output string    Output format: text or json (default: text)

Search Flags:
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") to run in-process.
  --top-k int        Number of results (0 = configured default)
  --output string    Output format: text or json (default: text)

Ingest Flags:
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") to run in-process.

Status Flags:
  --config string    Config file path (for in-process mode)
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") for in-process.
  --output string    Output format: text or json (default: text)

Examples:
  oboeru server
  oboeru ask "what did the march planning notes decide"
  oboeru ask --allow-web=false "capital of France"
  oboeru search --top-k 10 project roadmap
  oboeru ingest notes/meeting.md
  oboeru ingest https://example.com/article
  oboeru status --output json`)
}
