// Package pipeline orchestrates retrieval, web augmentation, and answer
// composition on top of the document index.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/hoshizora/oboeru/internal/config"
	"github.com/hoshizora/oboeru/internal/extract"
	"github.com/hoshizora/oboeru/internal/index"
	"github.com/hoshizora/oboeru/internal/models"
	"github.com/hoshizora/oboeru/pkg/utils"
)

// uncertaintyAnswer is returned when retrieval surfaces nothing.
const uncertaintyAnswer = "High uncertainty."

// maxAnswerSources caps how many top results feed the composed answer.
const maxAnswerSources = 3

// WebSearcher finds candidate pages for a query.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]*models.WebResult, error)
}

// PageFetcher retrieves and cleans a single web page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*models.Page, error)
}

// Summarizer condenses text to a bounded number of sentences.
type Summarizer interface {
	Summarize(text string, maxSentences int) string
}

// Notebook records facts, notes, and the interaction history.
type Notebook interface {
	AddFact(ctx context.Context, text string) error
	Remember(ctx context.Context, key, value string) error
	Recall(ctx context.Context) (map[string]string, error)
	LogInteraction(ctx context.Context, question, answer string) error
}

// Pipeline ties the index to web augmentation and answer composition.
type Pipeline struct {
	store      *index.Store
	searcher   WebSearcher
	fetcher    PageFetcher
	summarizer Summarizer
	notebook   Notebook
	extractor  *extract.Extractor
	cfg        *config.Config
	logger     *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline creates a pipeline over the given collaborators.
func NewPipeline(store *index.Store, searcher WebSearcher, fetcher PageFetcher, summarizer Summarizer, notebook Notebook, extractor *extract.Extractor, cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:      store,
		searcher:   searcher,
		fetcher:    fetcher,
		summarizer: summarizer,
		notebook:   notebook,
		extractor:  extractor,
		cfg:        cfg,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Retrieve runs a local search and, when the caller allows it and the top
// score falls below the confidence threshold, performs at most one web
// augmentation pass before searching again. Augmentation failures degrade
// the answer quality but never fail the retrieval.
func (p *Pipeline) Retrieve(ctx context.Context, query string, allowWeb bool) *models.Retrieval {
	results := p.store.Search(query, p.cfg.Search.TopK)
	confidence := topScore(results)

	if allowWeb && confidence < p.cfg.Pipeline.ConfidenceThreshold {
		p.logger.Info("confidence below threshold, augmenting from web",
			zap.Float64("confidence", confidence),
			zap.Float64("threshold", p.cfg.Pipeline.ConfidenceThreshold))
		p.augment(ctx, query)
		results = p.store.Search(query, p.cfg.Search.TopK)
		confidence = topScore(results)
	}

	return &models.Retrieval{Results: results, Confidence: confidence}
}

// augment searches the web, fetches each candidate page, and indexes the
// ones with enough usable text. Per-page errors skip that page only.
func (p *Pipeline) augment(ctx context.Context, query string) {
	hits, err := p.searcher.Search(ctx, query, p.cfg.Pipeline.MaxWebResults)
	if err != nil {
		p.logger.Warn("web search failed", zap.Error(err))
		return
	}

	indexed := 0
	for _, hit := range hits {
		page, err := p.fetcher.Fetch(ctx, hit.URL)
		if err != nil {
			p.logger.Debug("page fetch failed", zap.String("url", hit.URL), zap.Error(err))
			continue
		}
		if utf8.RuneCountInString(page.Text) <= p.cfg.Pipeline.MinWebTextChars {
			continue
		}
		if _, err := p.store.Add(page.Title, page.Text, page.URL, models.SourceWeb); err != nil {
			p.logger.Debug("indexing web page failed", zap.String("url", page.URL), zap.Error(err))
			continue
		}
		indexed++
	}
	p.logger.Info("web augmentation finished", zap.Int("candidates", len(hits)), zap.Int("indexed", indexed))
}

// ComposeAnswer classifies and applies any memory command in the query,
// retrieves context, and composes a bounded extractive answer. The full
// interaction is appended to history on a best-effort basis.
func (p *Pipeline) ComposeAnswer(ctx context.Context, query string, allowWeb bool) *models.Answer {
	switch cmd := Classify(query); cmd.Kind {
	case CommandFact:
		if err := p.notebook.AddFact(ctx, cmd.Value); err != nil {
			p.logger.Warn("storing fact failed", zap.Error(err))
		}
	case CommandNote:
		if err := p.notebook.Remember(ctx, cmd.Key, cmd.Value); err != nil {
			p.logger.Warn("storing note failed", zap.Error(err))
		}
	}

	ret := p.Retrieve(ctx, query, allowWeb)

	var answer string
	var sources []models.Source
	if len(ret.Results) == 0 {
		answer = uncertaintyAnswer
	} else {
		top := ret.Results
		if len(top) > maxAnswerSources {
			top = top[:maxAnswerSources]
		}

		texts := make([]string, 0, len(top))
		for _, r := range top {
			texts = append(texts, r.Document.Text)
		}
		merged := strings.Join(texts, "\n\n")

		summary := p.summarizer.Summarize(merged, p.cfg.Pipeline.SummarySentences)
		if summary == "" {
			summary = leading(merged, p.cfg.Pipeline.FallbackChars)
		}

		lines := []string{summary}
		lines = append(lines, p.noteLines(ctx)...)
		answer = utils.Truncate(strings.Join(lines, " \n"), p.cfg.Pipeline.MaxAnswerChars)

		for _, r := range top {
			title := r.Document.Title
			if title == "" {
				title = r.Document.URL
			}
			sources = append(sources, models.Source{Title: title, URL: r.Document.URL})
		}
	}

	if err := p.notebook.LogInteraction(ctx, query, answer); err != nil {
		p.logger.Warn("recording interaction failed", zap.Error(err))
	}

	return &models.Answer{Answer: answer, Sources: sources, Confidence: ret.Confidence}
}

// noteLines renders the remembered notes in sorted key order so answers
// are deterministic for the same notebook state.
func (p *Pipeline) noteLines(ctx context.Context) []string {
	notes, err := p.notebook.Recall(ctx)
	if err != nil {
		p.logger.Warn("recalling notes failed", zap.Error(err))
		return nil
	}
	if len(notes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(notes))
	for k := range notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("Note: %s -> %s", k, notes[k]))
	}
	return lines
}

// IngestText adds raw text to the index as a local document. An empty url
// is recorded as "local".
func (p *Pipeline) IngestText(title, text, url string) (*models.Document, error) {
	if url == "" {
		url = "local"
	}
	return p.store.Add(title, text, url, models.SourceLocal)
}

// IngestURL fetches a page and indexes its readable text as a web document.
func (p *Pipeline) IngestURL(ctx context.Context, url string) (*models.Document, error) {
	page, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	return p.store.Add(page.Title, page.Text, page.URL, models.SourceWeb)
}

// IngestFile persists an uploaded file into the knowledge directory under a
// sanitized name, extracts its text, and indexes it.
func (p *Pipeline) IngestFile(filename string, content []byte) (*models.Document, error) {
	name := utils.SanitizeFilename(filename)
	dir := p.cfg.Storage.KnowledgeDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create knowledge directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", name, err)
	}

	text := p.extractor.Extract(content, name)
	if strings.TrimSpace(text) == "" {
		return nil, models.ErrEmptyText
	}
	return p.store.Add(name, text, path, models.SourceLocal)
}

// IngestPath reads a file already on disk, extracts its text, and indexes
// it. Used by the knowledge-directory watcher.
func (p *Pipeline) IngestPath(path string) (*models.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := p.extractor.Extract(content, path)
	if strings.TrimSpace(text) == "" {
		return nil, models.ErrEmptyText
	}
	return p.store.Add(filepath.Base(path), text, path, models.SourceLocal)
}

func topScore(results []*models.ScoredDocument) float64 {
	if len(results) == 0 {
		return 0
	}
	return results[0].Score
}

// leading returns the first n runes of s, never splitting a character.
func leading(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
