// Package fetch retrieves web pages, strips boilerplate markup, and caches
// the reduced text on disk for a bounded time window.
package fetch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/hoshizora/oboeru/internal/models"
)

// HTTPFetcher fetches pages over HTTP with a per-URL JSON cache.
type HTTPFetcher struct {
	client    *http.Client
	cacheDir  string
	ttl       time.Duration
	userAgent string
	logger    *zap.Logger
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithLogger sets a logger for debug output (cache hits, fetch failures).
func WithLogger(l *zap.Logger) Option {
	return func(f *HTTPFetcher) { f.logger = l }
}

// WithClient overrides the HTTP client (used by tests).
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// NewHTTPFetcher creates a fetcher. cacheDir may be empty to disable the
// page cache; ttl bounds how long cached pages are served.
func NewHTTPFetcher(cacheDir string, ttl time.Duration, timeout time.Duration, userAgent string, opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		cacheDir:  cacheDir,
		ttl:       ttl,
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the readable text of the page at url, serving from the cache
// when a fresh entry exists. Any network or parse failure is returned as an
// error; callers degrade rather than retry.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*models.Page, error) {
	if page, ok := f.fromCache(url); ok {
		if f.logger != nil {
			f.logger.Debug("page cache hit", zap.String("url", url))
		}
		return page, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	title, text, err := extractReadable(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	if title == "" {
		title = url
	}
	page := &models.Page{URL: url, Title: title, Text: text}
	f.toCache(url, page)
	return page, nil
}

// fromCache loads a cached page when the entry is younger than the TTL.
func (f *HTTPFetcher) fromCache(url string) (*models.Page, bool) {
	if f.cacheDir == "" {
		return nil, false
	}
	path := f.cachePath(url)
	info, err := os.Stat(path)
	if err != nil || time.Since(info.ModTime()) >= f.ttl {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var page models.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (f *HTTPFetcher) toCache(url string, page *models.Page) {
	if f.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(f.cacheDir, 0755); err != nil {
		return
	}
	data, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := os.WriteFile(f.cachePath(url), data, 0600); err != nil && f.logger != nil {
		f.logger.Debug("page cache write failed", zap.String("url", url), zap.Error(err))
	}
}

// cachePath keys cache entries by a content-independent hash of the URL.
func (f *HTTPFetcher) cachePath(url string) string {
	digest := sha1.Sum([]byte(url))
	return filepath.Join(f.cacheDir, hex.EncodeToString(digest[:])+".json")
}

// boilerplateTags are elements whose subtrees carry navigation or styling
// rather than content.
var boilerplateTags = map[string]struct{}{
	"script": {}, "style": {}, "nav": {}, "footer": {},
	"header": {}, "aside": {}, "noscript": {},
}

// extractReadable parses HTML and returns the page title and the text of the
// document with boilerplate subtrees removed, one trimmed line per text node.
func extractReadable(body []byte) (title, text string, err error) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", "", err
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := boilerplateTags[n.Data]; skip {
				return
			}
			if n.Data == "title" && title == "" && n.FirstChild != nil {
				title = strings.TrimSpace(n.FirstChild.Data)
				return
			}
		}
		if n.Type == html.TextNode {
			if line := strings.TrimSpace(n.Data); line != "" {
				lines = append(lines, line)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title, strings.Join(lines, "\n"), nil
}
