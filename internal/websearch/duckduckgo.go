// Package websearch provides web search over the DuckDuckGo HTML endpoint.
package websearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/hoshizora/oboeru/internal/models"
)

const defaultEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGo scrapes the JavaScript-free DuckDuckGo results page.
type DuckDuckGo struct {
	client    *http.Client
	endpoint  string
	userAgent string
	logger    *zap.Logger
}

// Option configures a DuckDuckGo searcher.
type Option func(*DuckDuckGo)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(d *DuckDuckGo) { d.logger = l }
}

// WithEndpoint overrides the results endpoint (used by tests).
func WithEndpoint(endpoint string) Option {
	return func(d *DuckDuckGo) { d.endpoint = endpoint }
}

// NewDuckDuckGo creates a searcher with the given request timeout.
func NewDuckDuckGo(timeout time.Duration, userAgent string, opts ...Option) *DuckDuckGo {
	d := &DuckDuckGo{
		client:    &http.Client{Timeout: timeout},
		endpoint:  defaultEndpoint,
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Search returns up to maxResults hits for query, keeping only well-formed
// absolute http(s) URLs. An empty query yields no request and no results.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]*models.WebResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web search: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("web search: read body: %w", err)
	}

	results := parseResults(body, maxResults)
	if d.logger != nil {
		d.logger.Debug("web search completed",
			zap.String("query", query),
			zap.Int("results", len(results)),
		)
	}
	return results, nil
}

// parseResults extracts result links and snippets from the DuckDuckGo HTML
// results page. Result anchors carry class "result__a"; snippets carry class
// "result__snippet".
func parseResults(body []byte, maxResults int) []*models.WebResult {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil
	}

	var results []*models.WebResult
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if maxResults > 0 && len(results) >= maxResults {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__a") {
			target := resolveResultURL(attr(n, "href"))
			if isAbsoluteHTTP(target) {
				title := strings.TrimSpace(nodeText(n))
				if title == "" {
					title = target
				}
				results = append(results, &models.WebResult{Title: title, URL: target})
				return
			}
		}
		if n.Type == html.ElementNode && hasClass(n, "result__snippet") && len(results) > 0 {
			last := results[len(results)-1]
			if last.Snippet == "" {
				last.Snippet = strings.TrimSpace(nodeText(n))
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results
}

// resolveResultURL unwraps DuckDuckGo's redirect links ("/l/?uddg=<target>")
// and returns the final target URL.
func resolveResultURL(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if strings.HasSuffix(u.Path, "/l/") || u.Path == "/l/" {
		if target := u.Query().Get("uddg"); target != "" {
			return target
		}
	}
	return href
}

func isAbsoluteHTTP(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
