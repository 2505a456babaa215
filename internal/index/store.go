package index

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hoshizora/oboeru/internal/models"
	"github.com/hoshizora/oboeru/internal/storage"
	"github.com/hoshizora/oboeru/pkg/utils"
)

// defaultTopK is the result count used when callers pass a non-positive top-k.
const defaultTopK = 5

// Store owns the ordered document collection and its two derived indices.
// Writers mutate the collection, persist it, and rebuild both indices in full
// before returning; readers observe either the pre- or post-mutation state,
// never a partially rebuilt one.
type Store struct {
	mu         sync.RWMutex
	collection storage.Collection
	docs       []*models.Document
	vector     *vectorIndex
	okapi      *okapiIndex
	logger     *zap.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets a logger for debug output (rebuilds, added documents).
func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore loads the persisted document collection and builds both indices.
func NewStore(collection storage.Collection, opts ...StoreOption) (*Store, error) {
	docs, err := collection.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	s := &Store{collection: collection, docs: docs}
	for _, opt := range opts {
		opt(s)
	}
	s.rebuildLocked()
	return s, nil
}

// Add appends a document, persists the collection, and rebuilds the indices.
// Returns models.ErrEmptyText when text is empty or whitespace-only. When an
// exact (url, text) duplicate already exists the existing record is returned
// unchanged with no persistence or rebuild.
func (s *Store) Add(title, text, url, sourceType string) (*models.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if d.URL == url && d.Text == text {
			return d, nil
		}
	}

	doc := &models.Document{
		ID:         utils.Slugify(fmt.Sprintf("%s-%d", title, len(s.docs))),
		Title:      title,
		Text:       text,
		URL:        url,
		SourceType: sourceType,
		CreatedAt:  time.Now().UTC(),
	}
	next := append(s.docs, doc)
	if err := s.collection.Save(next); err != nil {
		return nil, fmt.Errorf("failed to persist collection: %w", err)
	}
	s.docs = next
	s.rebuildLocked()

	if s.logger != nil {
		s.logger.Debug("document added",
			zap.String("id", doc.ID),
			zap.String("source_type", doc.SourceType),
			zap.Int("collection_size", len(s.docs)),
		)
	}
	return doc, nil
}

// Update replaces the text of the document with the given id, persists, and
// rebuilds. The existing record is replaced, not mutated, so documents
// returned by earlier Search or Get calls stay valid pre-update snapshots.
// An unknown id is a silent no-op. Returns models.ErrEmptyText when the
// replacement text is blank, keeping the non-empty-text invariant.
func (s *Store) Update(id, text string) error {
	if strings.TrimSpace(text) == "" {
		return models.ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, d := range s.docs {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	// Copy-on-write: search results and Get hand out document pointers that
	// callers read after the lock is released, so the stored record is never
	// mutated. A fresh record and slice are committed only after persistence
	// succeeds; previously returned results keep the pre-update snapshot.
	updated := *s.docs[idx]
	updated.Text = text
	next := make([]*models.Document, len(s.docs))
	copy(next, s.docs)
	next[idx] = &updated

	if err := s.collection.Save(next); err != nil {
		return fmt.Errorf("failed to persist collection: %w", err)
	}
	s.docs = next
	s.rebuildLocked()
	return nil
}

// Search scores every document against the query with both indices,
// normalizes each score vector by its own maximum, blends them, and returns
// the topK documents ordered by blended score descending with ties broken by
// insertion order. A blank query or an empty collection yields nil.
func (s *Store) Search(query string, topK int) []*models.ScoredDocument {
	if topK <= 0 {
		topK = defaultTopK
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(query) == "" || len(s.docs) == 0 || s.vector == nil {
		return nil
	}

	tokens := Tokenize(query)
	vecScores := s.vector.Score(tokens)
	okapiScores := s.okapi.Score(tokens)
	NormalizeByMax(vecScores)
	NormalizeByMax(okapiScores)
	combined := Blend(vecScores, okapiScores)

	results := make([]*models.ScoredDocument, len(s.docs))
	for i, d := range s.docs {
		results[i] = &models.ScoredDocument{
			Document:    d,
			Score:       combined[i],
			VectorScore: vecScores[i],
			OkapiScore:  okapiScores[i],
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (*models.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.docs {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Count returns the number of stored documents.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// rebuildLocked rebuilds both indices from the current document set. Callers
// must hold the write lock (or have exclusive access during construction).
// Fresh index structs are built and swapped in, so concurrent readers never
// see a half-built index.
func (s *Store) rebuildLocked() {
	if len(s.docs) == 0 {
		s.vector = nil
		s.okapi = nil
		return
	}
	tokenized := make([][]string, len(s.docs))
	for i, d := range s.docs {
		tokenized[i] = Tokenize(d.Text)
	}
	s.vector = buildVectorIndex(tokenized)
	s.okapi = buildOkapiIndex(tokenized)
}
