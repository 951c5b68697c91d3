package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"

	"github.com/muralhq/mural/internal/domain"
)

// Suggestion is a typeahead match with character positions for highlighting
type Suggestion struct {
	Wallpaper      domain.Wallpaper `json:"wallpaper"`
	MatchedIndexes []int            `json:"matchedIndexes"`
	Score          int              `json:"score"`
}

// filterIndex implements sahilm/fuzzy.Source for zero-allocation matching
type filterIndex struct {
	items       []domain.Wallpaper
	lowerTitles []string // Pre-computed lowercase titles
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *filterIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *filterIndex) Len() int { return len(idx.items) }

// Search finds wallpapers by title substring and tag containment. Title
// matches come from the source's substring filter, tag matches from the
// source's containment search; the union is deduplicated by id with title
// matches first. A failing tag path degrades to title-only results; if the
// source is entirely unreachable, previously indexed titles serve a local
// fuzzy fallback.
type Search struct {
	catalog domain.CatalogSource
	cache   *QueryCache
	logger  *slog.Logger

	// Local index for typeahead and offline fallback
	filterMu    sync.RWMutex
	index       *filterIndex
	indexedByID map[string]bool // Track indexed ids to avoid duplicates
}

// NewSearch creates the search service
func NewSearch(catalog domain.CatalogSource, cache *QueryCache, logger *slog.Logger) *Search {
	if logger == nil {
		logger = slog.Default()
	}
	return &Search{
		catalog:     catalog,
		cache:       cache,
		logger:      logger,
		index:       &filterIndex{},
		indexedByID: make(map[string]bool),
	}
}

// Search returns wallpapers matching the term. An empty term is an empty
// result, not "browse all".
func (s *Search) Search(ctx context.Context, term string) []domain.Wallpaper {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Wallpaper{}
	}

	key := SearchKey(strings.ToLower(term))
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", "key", key)
		return cached.([]domain.Wallpaper)
	}

	titleMatches, titleErr := s.catalog.SearchByTitle(ctx, term)
	if titleErr != nil {
		s.logger.Error("title search failed", "term", term, "error", titleErr)
		titleMatches = nil
	}

	tagMatches, tagErr := s.catalog.SearchByTag(ctx, term)
	if tagErr != nil {
		// Tag containment is a secondary capability; fall back to
		// title-only results rather than failing the whole search.
		s.logger.Warn("tag search failed, using title matches only", "term", term, "error", tagErr)
		tagMatches = nil
	}

	if titleErr != nil && tagErr != nil {
		return s.localSearch(term)
	}

	results := dedupeByID(titleMatches, tagMatches)
	s.Index(results)

	s.cache.Set(key, results)
	s.logger.Debug("search complete", "term", term, "results", len(results))
	return results
}

// dedupeByID unions the two match sets, keeping first-seen order: title
// matches first, then tag-only matches.
func dedupeByID(titleMatches, tagMatches []domain.Wallpaper) []domain.Wallpaper {
	seen := make(map[string]bool, len(titleMatches)+len(tagMatches))
	results := make([]domain.Wallpaper, 0, len(titleMatches)+len(tagMatches))

	for _, w := range titleMatches {
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		results = append(results, w)
	}
	for _, w := range tagMatches {
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		results = append(results, w)
	}
	return results
}

// Index adds wallpapers to the local index, deduplicating by id.
// Lowercase titles are pre-computed at index time.
func (s *Search) Index(wallpapers []domain.Wallpaper) {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()

	added := 0
	for _, w := range wallpapers {
		if s.indexedByID[w.ID] {
			continue
		}
		s.indexedByID[w.ID] = true
		s.index.items = append(s.index.items, w)
		s.index.lowerTitles = append(s.index.lowerTitles, strings.ToLower(w.Title))
		added++
	}

	if added > 0 {
		s.logger.Debug("indexed wallpapers", "added", added, "total", len(s.index.items))
	}
}

// ClearIndex removes all items from the local index
func (s *Search) ClearIndex() {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()

	s.index = &filterIndex{}
	s.indexedByID = make(map[string]bool)
}

// Suggest returns up to limit typeahead matches against the local index,
// with matched character positions for highlighting.
func (s *Search) Suggest(term string, limit int) []Suggestion {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return nil
	}

	s.filterMu.RLock()
	defer s.filterMu.RUnlock()

	if s.index.Len() == 0 {
		return nil
	}

	matches := sahilm.FindFrom(term, s.index)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = Suggestion{
			Wallpaper:      s.index.items[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return suggestions
}

// localSearch ranks previously indexed titles with fuzzy matching. It only
// serves when the source is unreachable, so stale-but-present beats empty.
func (s *Search) localSearch(term string) []domain.Wallpaper {
	s.filterMu.RLock()
	defer s.filterMu.RUnlock()

	if s.index.Len() == 0 {
		return []domain.Wallpaper{}
	}

	matches := fuzzy.RankFindFold(term, s.index.lowerTitles)
	sort.Sort(matches)

	results := make([]domain.Wallpaper, 0, len(matches))
	for _, m := range matches {
		results = append(results, s.index.items[m.OriginalIndex])
	}

	s.logger.Debug("local search fallback", "term", term, "results", len(results))
	return results
}
