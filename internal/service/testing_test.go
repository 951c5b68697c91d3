package service_test

import (
	"context"
	"strings"
	"sync"

	"github.com/muralhq/mural/internal/domain"
)

// stubCatalog is a scriptable catalog source for service tests
type stubCatalog struct {
	mu sync.Mutex

	wallpapers []domain.Wallpaper
	categories []domain.Category

	err      error // returned by every operation when set
	titleErr error
	tagErr   error

	inserted []domain.Wallpaper
	bumped   []string

	fetchCalls int
}

func (c *stubCatalog) GetWallpapers(ctx context.Context) ([]domain.Wallpaper, error) {
	c.mu.Lock()
	c.fetchCalls++
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return append([]domain.Wallpaper(nil), c.wallpapers...), nil
}

func (c *stubCatalog) GetWallpaperByID(ctx context.Context, id string) (domain.Wallpaper, error) {
	if c.err != nil {
		return domain.Wallpaper{}, c.err
	}
	for _, w := range c.wallpapers {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.Wallpaper{}, domain.ErrNotFound
}

func (c *stubCatalog) GetWallpapersByCategory(ctx context.Context, categoryID string) ([]domain.Wallpaper, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.Wallpaper, 0)
	for _, w := range c.wallpapers {
		if w.Category == categoryID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (c *stubCatalog) SearchByTitle(ctx context.Context, term string) ([]domain.Wallpaper, error) {
	if c.titleErr != nil {
		return nil, c.titleErr
	}
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.Wallpaper, 0)
	for _, w := range c.wallpapers {
		if containsFold(w.Title, term) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (c *stubCatalog) SearchByTag(ctx context.Context, tag string) ([]domain.Wallpaper, error) {
	if c.tagErr != nil {
		return nil, c.tagErr
	}
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.Wallpaper, 0)
	for _, w := range c.wallpapers {
		for _, t := range w.Tags {
			if t == tag {
				out = append(out, w)
				break
			}
		}
	}
	return out, nil
}

func (c *stubCatalog) GetCategories(ctx context.Context) ([]domain.Category, error) {
	if c.err != nil {
		return nil, c.err
	}
	return append([]domain.Category(nil), c.categories...), nil
}

func (c *stubCatalog) InsertWallpaper(ctx context.Context, w domain.Wallpaper) error {
	if c.err != nil {
		return c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inserted = append(c.inserted, w)
	c.wallpapers = append(c.wallpapers, w)
	return nil
}

func (c *stubCatalog) IncrementCategoryCount(ctx context.Context, categoryID string) error {
	if c.err != nil {
		return c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bumped = append(c.bumped, categoryID)
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// stubRelation is an in-memory remote favorite relation with optional error
// injection
type stubRelation struct {
	mu   sync.Mutex
	rows map[string]map[string]bool
	err  error
}

func newStubRelation() *stubRelation {
	return &stubRelation{rows: make(map[string]map[string]bool)}
}

func (r *stubRelation) Contains(ctx context.Context, userID, wallpaperID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[userID][wallpaperID], nil
}

func (r *stubRelation) Add(ctx context.Context, userID, wallpaperID string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rows[userID] == nil {
		r.rows[userID] = make(map[string]bool)
	}
	r.rows[userID][wallpaperID] = true
	return nil
}

func (r *stubRelation) Remove(ctx context.Context, userID, wallpaperID string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows[userID], wallpaperID)
	return nil
}

func (r *stubRelation) List(ctx context.Context, userID string) ([]domain.Wallpaper, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Wallpaper, 0)
	for id := range r.rows[userID] {
		out = append(out, domain.Wallpaper{ID: id, IsFavorite: true})
	}
	return out, nil
}

func (r *stubRelation) count(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows[userID])
}

// stubSessions resolves context access tokens against a fixed viewer map;
// requests without a token are guests
type stubSessions struct {
	viewers map[string]domain.Viewer // token -> viewer
}

func (p *stubSessions) Current(ctx context.Context) (domain.Viewer, bool) {
	token, ok := domain.AccessToken(ctx)
	if !ok {
		return domain.Viewer{}, false
	}
	viewer, ok := p.viewers[token]
	return viewer, ok
}

// stubStorage records uploads and derives predictable URLs
type stubStorage struct {
	mu      sync.Mutex
	uploads map[string][]byte
	err     error
}

func newStubStorage() *stubStorage {
	return &stubStorage{uploads: make(map[string][]byte)}
}

func (s *stubStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[path] = data
	return s.PublicURL(path), nil
}

func (s *stubStorage) PublicURL(path string) string {
	return "https://cdn.example.com/" + path
}
