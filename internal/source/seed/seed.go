// Package seed provides an in-memory catalog source used for demos and
// tests. It applies the same normalization as the remote source so callers
// cannot tell the two apart.
package seed

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/muralhq/mural/internal/domain"
)

// Source serves a fixed catalog from memory. Inserts and counter bumps
// mutate the in-memory copies only.
type Source struct {
	mu         sync.RWMutex
	wallpapers []domain.Wallpaper
	categories []domain.Category
}

// NewSource creates a seed source with the built-in demo catalog
func NewSource() *Source {
	return &Source{
		wallpapers: defaultWallpapers(),
		categories: defaultCategories(),
	}
}

// NewSourceWith creates a seed source with an explicit catalog (tests)
func NewSourceWith(wallpapers []domain.Wallpaper, categories []domain.Category) *Source {
	normalized := make([]domain.Wallpaper, 0, len(wallpapers))
	for _, w := range wallpapers {
		normalized = append(normalized, normalize(w))
	}
	return &Source{wallpapers: normalized, categories: categories}
}

// normalize applies the canonical defaults, mirroring the remote mapper
func normalize(w domain.Wallpaper) domain.Wallpaper {
	if w.ThumbnailURL == "" {
		w.ThumbnailURL = w.ImageURL
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	if w.CompatibleDevices == nil {
		w.CompatibleDevices = []string{}
	}
	if w.ContentRating == "" {
		w.ContentRating = domain.DefaultContentRating
	}
	if w.WallpaperType == "" {
		w.WallpaperType = domain.DefaultWallpaperType
	}
	return w
}

func (s *Source) GetWallpapers(ctx context.Context) ([]domain.Wallpaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Wallpaper, len(s.wallpapers))
	copy(out, s.wallpapers)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedTime().After(out[j].AddedTime())
	})
	return out, nil
}

func (s *Source) GetWallpaperByID(ctx context.Context, id string) (domain.Wallpaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.wallpapers {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.Wallpaper{}, domain.ErrNotFound
}

func (s *Source) GetWallpapersByCategory(ctx context.Context, categoryID string) ([]domain.Wallpaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Wallpaper, 0)
	for _, w := range s.wallpapers {
		if w.Category == categoryID {
			out = append(out, w)
		}
	}
	// Same ordering as the remote source's date_added.desc
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedTime().After(out[j].AddedTime())
	})
	return out, nil
}

func (s *Source) SearchByTitle(ctx context.Context, term string) ([]domain.Wallpaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(term)
	out := make([]domain.Wallpaper, 0)
	for _, w := range s.wallpapers {
		if strings.Contains(strings.ToLower(w.Title), term) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *Source) SearchByTag(ctx context.Context, tag string) ([]domain.Wallpaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag = strings.ToLower(tag)
	out := make([]domain.Wallpaper, 0)
	for _, w := range s.wallpapers {
		for _, t := range w.Tags {
			if strings.ToLower(t) == tag {
				out = append(out, w)
				break
			}
		}
	}
	return out, nil
}

func (s *Source) GetCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Source) InsertWallpaper(ctx context.Context, w domain.Wallpaper) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallpapers = append(s.wallpapers, normalize(w))
	return nil
}

func (s *Source) IncrementCategoryCount(ctx context.Context, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			s.categories[i].Count++
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ domain.CatalogSource = (*Source)(nil)
