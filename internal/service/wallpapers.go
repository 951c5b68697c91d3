package service

import (
	"context"
	"log/slog"

	"github.com/muralhq/mural/internal/domain"
)

// FavoriteMarker decorates records with the viewer's favorite state
type FavoriteMarker interface {
	MarkFavorites(ctx context.Context, wallpapers []domain.Wallpaper) []domain.Wallpaper
}

// Wallpapers is the query layer: it reads the catalog through the query
// cache and normalizes failure into empty results. A broken listing must
// not crash the shell, so listing reads log and degrade rather than error;
// single-record reads degrade to absence.
type Wallpapers struct {
	catalog domain.CatalogSource
	marker  FavoriteMarker
	cache   *QueryCache
	logger  *slog.Logger
}

// NewWallpapers creates the wallpaper query service
func NewWallpapers(catalog domain.CatalogSource, marker FavoriteMarker, cache *QueryCache, logger *slog.Logger) *Wallpapers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Wallpapers{
		catalog: catalog,
		marker:  marker,
		cache:   cache,
		logger:  logger,
	}
}

// GetWallpapers returns every wallpaper, most recently added first. Fetch
// failure returns an empty list. The cache holds viewer-agnostic records;
// the requesting viewer's favorite flags are stamped after every read, so a
// cache entry is never tied to the viewer who populated it.
func (s *Wallpapers) GetWallpapers(ctx context.Context) []domain.Wallpaper {
	if cached, ok := s.cache.Get(KeyWallpapers); ok {
		s.logger.Debug("cache hit", "key", KeyWallpapers)
		return s.mark(ctx, cached.([]domain.Wallpaper))
	}

	wallpapers, err := s.catalog.GetWallpapers(ctx)
	if err != nil {
		s.logger.Error("failed to get wallpapers", "error", err)
		return []domain.Wallpaper{}
	}

	s.cache.Set(KeyWallpapers, wallpapers)
	s.logger.Info("loaded wallpapers", "count", len(wallpapers))

	return s.mark(ctx, wallpapers)
}

// GetWallpaperByID returns a single wallpaper; the bool is false on
// not-found or any fetch error.
func (s *Wallpapers) GetWallpaperByID(ctx context.Context, id string) (domain.Wallpaper, bool) {
	key := WallpaperKey(id)
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", "key", key)
		return s.markOne(ctx, cached.(domain.Wallpaper)), true
	}

	w, err := s.catalog.GetWallpaperByID(ctx, id)
	if err != nil {
		if err != domain.ErrNotFound {
			s.logger.Error("failed to get wallpaper", "id", id, "error", err)
		}
		return domain.Wallpaper{}, false
	}

	s.cache.Set(key, w)
	return s.markOne(ctx, w), true
}

// GetWallpapersByCategory returns the wallpapers in one category, filtered
// source-side. Failure returns an empty list.
func (s *Wallpapers) GetWallpapersByCategory(ctx context.Context, categoryID string) []domain.Wallpaper {
	key := CategoryKey(categoryID)
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", "key", key)
		return s.mark(ctx, cached.([]domain.Wallpaper))
	}

	wallpapers, err := s.catalog.GetWallpapersByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("failed to get wallpapers by category", "category", categoryID, "error", err)
		return []domain.Wallpaper{}
	}

	s.cache.Set(key, wallpapers)
	return s.mark(ctx, wallpapers)
}

// GetCategories returns all categories ordered by name. Failure returns an
// empty list.
func (s *Wallpapers) GetCategories(ctx context.Context) []domain.Category {
	if cached, ok := s.cache.Get(KeyCategories); ok {
		s.logger.Debug("cache hit", "key", KeyCategories)
		return cached.([]domain.Category)
	}

	categories, err := s.catalog.GetCategories(ctx)
	if err != nil {
		s.logger.Error("failed to get categories", "error", err)
		return []domain.Category{}
	}

	s.cache.Set(KeyCategories, categories)
	return categories
}

func (s *Wallpapers) mark(ctx context.Context, wallpapers []domain.Wallpaper) []domain.Wallpaper {
	if s.marker == nil {
		return wallpapers
	}
	return s.marker.MarkFavorites(ctx, wallpapers)
}

func (s *Wallpapers) markOne(ctx context.Context, w domain.Wallpaper) domain.Wallpaper {
	if marked := s.mark(ctx, []domain.Wallpaper{w}); len(marked) == 1 {
		return marked[0]
	}
	return w
}
