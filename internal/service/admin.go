package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muralhq/mural/internal/domain"
)

// Admin handles the upload flow: admin-gated wallpaper creation with image
// storage and the advisory category counter bump.
type Admin struct {
	catalog  domain.CatalogSource
	storage  domain.ObjectStorage
	sessions domain.SessionProvider
	cache    *QueryCache
	logger   *slog.Logger

	now func() time.Time
}

// NewAdmin creates the admin service
func NewAdmin(catalog domain.CatalogSource, storage domain.ObjectStorage, sessions domain.SessionProvider, cache *QueryCache, logger *slog.Logger) *Admin {
	if logger == nil {
		logger = slog.Default()
	}
	return &Admin{
		catalog:  catalog,
		storage:  storage,
		sessions: sessions,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// AddWallpaper uploads the image, inserts the record, and bumps the
// category counter. Unlike listing reads, upload failures propagate: a
// silently swallowed write would desynchronize displayed state.
func (s *Admin) AddWallpaper(ctx context.Context, input domain.NewWallpaperInput, image []byte, contentType string) (domain.Wallpaper, error) {
	viewer, ok := s.sessions.Current(ctx)
	if !ok {
		return domain.Wallpaper{}, domain.ErrUnauthenticated
	}
	if !viewer.IsAdmin {
		return domain.Wallpaper{}, domain.ErrForbidden
	}

	if strings.TrimSpace(input.Title) == "" {
		return domain.Wallpaper{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if len(image) == 0 {
		return domain.Wallpaper{}, fmt.Errorf("%w: image data is required", domain.ErrInvalidInput)
	}

	id := uuid.NewString()
	path := fmt.Sprintf("wallpapers/%s%s", id, extensionFor(contentType))

	imageURL, err := s.storage.Upload(ctx, path, image, contentType)
	if err != nil {
		return domain.Wallpaper{}, fmt.Errorf("upload image: %w", err)
	}

	w := domain.Wallpaper{
		ID:                id,
		Title:             input.Title,
		ImageURL:          imageURL,
		ThumbnailURL:      imageURL,
		Category:          input.Category,
		Tags:              input.Tags,
		Dimensions:        input.Dimensions,
		DateAdded:         s.now().UTC().Format(time.RFC3339),
		Featured:          input.Featured,
		Premium:           input.Premium,
		ContentRating:     input.ContentRating,
		CompatibleDevices: input.CompatibleDevices,
		WallpaperType:     input.WallpaperType,
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

	if err := s.catalog.InsertWallpaper(ctx, w); err != nil {
		return domain.Wallpaper{}, fmt.Errorf("insert wallpaper: %w", err)
	}

	if input.Category != "" {
		// Advisory counter only; a failed bump is logged, not fatal.
		if err := s.catalog.IncrementCategoryCount(ctx, input.Category); err != nil {
			s.logger.Warn("failed to increment category count", "category", input.Category, "error", err)
		}
	}

	s.cache.Invalidate(UploadInvalidationKeys()...)
	s.cache.InvalidatePrefix(PrefixSearch)
	if input.Category != "" {
		s.cache.Invalidate(CategoryKey(input.Category))
	}

	s.logger.Info("wallpaper added", "id", id, "title", w.Title, "admin", viewer.ID)
	return w, nil
}

// extensionFor maps an image content type to a file extension
func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
