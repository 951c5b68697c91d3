package supabase

import (
	"github.com/muralhq/mural/internal/domain"
)

// mapWallpaper converts a raw row to the canonical domain shape. This is the
// single normalization point for every record crossing the source boundary:
// absent arrays become empty slices, the thumbnail falls back to the full
// image, and classification fields get their documented defaults, so no
// consumer ever needs to null-check a Wallpaper.
func mapWallpaper(r wallpaperRecord) domain.Wallpaper {
	w := domain.Wallpaper{
		ID:           r.ID,
		Title:        r.Title,
		ImageURL:     r.ImageURL,
		ThumbnailURL: r.ThumbnailURL,
		Category:     r.CategoryID,
		Tags:         r.Tags,
		Dimensions: domain.Dimensions{
			Width:  r.Width,
			Height: r.Height,
		},
		IsFavorite:        r.IsFavorite,
		DateAdded:         r.DateAdded,
		Views:             r.Views,
		Featured:          r.Featured,
		Premium:           r.Premium,
		ContentRating:     r.ContentRating,
		CompatibleDevices: r.CompatibleDevices,
		WallpaperType:     r.WallpaperType,
	}

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

// mapWallpapers converts a result set, preserving order
func mapWallpapers(records []wallpaperRecord) []domain.Wallpaper {
	wallpapers := make([]domain.Wallpaper, 0, len(records))
	for _, r := range records {
		wallpapers = append(wallpapers, mapWallpaper(r))
	}
	return wallpapers
}

// mapCategory converts a raw category row
func mapCategory(r categoryRecord) domain.Category {
	return domain.Category{
		ID:       r.ID,
		Name:     r.Name,
		ImageURL: r.ImageURL,
		Count:    r.Count,
	}
}

// unmapWallpaper converts a canonical wallpaper back to the row shape for
// inserts
func unmapWallpaper(w domain.Wallpaper) wallpaperRecord {
	return wallpaperRecord{
		ID:                w.ID,
		Title:             w.Title,
		ImageURL:          w.ImageURL,
		ThumbnailURL:      w.ThumbnailURL,
		CategoryID:        w.Category,
		Tags:              w.Tags,
		Width:             w.Dimensions.Width,
		Height:            w.Dimensions.Height,
		DateAdded:         w.DateAdded,
		Views:             w.Views,
		Featured:          w.Featured,
		Premium:           w.Premium,
		ContentRating:     w.ContentRating,
		CompatibleDevices: w.CompatibleDevices,
		WallpaperType:     w.WallpaperType,
	}
}
