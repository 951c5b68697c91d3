package domain

import "context"

// CatalogSource retrieves wallpaper and category records from a backing
// store. Implementations return raw errors; the service layer decides which
// operations degrade to empty results and which propagate.
type CatalogSource interface {
	// GetWallpapers returns every wallpaper, already normalized.
	GetWallpapers(ctx context.Context) ([]Wallpaper, error)

	// GetWallpaperByID returns a single wallpaper, ErrNotFound when absent.
	GetWallpaperByID(ctx context.Context, id string) (Wallpaper, error)

	// GetWallpapersByCategory filters by exact category id, source-side.
	GetWallpapersByCategory(ctx context.Context, categoryID string) ([]Wallpaper, error)

	// SearchByTitle performs a case-insensitive substring match on titles.
	SearchByTitle(ctx context.Context, term string) ([]Wallpaper, error)

	// SearchByTag performs an array-containment test over each wallpaper's
	// tags, pushed down to the source (RPC for remote stores).
	SearchByTag(ctx context.Context, tag string) ([]Wallpaper, error)

	// GetCategories returns all categories ordered by name.
	GetCategories(ctx context.Context) ([]Category, error)

	// InsertWallpaper creates a record from an already-normalized wallpaper.
	InsertWallpaper(ctx context.Context, w Wallpaper) error

	// IncrementCategoryCount bumps the advisory member tally.
	IncrementCategoryCount(ctx context.Context, categoryID string) error
}

// FavoriteRelation is the remote (user_id, wallpaper_id) membership set for
// authenticated viewers. Rows have no lifecycle beyond existence.
type FavoriteRelation interface {
	// Contains reports whether the pair exists.
	Contains(ctx context.Context, userID, wallpaperID string) (bool, error)

	// Add inserts the pair. Adding an existing pair is a source-level error.
	Add(ctx context.Context, userID, wallpaperID string) error

	// Remove deletes the pair if present.
	Remove(ctx context.Context, userID, wallpaperID string) error

	// List returns the viewer's favorited wallpapers with IsFavorite set.
	List(ctx context.Context, userID string) ([]Wallpaper, error)
}

// SessionProvider yields the current viewer identity, if any. The bool is
// false for guests.
type SessionProvider interface {
	Current(ctx context.Context) (Viewer, bool)
}

// ObjectStorage uploads image bytes and derives public URLs. Used only by
// the admin upload path.
type ObjectStorage interface {
	// Upload stores data under path and returns the public URL.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)

	// PublicURL derives the URL for an already-stored path.
	PublicURL(path string) string
}
