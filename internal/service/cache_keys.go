package service

// Query keys for cached catalog reads
const (
	// KeyWallpapers is the cache key for the full wallpaper listing
	KeyWallpapers = "wallpapers"

	// KeyCategories is the cache key for the category listing
	KeyCategories = "categories"

	// PrefixFavorites is the prefix for per-viewer favorites listing caches
	// (favorites:{scope}). Favorites are viewer state; an unscoped key would
	// serve one viewer's list to every other viewer of the process.
	PrefixFavorites = "favorites:"

	// ScopeGuest is the favorites scope for requests with no session
	ScopeGuest = "guest"

	// PrefixWallpaper is the prefix for single-wallpaper caches (wallpaper:{id})
	PrefixWallpaper = "wallpaper:"

	// PrefixCategory is the prefix for per-category listing caches (category:{id})
	PrefixCategory = "category:"

	// PrefixSearch is the prefix for search result caches (search:{term})
	PrefixSearch = "search:"
)

// WallpaperKey returns the cache key for one wallpaper
func WallpaperKey(id string) string { return PrefixWallpaper + id }

// CategoryKey returns the cache key for one category's listing
func CategoryKey(id string) string { return PrefixCategory + id }

// SearchKey returns the cache key for one search term's results
func SearchKey(term string) string { return PrefixSearch + term }

// FavoritesKey returns the cache key for one viewer's favorites listing.
// scope is the viewer id, or ScopeGuest for sessionless requests.
func FavoritesKey(scope string) string { return PrefixFavorites + scope }

// FavoriteInvalidationKeys returns the query keys a favorite toggle makes
// stale: both listings may contain the affected id, and the single-record
// cache holds the affected record. Only the toggling viewer's favorites
// scope goes stale; other viewers' listings are untouched.
func FavoriteInvalidationKeys(scope, wallpaperID string) []string {
	return []string{KeyWallpapers, FavoritesKey(scope), WallpaperKey(wallpaperID)}
}

// UploadInvalidationKeys returns the query keys an admin upload makes
// stale: the listing gains a record and the category count changed.
func UploadInvalidationKeys() []string {
	return []string{KeyWallpapers, KeyCategories}
}
