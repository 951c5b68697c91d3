package supabase

// Raw PostgREST row shapes. Fields the database may omit stay zero-valued
// here; normalization into the canonical domain shape happens in mapper.go.

// wallpaperRecord mirrors a row of the wallpapers table
type wallpaperRecord struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	ImageURL          string   `json:"image_url"`
	ThumbnailURL      string   `json:"thumbnail_url"`
	CategoryID        string   `json:"category_id"`
	Tags              []string `json:"tags"`
	Width             int      `json:"width"`
	Height            int      `json:"height"`
	DateAdded         string   `json:"date_added"`
	Views             int      `json:"views"`
	Featured          bool     `json:"featured"`
	Premium           bool     `json:"premium"`
	IsFavorite        bool     `json:"is_favorite"`
	ContentRating     string   `json:"content_rating"`
	CompatibleDevices []string `json:"compatible_devices"`
	WallpaperType     string   `json:"wallpaper_type"`
}

// categoryRecord mirrors a row of the categories table
type categoryRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Count    int    `json:"count"`
}

// favoriteRecord mirrors a row of the favorites relation, optionally with
// the joined wallpaper embedded (select=wallpaper_id,wallpapers(*))
type favoriteRecord struct {
	ID          string           `json:"id,omitempty"`
	UserID      string           `json:"user_id,omitempty"`
	WallpaperID string           `json:"wallpaper_id"`
	Wallpaper   *wallpaperRecord `json:"wallpapers,omitempty"`
}

// userRecord mirrors the auth endpoint's user payload
type userRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// profileRecord mirrors a row of the profiles table (admin gate)
type profileRecord struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"is_admin"`
}
