package domain

import (
	"fmt"
	"time"
)

// Default values applied during normalization. Every Wallpaper handed to a
// consumer carries these instead of zero-value surprises.
const (
	DefaultContentRating = "everyone"
	DefaultWallpaperType = "static"
)

// newWindow is how long a wallpaper counts as newly added.
const newWindow = 7 * 24 * time.Hour

// Dimensions holds the pixel size of a wallpaper image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Wallpaper is the canonical, normalized representation used by every
// consumer regardless of which source produced the raw record. Tags,
// CompatibleDevices and ThumbnailURL are always populated (never nil/empty
// when a fallback exists), so callers don't need to guard against absence.
type Wallpaper struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	ImageURL     string     `json:"imageUrl"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Category     string     `json:"category,omitempty"`
	Tags         []string   `json:"tags"`
	Dimensions   Dimensions `json:"dimensions"`

	// IsFavorite is derived per viewer, never stored authoritatively.
	IsFavorite bool `json:"isFavorite"`

	// DateAdded is an RFC 3339 timestamp string; default sort order is
	// DateAdded descending.
	DateAdded string `json:"dateAdded"`

	Views             int      `json:"views"`
	Featured          bool     `json:"featured"`
	Premium           bool     `json:"premium"`
	ContentRating     string   `json:"contentRating"`
	CompatibleDevices []string `json:"compatibleDevices"`
	WallpaperType     string   `json:"wallpaperType"`
}

// AddedTime parses DateAdded, returning the zero time if it is malformed.
func (w Wallpaper) AddedTime() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, w.DateAdded); err == nil {
			return t
		}
	}
	return time.Time{}
}

// IsNew reports whether the wallpaper was added within the last 7 days.
func (w Wallpaper) IsNew() bool {
	added := w.AddedTime()
	if added.IsZero() {
		return false
	}
	return time.Since(added) < newWindow
}

// Resolution returns a human-readable resolution string, empty when the
// source provided no dimensions.
func (w Wallpaper) Resolution() string {
	if w.Dimensions.Width <= 0 || w.Dimensions.Height <= 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", w.Dimensions.Width, w.Dimensions.Height)
}

// Category groups wallpapers for browsing. Count is an advisory tally
// incremented by the admin upload path; it is not a live aggregate and may
// drift from the true member count.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Count    int    `json:"count"`
}

// Viewer identifies the current user of the client. A zero ID means guest.
type Viewer struct {
	ID      string `json:"id"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

// NewWallpaperInput is the admin upload payload. Image bytes travel
// separately; URLs are filled in after the object storage upload.
type NewWallpaperInput struct {
	Title             string
	Category          string
	Tags              []string
	Dimensions        Dimensions
	Premium           bool
	Featured          bool
	ContentRating     string
	CompatibleDevices []string
	WallpaperType     string
}
