package seed

import (
	"context"
	"sync"

	"github.com/muralhq/mural/internal/domain"
)

// Favorites is an in-memory (user_id, wallpaper_id) relation for seed mode.
type Favorites struct {
	catalog *Source

	mu   sync.RWMutex
	rows map[string]map[string]struct{} // userID -> wallpaper ids
}

// NewFavorites creates a favorites relation resolving records against the
// given catalog
func NewFavorites(catalog *Source) *Favorites {
	return &Favorites{
		catalog: catalog,
		rows:    make(map[string]map[string]struct{}),
	}
}

func (f *Favorites) Contains(ctx context.Context, userID, wallpaperID string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	set, ok := f.rows[userID]
	if !ok {
		return false, nil
	}
	_, ok = set[wallpaperID]
	return ok, nil
}

func (f *Favorites) Add(ctx context.Context, userID, wallpaperID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	set, ok := f.rows[userID]
	if !ok {
		set = make(map[string]struct{})
		f.rows[userID] = set
	}
	set[wallpaperID] = struct{}{}
	return nil
}

func (f *Favorites) Remove(ctx context.Context, userID, wallpaperID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if set, ok := f.rows[userID]; ok {
		delete(set, wallpaperID)
	}
	return nil
}

func (f *Favorites) List(ctx context.Context, userID string) ([]domain.Wallpaper, error) {
	f.mu.RLock()
	set := make(map[string]struct{}, len(f.rows[userID]))
	for id := range f.rows[userID] {
		set[id] = struct{}{}
	}
	f.mu.RUnlock()

	all, err := f.catalog.GetWallpapers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Wallpaper, 0, len(set))
	for _, w := range all {
		if _, ok := set[w.ID]; ok {
			w.IsFavorite = true
			out = append(out, w)
		}
	}
	return out, nil
}

var _ domain.FavoriteRelation = (*Favorites)(nil)

// StaticSessionProvider returns a fixed viewer, or guest when unset. Seed
// mode and tests use it in place of the hosted identity service.
type StaticSessionProvider struct {
	viewer domain.Viewer
	ok     bool
}

// NewStaticSessionProvider creates a provider that always reports viewer
func NewStaticSessionProvider(viewer domain.Viewer) *StaticSessionProvider {
	return &StaticSessionProvider{viewer: viewer, ok: viewer.ID != ""}
}

// NewGuestSessionProvider creates a provider that always reports guest
func NewGuestSessionProvider() *StaticSessionProvider {
	return &StaticSessionProvider{}
}

func (p *StaticSessionProvider) Current(ctx context.Context) (domain.Viewer, bool) {
	return p.viewer, p.ok
}

var _ domain.SessionProvider = (*StaticSessionProvider)(nil)
