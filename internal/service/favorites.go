package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/muralhq/mural/internal/domain"
)

// localFavoritesKey is the single shared key holding the guest favorite set.
// It is per device, not per viewer: switching accounts on one device does
// not partition guest favorites.
const localFavoritesKey = "favorites"

// Favorites answers "is this wallpaper favorited by the current viewer" and
// toggles that state. Guests get a device-local persisted set; authenticated
// viewers get rows in the remote favorite relation. The two modes never mix:
// a request that claims a session but fails to resolve one errors instead of
// silently falling back to guest state.
type Favorites struct {
	local    domain.KeyValueStore
	remote   domain.FavoriteRelation
	catalog  domain.CatalogSource
	sessions domain.SessionProvider
	cache    *QueryCache
	logger   *slog.Logger
}

// NewFavorites creates the favorites service
func NewFavorites(local domain.KeyValueStore, remote domain.FavoriteRelation, catalog domain.CatalogSource, sessions domain.SessionProvider, cache *QueryCache, logger *slog.Logger) *Favorites {
	if logger == nil {
		logger = slog.Default()
	}
	return &Favorites{
		local:    local,
		remote:   remote,
		catalog:  catalog,
		sessions: sessions,
		cache:    cache,
		logger:   logger,
	}
}

// IsFavorite reports whether the current viewer has favorited the
// wallpaper. Guest mode is a synchronous local set check that never errors;
// for authenticated viewers the membership comes from the remote relation
// (fetched records also embed the flag, so listings don't call this per
// item).
func (s *Favorites) IsFavorite(ctx context.Context, wallpaperID string) bool {
	if viewer, ok := s.sessions.Current(ctx); ok {
		contains, err := s.remote.Contains(ctx, viewer.ID, wallpaperID)
		if err != nil {
			s.logger.Error("favorite membership check failed", "wallpaper", wallpaperID, "error", err)
			return false
		}
		return contains
	}

	_, ok := s.localSet()[wallpaperID]
	return ok
}

// Toggle flips the favorite state for the current viewer and returns the
// new membership state. The membership check and the write are not atomic
// against a concurrent toggle of the same wallpaper; last write wins.
func (s *Favorites) Toggle(ctx context.Context, wallpaperID string) (bool, error) {
	var (
		state bool
		err   error
	)

	scope := ScopeGuest
	if viewer, ok := s.sessions.Current(ctx); ok {
		scope = viewer.ID
		state, err = s.toggleRemote(ctx, viewer.ID, wallpaperID)
	} else if _, hasToken := domain.AccessToken(ctx); hasToken {
		// The caller presented credentials that didn't resolve to a
		// session. Falling back to guest state here would strand the
		// toggle in the wrong store, so surface the failure instead.
		return false, domain.ErrUnauthenticated
	} else {
		state, err = s.toggleLocal(wallpaperID)
	}

	if err != nil {
		return false, err
	}

	s.cache.Invalidate(FavoriteInvalidationKeys(scope, wallpaperID)...)
	return state, nil
}

// GetFavorites returns the current viewer's favorited wallpapers, each with
// IsFavorite set. Results are cached per viewer scope, never shared across
// viewers. Like every listing it degrades to empty on failure.
func (s *Favorites) GetFavorites(ctx context.Context) []domain.Wallpaper {
	viewer, authenticated := s.sessions.Current(ctx)

	scope := ScopeGuest
	if authenticated {
		scope = viewer.ID
	}
	key := FavoritesKey(scope)

	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", "key", key)
		return cached.([]domain.Wallpaper)
	}

	var favorites []domain.Wallpaper
	if authenticated {
		remote, err := s.remote.List(ctx, viewer.ID)
		if err != nil {
			s.logger.Error("failed to list favorites", "error", err)
			return []domain.Wallpaper{}
		}
		favorites = remote
	} else {
		favorites = s.localFavorites(ctx)
	}

	s.cache.Set(key, favorites)
	return favorites
}

// MarkFavorites stamps IsFavorite on a copy of each wallpaper from the
// current viewer's favorite set. The input is viewer-agnostic (it may come
// straight from the shared query cache) and is never mutated; the flag is
// assigned, not or-ed, so stale flags from another viewer's fetch are
// cleared.
func (s *Favorites) MarkFavorites(ctx context.Context, wallpapers []domain.Wallpaper) []domain.Wallpaper {
	set := s.favoriteIDs(ctx)

	out := make([]domain.Wallpaper, len(wallpapers))
	copy(out, wallpapers)
	for i := range out {
		_, out[i].IsFavorite = set[out[i].ID]
	}
	return out
}

// favoriteIDs resolves the current viewer's favorite id set. Authenticated
// viewers resolve through GetFavorites, so repeated markings within a cache
// window cost one remote list at most.
func (s *Favorites) favoriteIDs(ctx context.Context) map[string]struct{} {
	if _, ok := s.sessions.Current(ctx); ok {
		favorites := s.GetFavorites(ctx)
		set := make(map[string]struct{}, len(favorites))
		for _, w := range favorites {
			set[w.ID] = struct{}{}
		}
		return set
	}
	return s.localSet()
}

// toggleRemote flips one row in the remote relation: present means delete,
// absent means insert.
func (s *Favorites) toggleRemote(ctx context.Context, userID, wallpaperID string) (bool, error) {
	contains, err := s.remote.Contains(ctx, userID, wallpaperID)
	if err != nil {
		return false, err
	}

	if contains {
		if err := s.remote.Remove(ctx, userID, wallpaperID); err != nil {
			return false, err
		}
		s.logger.Debug("favorite removed", "user", userID, "wallpaper", wallpaperID)
		return false, nil
	}

	if err := s.remote.Add(ctx, userID, wallpaperID); err != nil {
		return false, err
	}
	s.logger.Debug("favorite added", "user", userID, "wallpaper", wallpaperID)
	return true, nil
}

// toggleLocal flips membership in the guest set and persists the result
func (s *Favorites) toggleLocal(wallpaperID string) (bool, error) {
	set := s.localSet()

	_, present := set[wallpaperID]
	if present {
		delete(set, wallpaperID)
	} else {
		set[wallpaperID] = struct{}{}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return false, err
	}
	if err := s.local.Set(localFavoritesKey, string(data)); err != nil {
		return false, err
	}

	return !present, nil
}

// localFavorites filters the catalog by the guest set
func (s *Favorites) localFavorites(ctx context.Context) []domain.Wallpaper {
	set := s.localSet()
	if len(set) == 0 {
		return []domain.Wallpaper{}
	}

	all, err := s.catalog.GetWallpapers(ctx)
	if err != nil {
		s.logger.Error("failed to resolve local favorites", "error", err)
		return []domain.Wallpaper{}
	}

	favorites := make([]domain.Wallpaper, 0, len(set))
	for _, w := range all {
		if _, ok := set[w.ID]; ok {
			w.IsFavorite = true
			favorites = append(favorites, w)
		}
	}
	return favorites
}

// localSet parses the persisted guest set. A missing or malformed value is
// an empty set, never an error; the next write overwrites the bad value.
func (s *Favorites) localSet() map[string]struct{} {
	set := make(map[string]struct{})

	raw, ok := s.local.Get(localFavoritesKey)
	if !ok {
		return set
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("malformed local favorites, treating as empty", "error", err)
		return set
	}

	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
