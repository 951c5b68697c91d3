// Package source selects the catalog backend. There is exactly one query
// layer; demo/seed and hosted Supabase backends plug into it by
// configuration rather than living as parallel implementations.
package source

import (
	"fmt"
	"log/slog"

	"github.com/muralhq/mural/internal/config"
	"github.com/muralhq/mural/internal/domain"
	"github.com/muralhq/mural/internal/source/seed"
	"github.com/muralhq/mural/internal/source/supabase"
)

// Backend bundles everything a catalog backend provides: record reads, the
// remote favorite relation, and session resolution.
type Backend struct {
	Catalog   domain.CatalogSource
	Favorites domain.FavoriteRelation
	Sessions  domain.SessionProvider
}

// New creates the backend named by the configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	switch cfg.Source.Type {
	case config.SourceTypeSeed:
		catalog := seed.NewSource()
		return &Backend{
			Catalog:   catalog,
			Favorites: seed.NewFavorites(catalog),
			Sessions:  seed.NewGuestSessionProvider(),
		}, nil

	case config.SourceTypeSupabase:
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, logger)
		return &Backend{
			Catalog:   client,
			Favorites: client,
			Sessions:  supabase.NewSessionProvider(client),
		}, nil

	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Source.Type)
	}
}
