package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muralhq/mural/internal/domain"
)

func testCatalog() ([]domain.Wallpaper, []domain.Category) {
	wallpapers := []domain.Wallpaper{
		{ID: "a", Title: "Alpine Ridge", ImageURL: "https://x/a.jpg", Category: "nature", Tags: []string{"Mountains", "snow"}, DateAdded: "2025-03-01"},
		{ID: "b", Title: "City Lights", ImageURL: "https://x/b.jpg", Category: "city", Tags: []string{"night"}, DateAdded: "2025-03-10"},
		{ID: "c", Title: "Mountain Lake", ImageURL: "https://x/c.jpg", Category: "nature", DateAdded: "2025-03-05"},
	}
	categories := []domain.Category{
		{ID: "nature", Name: "Nature", Count: 2},
		{ID: "city", Name: "City", Count: 1},
	}
	return wallpapers, categories
}

func TestGetWallpapersSortsNewestFirst(t *testing.T) {
	src := NewSourceWith(testCatalog())

	got, err := src.GetWallpapers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []string{"b", "c", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestNormalizationAppliesDefaults(t *testing.T) {
	src := NewSourceWith(testCatalog())

	w, err := src.GetWallpaperByID(context.Background(), "c")
	require.NoError(t, err)
	require.Equal(t, "https://x/c.jpg", w.ThumbnailURL)
	require.NotNil(t, w.Tags)
	require.Empty(t, w.Tags)
	require.Equal(t, domain.DefaultContentRating, w.ContentRating)
	require.Equal(t, domain.DefaultWallpaperType, w.WallpaperType)
}

func TestGetWallpaperByIDMissing(t *testing.T) {
	src := NewSourceWith(testCatalog())

	_, err := src.GetWallpaperByID(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetWallpapersByCategory(t *testing.T) {
	src := NewSourceWith(testCatalog())

	got, err := src.GetWallpapersByCategory(context.Background(), "nature")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, w := range got {
		require.Equal(t, "nature", w.Category)
	}

	// Newest first, matching the full listing's order
	require.Equal(t, "c", got[0].ID)
	require.Equal(t, "a", got[1].ID)
}

func TestSearchByTitleIsCaseInsensitiveSubstring(t *testing.T) {
	src := NewSourceWith(testCatalog())

	got, err := src.SearchByTitle(context.Background(), "MOUNTAIN")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].ID)
}

func TestSearchByTagMatchesWholeTag(t *testing.T) {
	src := NewSourceWith(testCatalog())
	ctx := context.Background()

	got, err := src.SearchByTag(ctx, "mountains")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].ID)

	// Substrings of a tag do not match
	got, err = src.SearchByTag(ctx, "mountain")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetCategoriesSortedByName(t *testing.T) {
	src := NewSourceWith(testCatalog())

	got, err := src.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "City", got[0].Name)
	require.Equal(t, "Nature", got[1].Name)
}

func TestInsertAndIncrementCount(t *testing.T) {
	src := NewSourceWith(testCatalog())
	ctx := context.Background()

	err := src.InsertWallpaper(ctx, domain.Wallpaper{ID: "d", Title: "Harbor", ImageURL: "https://x/d.jpg", Category: "city", DateAdded: "2025-03-20"})
	require.NoError(t, err)

	w, err := src.GetWallpaperByID(ctx, "d")
	require.NoError(t, err)
	require.Equal(t, domain.DefaultWallpaperType, w.WallpaperType)

	require.NoError(t, src.IncrementCategoryCount(ctx, "city"))
	cats, err := src.GetCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, cats[0].Count)

	require.ErrorIs(t, src.IncrementCategoryCount(ctx, "missing"), domain.ErrNotFound)
}

func TestBuiltInCatalogIsConsistent(t *testing.T) {
	src := NewSource()
	ctx := context.Background()

	wallpapers, err := src.GetWallpapers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, wallpapers)

	categories, err := src.GetCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}
	for _, w := range wallpapers {
		require.True(t, known[w.Category], "wallpaper %s references unknown category %s", w.ID, w.Category)
		require.NotEmpty(t, w.ImageURL)
		require.NotEmpty(t, w.ThumbnailURL)
	}
}
