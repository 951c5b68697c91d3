package seed

import "github.com/muralhq/mural/internal/domain"

// Demo catalog. Images are Unsplash assets sized for full view and cards.
func defaultWallpapers() []domain.Wallpaper {
	raw := []domain.Wallpaper{
		{
			ID:           "1",
			Title:        "Mountain Fog",
			ImageURL:     "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?auto=format&fit=crop&w=500&q=60",
			Category:     "nature",
			Tags:         []string{"mountains", "fog", "landscape"},
			Dimensions:   domain.Dimensions{Width: 7372, Height: 4392},
			DateAdded:    "2025-04-28",
		},
		{
			ID:           "2",
			Title:        "Ocean Wave",
			ImageURL:     "https://images.unsplash.com/photo-1500375592092-40eb2168fd21?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1500375592092-40eb2168fd21?auto=format&fit=crop&w=500&q=60",
			Category:     "nature",
			Tags:         []string{"ocean", "wave", "water"},
			Dimensions:   domain.Dimensions{Width: 3945, Height: 5909},
			DateAdded:    "2025-04-27",
		},
		{
			ID:           "3",
			Title:        "Forest Mountains",
			ImageURL:     "https://images.unsplash.com/photo-1426604966848-d7adac402bff?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1426604966848-d7adac402bff?auto=format&fit=crop&w=500&q=60",
			Category:     "landscape",
			Tags:         []string{"trees", "mountains", "forest"},
			Dimensions:   domain.Dimensions{Width: 5616, Height: 3744},
			DateAdded:    "2025-04-26",
		},
		{
			ID:           "4",
			Title:        "Lakeside View",
			ImageURL:     "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=500&q=60",
			Category:     "landscape",
			Tags:         []string{"lake", "trees", "water"},
			Dimensions:   domain.Dimensions{Width: 7360, Height: 4912},
			DateAdded:    "2025-04-25",
		},
		{
			ID:           "5",
			Title:        "Green Mountains",
			ImageURL:     "https://images.unsplash.com/photo-1615729947596-a598e5de0ab3?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1615729947596-a598e5de0ab3?auto=format&fit=crop&w=500&q=60",
			Category:     "nature",
			Tags:         []string{"green", "mountains", "rocks"},
			Dimensions:   domain.Dimensions{Width: 3456, Height: 5184},
			DateAdded:    "2025-04-24",
		},
		{
			ID:           "6",
			Title:        "Modern Architecture",
			ImageURL:     "https://images.unsplash.com/photo-1493397212122-2b85dda8106b?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1493397212122-2b85dda8106b?auto=format&fit=crop&w=500&q=60",
			Category:     "architecture",
			Tags:         []string{"building", "modern", "design"},
			Dimensions:   domain.Dimensions{Width: 3857, Height: 2571},
			DateAdded:    "2025-04-23",
		},
		{
			ID:           "7",
			Title:        "Desert Sunset",
			ImageURL:     "https://images.unsplash.com/photo-1604537529428-15bcbeecfe4d?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1604537529428-15bcbeecfe4d?auto=format&fit=crop&w=500&q=60",
			Category:     "nature",
			Tags:         []string{"desert", "sunset", "landscape"},
			Dimensions:   domain.Dimensions{Width: 4016, Height: 6016},
			DateAdded:    "2025-04-22",
		},
		{
			ID:           "8",
			Title:        "Abstract Art",
			ImageURL:     "https://images.unsplash.com/photo-1568244938214-fb59e1bb73fc?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1568244938214-fb59e1bb73fc?auto=format&fit=crop&w=500&q=60",
			Category:     "abstract",
			Tags:         []string{"art", "colors", "abstract"},
			Dimensions:   domain.Dimensions{Width: 4480, Height: 6720},
			DateAdded:    "2025-04-21",
		},
		{
			ID:           "9",
			Title:        "Night City",
			ImageURL:     "https://images.unsplash.com/photo-1519608425089-7f3bfa6f6bb8?auto=format&fit=crop&w=1080&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1519608425089-7f3bfa6f6bb8?auto=format&fit=crop&w=500&q=60",
			Category:     "city",
			Tags:         []string{"city", "night", "lights"},
			Dimensions:   domain.Dimensions{Width: 4256, Height: 2832},
			DateAdded:    "2025-04-20",
		},
	}

	out := make([]domain.Wallpaper, 0, len(raw))
	for _, w := range raw {
		out = append(out, normalize(w))
	}
	return out
}

func defaultCategories() []domain.Category {
	return []domain.Category{
		{ID: "nature", Name: "Nature", ImageURL: "https://images.unsplash.com/photo-1615729947596-a598e5de0ab3?auto=format&fit=crop&w=500&q=60", Count: 4},
		{ID: "landscape", Name: "Landscapes", ImageURL: "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=500&q=60", Count: 2},
		{ID: "architecture", Name: "Architecture", ImageURL: "https://images.unsplash.com/photo-1493397212122-2b85dda8106b?auto=format&fit=crop&w=500&q=60", Count: 1},
		{ID: "abstract", Name: "Abstract", ImageURL: "https://images.unsplash.com/photo-1568244938214-fb59e1bb73fc?auto=format&fit=crop&w=500&q=60", Count: 1},
		{ID: "city", Name: "City", ImageURL: "https://images.unsplash.com/photo-1519608425089-7f3bfa6f6bb8?auto=format&fit=crop&w=500&q=60", Count: 1},
	}
}
