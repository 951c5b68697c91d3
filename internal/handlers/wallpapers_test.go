package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/muralhq/mural/internal/domain"
	"github.com/muralhq/mural/internal/handlers"
)

type fakeWallpaperService struct {
	wallpapers []domain.Wallpaper
	categories []domain.Category
}

func (f *fakeWallpaperService) GetWallpapers(ctx context.Context) []domain.Wallpaper {
	return f.wallpapers
}

func (f *fakeWallpaperService) GetWallpaperByID(ctx context.Context, id string) (domain.Wallpaper, bool) {
	for _, w := range f.wallpapers {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Wallpaper{}, false
}

func (f *fakeWallpaperService) GetWallpapersByCategory(ctx context.Context, categoryID string) []domain.Wallpaper {
	out := []domain.Wallpaper{}
	for _, w := range f.wallpapers {
		if w.Category == categoryID {
			out = append(out, w)
		}
	}
	return out
}

func (f *fakeWallpaperService) GetCategories(ctx context.Context) []domain.Category {
	return f.categories
}

func TestWallpapersHandler_List(t *testing.T) {
	svc := &fakeWallpaperService{wallpapers: []domain.Wallpaper{{ID: "w1", Title: "Fog"}, {ID: "w2", Title: "Wave"}}}
	handler := handlers.NewWallpapersHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/wallpapers", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var response []domain.Wallpaper
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response) != 2 || response[0].ID != "w1" {
		t.Fatalf("unexpected response %+v", response)
	}
}

func TestWallpapersHandler_Get(t *testing.T) {
	svc := &fakeWallpaperService{wallpapers: []domain.Wallpaper{{ID: "w1", Title: "Fog"}}}
	handler := handlers.NewWallpapersHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/wallpapers/w1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "w1"})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var response domain.Wallpaper
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Title != "Fog" {
		t.Fatalf("unexpected wallpaper %+v", response)
	}
}

func TestWallpapersHandler_GetNotFound(t *testing.T) {
	handler := handlers.NewWallpapersHandler(&fakeWallpaperService{})

	req := httptest.NewRequest(http.MethodGet, "/api/wallpapers/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestWallpapersHandler_ListByCategory(t *testing.T) {
	svc := &fakeWallpaperService{wallpapers: []domain.Wallpaper{
		{ID: "w1", Category: "nature"},
		{ID: "w2", Category: "city"},
	}}
	handler := handlers.NewWallpapersHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/nature/wallpapers", nil)
	req = mux.SetURLVars(req, map[string]string{"categoryID": "nature"})
	rec := httptest.NewRecorder()

	handler.ListByCategory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var response []domain.Wallpaper
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response) != 1 || response[0].ID != "w1" {
		t.Fatalf("unexpected response %+v", response)
	}
}

func TestWallpapersHandler_ListCategories(t *testing.T) {
	svc := &fakeWallpaperService{categories: []domain.Category{{ID: "nature", Name: "Nature", Count: 4}}}
	handler := handlers.NewWallpapersHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()

	handler.ListCategories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var response []domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response) != 1 || response[0].Name != "Nature" {
		t.Fatalf("unexpected response %+v", response)
	}
}
