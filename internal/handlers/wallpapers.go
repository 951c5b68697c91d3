package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/muralhq/mural/internal/domain"
	"github.com/muralhq/mural/internal/service"
)

type wallpaperService interface {
	GetWallpapers(ctx context.Context) []domain.Wallpaper
	GetWallpaperByID(ctx context.Context, id string) (domain.Wallpaper, bool)
	GetWallpapersByCategory(ctx context.Context, categoryID string) []domain.Wallpaper
	GetCategories(ctx context.Context) []domain.Category
}

var _ wallpaperService = (*service.Wallpapers)(nil)

type WallpapersHandler struct {
	Service wallpaperService
}

func NewWallpapersHandler(svc wallpaperService) *WallpapersHandler {
	return &WallpapersHandler{Service: svc}
}

func (h *WallpapersHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.GetWallpapers(r.Context()))
}

func (h *WallpapersHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := strings.TrimSpace(vars["id"])
	if id == "" {
		http.Error(w, "wallpaper id is required", http.StatusBadRequest)
		return
	}

	wallpaper, ok := h.Service.GetWallpaperByID(r.Context(), id)
	if !ok {
		http.Error(w, "wallpaper not found", http.StatusNotFound)
		return
	}
	writeJSON(w, wallpaper)
}

func (h *WallpapersHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.GetCategories(r.Context()))
}

func (h *WallpapersHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := strings.TrimSpace(vars["categoryID"])
	if categoryID == "" {
		http.Error(w, "category id is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.Service.GetWallpapersByCategory(r.Context(), categoryID))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
