package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/muralhq/mural/internal/domain"
	"github.com/muralhq/mural/internal/service"
)

type favoriteService interface {
	Toggle(ctx context.Context, wallpaperID string) (bool, error)
	GetFavorites(ctx context.Context) []domain.Wallpaper
}

var _ favoriteService = (*service.Favorites)(nil)

type FavoritesHandler struct {
	Service favoriteService
}

func NewFavoritesHandler(svc favoriteService) *FavoritesHandler {
	return &FavoritesHandler{Service: svc}
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.GetFavorites(r.Context()))
}

type toggleResponse struct {
	WallpaperID string `json:"wallpaperId"`
	IsFavorite  bool   `json:"isFavorite"`
}

func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := strings.TrimSpace(vars["id"])
	if id == "" {
		http.Error(w, "wallpaper id is required", http.StatusBadRequest)
		return
	}

	favorited, err := h.Service.Toggle(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrSourceUnavailable):
			status = http.StatusBadGateway
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, toggleResponse{WallpaperID: id, IsFavorite: favorited})
}
