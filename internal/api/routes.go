package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/muralhq/mural/internal/handlers"
)

// Register mounts API endpoints onto the provided router.
func Register(
	r *mux.Router,
	wallpapersHandler *handlers.WallpapersHandler,
	searchHandler *handlers.SearchHandler,
	favoritesHandler *handlers.FavoritesHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(corsMiddleware)
	api.Use(accessTokenMiddleware)

	api.HandleFunc("/wallpapers", wallpapersHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/wallpapers/{id}", wallpapersHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/categories", wallpapersHandler.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryID}/wallpapers", wallpapersHandler.ListByCategory).Methods(http.MethodGet)

	api.HandleFunc("/search", searchHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/search/suggest", searchHandler.Suggest).Methods(http.MethodGet)

	api.HandleFunc("/favorites", favoritesHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/favorites/{id}/toggle", favoritesHandler.Toggle).Methods(http.MethodPost)

	api.HandleFunc("/admin/wallpapers", adminHandler.AddWallpaper).Methods(http.MethodPost)
}
