package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/muralhq/mural/internal/domain"
	"github.com/muralhq/mural/internal/service"
)

// maxUploadBytes caps the multipart form held in memory during an upload
const maxUploadBytes = 32 << 20

type adminService interface {
	AddWallpaper(ctx context.Context, input domain.NewWallpaperInput, image []byte, contentType string) (domain.Wallpaper, error)
}

var _ adminService = (*service.Admin)(nil)

type AdminHandler struct {
	Service adminService
}

func NewAdminHandler(svc adminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// AddWallpaper accepts a multipart form with an "image" file part and the
// wallpaper fields, uploads the image, and returns the created record.
func (h *AdminHandler) AddWallpaper(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read image", http.StatusBadRequest)
		return
	}
	contentType := header.Header.Get("Content-Type")

	input := domain.NewWallpaperInput{
		Title:             strings.TrimSpace(r.FormValue("title")),
		Category:          strings.TrimSpace(r.FormValue("category")),
		Tags:              splitList(r.FormValue("tags")),
		Premium:           r.FormValue("premium") == "true",
		Featured:          r.FormValue("featured") == "true",
		ContentRating:     strings.TrimSpace(r.FormValue("contentRating")),
		CompatibleDevices: splitList(r.FormValue("compatibleDevices")),
		WallpaperType:     strings.TrimSpace(r.FormValue("wallpaperType")),
	}
	input.Dimensions.Width, _ = strconv.Atoi(r.FormValue("width"))
	input.Dimensions.Height, _ = strconv.Atoi(r.FormValue("height"))

	created, err := h.Service.AddWallpaper(r.Context(), input, image, contentType)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrSourceUnavailable):
			status = http.StatusBadGateway
		case errors.Is(err, domain.ErrInvalidInput):
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// splitList parses a comma-separated form value into a trimmed slice
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
