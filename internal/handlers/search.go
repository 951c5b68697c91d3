package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/muralhq/mural/internal/domain"
	"github.com/muralhq/mural/internal/service"
)

const defaultSuggestLimit = 8

type searchService interface {
	Search(ctx context.Context, term string) []domain.Wallpaper
	Suggest(term string, limit int) []service.Suggestion
}

var _ searchService = (*service.Search)(nil)

type SearchHandler struct {
	Service searchService
}

func NewSearchHandler(svc searchService) *SearchHandler {
	return &SearchHandler{Service: svc}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	writeJSON(w, h.Service.Search(r.Context(), term))
}

func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))

	limit := defaultSuggestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	writeJSON(w, h.Service.Suggest(term, limit))
}
