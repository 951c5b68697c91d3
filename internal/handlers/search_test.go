package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muralhq/mural/internal/domain"
	"github.com/muralhq/mural/internal/handlers"
	"github.com/muralhq/mural/internal/service"
)

type fakeSearchService struct {
	results     []domain.Wallpaper
	suggestions []service.Suggestion
	lastTerm    string
	lastLimit   int
}

func (f *fakeSearchService) Search(ctx context.Context, term string) []domain.Wallpaper {
	f.lastTerm = term
	return f.results
}

func (f *fakeSearchService) Suggest(term string, limit int) []service.Suggestion {
	f.lastTerm = term
	f.lastLimit = limit
	return f.suggestions
}

func TestSearchHandler_Search(t *testing.T) {
	svc := &fakeSearchService{results: []domain.Wallpaper{{ID: "w1", Title: "Mountain Fog"}}}
	handler := handlers.NewSearchHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=+mountain+", nil)
	rec := httptest.NewRecorder()

	handler.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if svc.lastTerm != "mountain" {
		t.Fatalf("term not trimmed, got %q", svc.lastTerm)
	}

	var response []domain.Wallpaper
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response) != 1 || response[0].ID != "w1" {
		t.Fatalf("unexpected response %+v", response)
	}
}

func TestSearchHandler_SuggestDefaultLimit(t *testing.T) {
	svc := &fakeSearchService{}
	handler := handlers.NewSearchHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/search/suggest?q=ocn", nil)
	rec := httptest.NewRecorder()

	handler.Suggest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if svc.lastLimit != 8 {
		t.Fatalf("unexpected limit %d", svc.lastLimit)
	}
}

func TestSearchHandler_SuggestBadLimit(t *testing.T) {
	handler := handlers.NewSearchHandler(&fakeSearchService{})

	req := httptest.NewRequest(http.MethodGet, "/api/search/suggest?q=ocn&limit=zero", nil)
	rec := httptest.NewRecorder()

	handler.Suggest(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
