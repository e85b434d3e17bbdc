package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/models"
)

type stubSearcher struct {
	videos []models.VideoResult
	err    error
	calls  int
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]models.VideoResult, error) {
	s.calls++
	return s.videos, s.err
}

func searchRouter(searcher *stubSearcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/api/search", NewSearchHandler(searcher).Search)
	return engine
}

func TestSearchMissingQuery(t *testing.T) {
	searcher := &stubSearcher{}
	engine := searchRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["error"] != "Missing query" {
		t.Errorf("expected error %q, got %v", "Missing query", body["error"])
	}

	// The provider must never be called without a query.
	if searcher.calls != 0 {
		t.Errorf("expected 0 searcher calls, got %d", searcher.calls)
	}
}

func TestSearchSuccess(t *testing.T) {
	searcher := &stubSearcher{videos: []models.VideoResult{
		{VideoID: "vid00000001", Title: "Lofi Beats 1", Thumbnail: "https://i.ytimg.com/1.jpg", ChannelTitle: "Chan"},
		{VideoID: "vid00000002", Title: "Lofi Beats 2", Thumbnail: "https://i.ytimg.com/2.jpg"},
		{VideoID: "vid00000003", Title: "Lofi Beats 3", Thumbnail: "https://i.ytimg.com/3.jpg"},
	}}
	engine := searchRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=lofi+beats", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body models.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(body.Videos) != 3 {
		t.Errorf("expected 3 videos, got %d", len(body.Videos))
	}
	for _, v := range body.Videos {
		if v.VideoID == "" || v.Title == "" {
			t.Errorf("video with empty fields: %+v", v)
		}
	}
}

func TestSearchFailure(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("provider down")}
	engine := searchRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=anything", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["error"] != "Search failed" {
		t.Errorf("expected error %q, got %v", "Search failed", body["error"])
	}
}

func TestSearchEmptyResultList(t *testing.T) {
	// All provider hits were filtered out: still a 200 with an empty array.
	searcher := &stubSearcher{videos: []models.VideoResult{}}
	engine := searchRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=playlists+only", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body models.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(body.Videos) != 0 {
		t.Errorf("expected empty videos array, got %d entries", len(body.Videos))
	}
}
