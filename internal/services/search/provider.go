package search

import (
	"context"

	"github.com/tunegrab/tunegrab/internal/models"
)

// ItemType classifies a raw provider hit. Only video items survive
// normalization; playlists, channels and mixes are dropped.
type ItemType string

const (
	ItemTypeVideo    ItemType = "video"
	ItemTypePlaylist ItemType = "playlist"
	ItemTypeChannel  ItemType = "channel"
	ItemTypeOther    ItemType = "other"
)

type Thumbnail struct {
	URL    string
	Width  int
	Height int
}

// Item is a raw, unfiltered hit as the external provider reported it.
type Item struct {
	Type       ItemType
	ID         string
	Title      string
	Channel    string
	Thumbnails []Thumbnail
}

// Provider is the external video-search capability. Implementations return
// up to limit raw hits for the query, or an error when the provider call
// fails or yields nothing at all.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Item, error)
}

// Searcher is what the API layer consumes: normalized, video-only results.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.VideoResult, error)
}
