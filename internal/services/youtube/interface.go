package youtube

import (
	"context"

	"github.com/tunegrab/tunegrab/internal/models"
)

// MetadataClient resolves video metadata for the preview overlay.
type MetadataClient interface {
	// GetVideoDetails retrieves title, author, duration and thumbnail for a
	// video ID.
	GetVideoDetails(ctx context.Context, videoID string) (*models.VideoDetails, error)
}
