package youtube

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/tunegrab/tunegrab/internal/models"
)

type Client struct {
	client *youtube.Client
}

// NewClient creates a new YouTube metadata client
func NewClient() *Client {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	return &Client{
		client: &youtube.Client{
			HTTPClient: httpClient,
		},
	}
}

// GetVideoDetails retrieves video metadata for the preview overlay.
func (c *Client) GetVideoDetails(ctx context.Context, videoID string) (*models.VideoDetails, error) {
	video, err := c.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video info: %w", err)
	}

	details := &models.VideoDetails{
		VideoID:  video.ID,
		Title:    video.Title,
		Author:   video.Author,
		Duration: video.Duration.String(),
	}

	if len(video.Thumbnails) > 0 {
		details.Thumbnail = video.Thumbnails[0].URL
	}

	return details, nil
}

var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID accepts either a bare video ID or any common YouTube URL
// form and returns the ID.
func ExtractVideoID(input string) (string, error) {
	if matches := videoIDPattern.FindStringSubmatch(input); len(matches) > 1 {
		return matches[1], nil
	}

	// Bare IDs pass through untouched as long as they look like one.
	if regexp.MustCompile(`^[a-zA-Z0-9_-]{6,}$`).MatchString(input) {
		return input, nil
	}

	return "", fmt.Errorf("could not extract video ID from %q", input)
}
