package search

import (
	"context"
	"fmt"

	"github.com/tunegrab/tunegrab/internal/models"
	"github.com/tunegrab/tunegrab/internal/utils"
)

// Service normalizes raw provider hits into VideoResult records: video items
// only, capped at maxResults, best thumbnail selected per item.
type Service struct {
	provider   Provider
	maxResults int
}

func NewService(provider Provider, maxResults int) *Service {
	return &Service{
		provider:   provider,
		maxResults: maxResults,
	}
}

func (s *Service) Search(ctx context.Context, query string) ([]models.VideoResult, error) {
	items, err := s.provider.Search(ctx, query, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("search provider: %w", err)
	}

	videos := make([]models.VideoResult, 0, len(items))
	for _, item := range items {
		if item.Type != ItemTypeVideo {
			continue
		}
		if item.ID == "" {
			utils.LogWarn(ctx, "Dropping video result without an ID", utils.Fields{
				"title": item.Title,
			})
			continue
		}

		videos = append(videos, models.VideoResult{
			VideoID:      item.ID,
			Title:        item.Title,
			Thumbnail:    bestThumbnail(item.Thumbnails),
			ChannelTitle: item.Channel,
		})
		if len(videos) == s.maxResults {
			break
		}
	}

	utils.LogInfo(ctx, "Search completed", utils.Fields{
		"query":   query,
		"hits":    len(items),
		"videos":  len(videos),
		"dropped": len(items) - len(videos),
	})

	return videos, nil
}

// bestThumbnail picks the largest candidate by pixel area. Entries without
// dimensions sort last but still beat an empty result.
func bestThumbnail(thumbnails []Thumbnail) string {
	best := ""
	bestArea := -1

	for _, t := range thumbnails {
		if t.URL == "" {
			continue
		}
		area := t.Width * t.Height
		if area > bestArea {
			best = t.URL
			bestArea = area
		}
	}

	return best
}
