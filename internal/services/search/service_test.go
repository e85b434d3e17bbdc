package search

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	items []Item
	err   error

	calls     int
	lastQuery string
	lastLimit int
}

func (p *stubProvider) Search(ctx context.Context, query string, limit int) ([]Item, error) {
	p.calls++
	p.lastQuery = query
	p.lastLimit = limit
	return p.items, p.err
}

func videoItem(id, title string) Item {
	return Item{
		Type:  ItemTypeVideo,
		ID:    id,
		Title: title,
		Thumbnails: []Thumbnail{
			{URL: "https://i.ytimg.com/" + id + ".jpg", Width: 480, Height: 360},
		},
	}
}

func TestServiceFiltersNonVideoItems(t *testing.T) {
	// Three videos and a playlist: only the videos survive.
	provider := &stubProvider{items: []Item{
		videoItem("vid00000001", "Lofi Beats 1"),
		Item{Type: ItemTypePlaylist, ID: "PLmix", Title: "Lofi mix"},
		videoItem("vid00000002", "Lofi Beats 2"),
		videoItem("vid00000003", "Lofi Beats 3"),
	}}

	service := NewService(provider, 10)

	videos, err := service.Search(context.Background(), "lofi beats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(videos))
	}
	for _, v := range videos {
		if v.VideoID == "" || v.Title == "" {
			t.Errorf("video with empty fields: %+v", v)
		}
		if v.VideoID == "PLmix" {
			t.Error("playlist item leaked into results")
		}
	}

	if provider.lastQuery != "lofi beats" || provider.lastLimit != 10 {
		t.Errorf("provider called with (%q, %d)", provider.lastQuery, provider.lastLimit)
	}
}

func TestServiceCapsResults(t *testing.T) {
	var items []Item
	for i := 0; i < 15; i++ {
		items = append(items, videoItem(string(rune('a'+i))+"0000000000", "t"))
	}
	provider := &stubProvider{items: items}

	service := NewService(provider, 10)

	videos, err := service.Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) > 10 {
		t.Errorf("expected at most 10 videos, got %d", len(videos))
	}
}

func TestServiceDropsItemsWithoutID(t *testing.T) {
	provider := &stubProvider{items: []Item{
		{Type: ItemTypeVideo, ID: "", Title: "ghost"},
		videoItem("vid00000001", "real"),
	}}

	service := NewService(provider, 10)

	videos, err := service.Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 1 || videos[0].VideoID != "vid00000001" {
		t.Errorf("unexpected videos: %+v", videos)
	}
}

func TestServicePropagatesProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("provider exploded")}
	service := NewService(provider, 10)

	if _, err := service.Search(context.Background(), "q"); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestBestThumbnail(t *testing.T) {
	testCases := []struct {
		name       string
		thumbnails []Thumbnail
		want       string
	}{
		{
			name: "largest area wins",
			thumbnails: []Thumbnail{
				{URL: "small", Width: 120, Height: 90},
				{URL: "large", Width: 640, Height: 480},
				{URL: "medium", Width: 320, Height: 180},
			},
			want: "large",
		},
		{
			name: "dimensionless beats nothing",
			thumbnails: []Thumbnail{
				{URL: "only"},
			},
			want: "only",
		},
		{
			name:       "no thumbnails",
			thumbnails: nil,
			want:       "",
		},
		{
			name: "empty URLs skipped",
			thumbnails: []Thumbnail{
				{URL: "", Width: 9999, Height: 9999},
				{URL: "real", Width: 1, Height: 1},
			},
			want: "real",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bestThumbnail(tc.thumbnails); got != tc.want {
				t.Errorf("bestThumbnail() = %q, want %q", got, tc.want)
			}
		})
	}
}
