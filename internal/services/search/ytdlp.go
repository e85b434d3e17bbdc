package search

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tunegrab/tunegrab/internal/utils"
)

// commandRunner abstracts process execution so tests can stub yt-dlp output.
type commandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// YtDlpProvider searches YouTube through yt-dlp's ytsearch extractor. Each
// result line of --dump-json --flat-playlist is one JSON entry.
type YtDlpProvider struct {
	binaryPath string
	runner     commandRunner
}

func NewYtDlpProvider(binaryPath string) *YtDlpProvider {
	return &YtDlpProvider{
		binaryPath: binaryPath,
		runner:     execRunner{},
	}
}

func (p *YtDlpProvider) Search(ctx context.Context, query string, limit int) ([]Item, error) {
	args := []string{
		fmt.Sprintf("ytsearch%d:%s", limit, query),
		"--dump-json",
		"--flat-playlist",
		"--no-warnings",
	}

	output, err := p.runner.Output(ctx, p.binaryPath, args...)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp search failed: %w", err)
	}

	items, err := parseSearchOutput(ctx, output)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no results for query %q", query)
	}

	return items, nil
}

// ytDlpEntry is the subset of a flat-playlist JSON line the service needs.
type ytDlpEntry struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Channel    string `json:"channel"`
	Uploader   string `json:"uploader"`
	IEKey      string `json:"ie_key"`
	Thumbnails []struct {
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"thumbnails"`
}

func parseSearchOutput(ctx context.Context, output []byte) ([]Item, error) {
	var items []Item

	scanner := bufio.NewScanner(bytes.NewReader(output))
	// Entries with many thumbnail candidates overflow the default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry ytDlpEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			utils.LogWarn(ctx, "Skipping unparseable search entry", utils.Fields{
				"error": err.Error(),
			})
			continue
		}

		items = append(items, Item{
			Type:       classifyEntry(entry.IEKey),
			ID:         entry.ID,
			Title:      entry.Title,
			Channel:    channelName(entry),
			Thumbnails: entryThumbnails(entry),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read yt-dlp output: %w", err)
	}

	return items, nil
}

// classifyEntry maps yt-dlp extractor keys onto result types.
func classifyEntry(ieKey string) ItemType {
	switch ieKey {
	case "Youtube":
		return ItemTypeVideo
	case "YoutubePlaylist", "YoutubeMix":
		return ItemTypePlaylist
	case "YoutubeTab", "YoutubeChannel":
		return ItemTypeChannel
	default:
		return ItemTypeOther
	}
}

func channelName(entry ytDlpEntry) string {
	if entry.Channel != "" {
		return entry.Channel
	}
	return entry.Uploader
}

func entryThumbnails(entry ytDlpEntry) []Thumbnail {
	thumbnails := make([]Thumbnail, 0, len(entry.Thumbnails))
	for _, t := range entry.Thumbnails {
		thumbnails = append(thumbnails, Thumbnail{
			URL:    t.URL,
			Width:  t.Width,
			Height: t.Height,
		})
	}
	return thumbnails
}
