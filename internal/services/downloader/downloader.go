package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tunegrab/tunegrab/internal/utils"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// ErrInProgress is returned when a fetch for the same video ID is already
// running. Concurrent requests for one ID would race on the scratch file, so
// later ones are rejected instead.
var ErrInProgress = errors.New("download already in progress")

// Runner invokes the external downloader/transcoder: fetch the source URL,
// extract audio, write an MP3 at outputPath or fail.
type Runner interface {
	Run(ctx context.Context, sourceURL, outputPath string) error
}

// YtDlpRunner shells out to yt-dlp for audio extraction.
type YtDlpRunner struct {
	binaryPath string
}

func NewYtDlpRunner(binaryPath string) *YtDlpRunner {
	return &YtDlpRunner{binaryPath: binaryPath}
}

func (r *YtDlpRunner) Run(ctx context.Context, sourceURL, outputPath string) error {
	cmd := exec.CommandContext(ctx, r.binaryPath,
		"-x",
		"--audio-format", "mp3",
		"--no-playlist",
		"-o", outputPath,
		sourceURL,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("yt-dlp failed: %w, output: %s", err, string(output))
	}

	return nil
}

// Fetcher produces a ready-to-stream audio artifact for a video ID.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (*Audio, error)
}

// Audio is a one-shot MP3 artifact. Reading streams the scratch file; Close
// deletes it and releases the per-ID slot. Each artifact is streamed exactly
// once.
type Audio struct {
	FileName string
	Size     int64

	file    *os.File
	cleanup func()
}

func (a *Audio) Read(p []byte) (int, error) {
	return a.file.Read(p)
}

func (a *Audio) Close() error {
	err := a.file.Close()
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
	return err
}

var _ io.ReadCloser = (*Audio)(nil)

// Downloader runs the per-request download cycle: clean any stale artifact,
// invoke the runner, stat and open the output. At most one fetch per video ID
// is in flight at a time.
type Downloader struct {
	runner     Runner
	scratchDir string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewDownloader(runner Runner, scratchDir string) *Downloader {
	return &Downloader{
		runner:     runner,
		scratchDir: scratchDir,
		inFlight:   make(map[string]struct{}),
	}
}

func (d *Downloader) Fetch(ctx context.Context, videoID string) (*Audio, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is empty")
	}
	// The ID names a scratch file, so it must not carry path elements.
	if strings.ContainsAny(videoID, "/\\") || strings.Contains(videoID, "..") {
		return nil, fmt.Errorf("invalid video ID: %q", videoID)
	}

	if !d.acquire(videoID) {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrInProgress)
	}

	audio, err := d.fetch(ctx, videoID)
	if err != nil {
		d.release(videoID)
		return nil, err
	}

	return audio, nil
}

func (d *Downloader) fetch(ctx context.Context, videoID string) (*Audio, error) {
	fileName := videoID + ".mp3"
	outputPath := filepath.Join(d.scratchDir, fileName)

	// A stale artifact from an earlier failed run must never be served.
	if err := removeIfExists(outputPath); err != nil {
		return nil, fmt.Errorf("failed to clean scratch file: %w", err)
	}

	sourceURL := fmt.Sprintf(watchURLFormat, videoID)

	utils.LogInfo(ctx, "Starting audio download", utils.Fields{
		"video_id": videoID,
		"output":   outputPath,
	})

	if err := d.runner.Run(ctx, sourceURL, outputPath); err != nil {
		// Remove any partial output so a later request cannot stream a
		// truncated file.
		if rmErr := removeIfExists(outputPath); rmErr != nil {
			utils.LogWarn(ctx, "Failed to remove partial download", utils.Fields{
				"video_id": videoID,
				"error":    rmErr.Error(),
			})
		}
		return nil, fmt.Errorf("downloader run: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat output file: %w", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	return &Audio{
		FileName: fileName,
		Size:     info.Size(),
		file:     file,
		cleanup: func() {
			if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
				utils.LogWarn(context.Background(), "Failed to delete scratch file", utils.Fields{
					"video_id": videoID,
					"error":    err.Error(),
				})
			}
			d.release(videoID)
		},
	}, nil
}

func (d *Downloader) acquire(videoID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, busy := d.inFlight[videoID]; busy {
		return false
	}
	d.inFlight[videoID] = struct{}{}
	return true
}

func (d *Downloader) release(videoID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.inFlight, videoID)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
