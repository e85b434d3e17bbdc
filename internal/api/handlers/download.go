package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/services/downloader"
	"github.com/tunegrab/tunegrab/internal/utils"
)

type DownloadHandler struct {
	fetcher downloader.Fetcher
}

func NewDownloadHandler(fetcher downloader.Fetcher) *DownloadHandler {
	return &DownloadHandler{
		fetcher: fetcher,
	}
}

// Download godoc
// @Summary Download video audio as MP3
// @Description Extract the audio track of a YouTube video, transcode it to MP3 and stream it back as an attachment. The scratch file is deleted once the response stream closes.
// @Tags download
// @Produce audio/mpeg
// @Param videoId query string true "YouTube video ID"
// @Success 200 {file} binary "MP3 audio"
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Download for this video already in progress"
// @Failure 500 {object} map[string]interface{}
// @Router /api/download [get]
func (h *DownloadHandler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	videoID := c.Query("videoId")
	if videoID == "" {
		errorResponse(c, utils.NewMissingParamError("videoId"))
		return
	}

	audio, err := h.fetcher.Fetch(ctx, videoID)
	if err != nil {
		if errors.Is(err, downloader.ErrInProgress) {
			errorResponse(c, utils.NewDownloadInProgressError(videoID))
			return
		}
		utils.LogError(ctx, "Failed to fetch audio", err, utils.Fields{
			"video_id": videoID,
		})
		errorResponse(c, utils.NewDownloadError(err))
		return
	}
	// Close deletes the scratch file and frees the per-ID slot, whether the
	// stream completed or the caller went away.
	defer audio.Close()

	c.Header("Content-Type", "audio/mpeg")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", audio.FileName))
	c.Header("Content-Length", strconv.FormatInt(audio.Size, 10))

	written, err := io.Copy(c.Writer, audio)
	if err != nil {
		utils.LogError(ctx, "Failed to stream audio", err, utils.Fields{
			"video_id":      videoID,
			"bytes_written": written,
		})
		return
	}

	utils.LogInfo(ctx, "Successfully streamed audio", utils.Fields{
		"video_id":      videoID,
		"bytes_written": written,
		"file_name":     audio.FileName,
	})
}
