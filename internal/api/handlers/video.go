package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/services/youtube"
	"github.com/tunegrab/tunegrab/internal/utils"
)

type VideoHandler struct {
	youtube youtube.MetadataClient
}

func NewVideoHandler(client youtube.MetadataClient) *VideoHandler {
	return &VideoHandler{
		youtube: client,
	}
}

// Details godoc
// @Summary Get video metadata
// @Description Resolve title, author, duration and thumbnail for a video. Accepts a bare video ID or a full YouTube URL.
// @Tags video
// @Produce json
// @Param videoId query string true "YouTube video ID or URL"
// @Success 200 {object} models.VideoDetails
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/video [get]
func (h *VideoHandler) Details(c *gin.Context) {
	ctx := c.Request.Context()

	raw := c.Query("videoId")
	if raw == "" {
		errorResponse(c, utils.NewMissingParamError("videoId"))
		return
	}

	videoID, err := youtube.ExtractVideoID(raw)
	if err != nil {
		errorResponse(c, utils.NewErrorWithDetails(
			utils.ErrorCodeValidationError,
			"Invalid videoId",
			http.StatusBadRequest,
			map[string]interface{}{"provided": raw},
		))
		return
	}

	details, err := h.youtube.GetVideoDetails(ctx, videoID)
	if err != nil {
		utils.LogError(ctx, "Video lookup failed", err, utils.Fields{
			"video_id": videoID,
		})
		errorResponse(c, utils.NewVideoLookupError(err))
		return
	}

	c.JSON(http.StatusOK, details)
}
