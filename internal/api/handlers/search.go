package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/models"
	"github.com/tunegrab/tunegrab/internal/services/search"
	"github.com/tunegrab/tunegrab/internal/utils"
)

type SearchHandler struct {
	searcher search.Searcher
}

func NewSearchHandler(searcher search.Searcher) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
	}
}

// Search godoc
// @Summary Search YouTube videos
// @Description Search YouTube by keyword and return up to the configured maximum of video results. Playlists, channels and mixes are filtered out.
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("q")
	if query == "" {
		errorResponse(c, utils.NewMissingParamError("query"))
		return
	}

	videos, err := h.searcher.Search(ctx, query)
	if err != nil {
		utils.LogError(ctx, "Search failed", err, utils.Fields{
			"query": query,
		})
		errorResponse(c, utils.NewSearchError(err))
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{Videos: videos})
}
