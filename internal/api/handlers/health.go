package handlers

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/utils"
)

type HealthHandler struct {
	binaryPath string
	scratchDir string
}

type HealthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Version   string                   `json:"version"`
	Services  map[string]ServiceHealth `json:"services"`
}

type ServiceHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewHealthHandler(cfg *config.DownloadConfig) *HealthHandler {
	return &HealthHandler{
		binaryPath: cfg.BinaryPath,
		scratchDir: cfg.ScratchDir,
	}
}

// Health godoc
// @Summary Health check endpoint
// @Description Check the health of the service and its external collaborators
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Success 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "1.0.0",
		Services:  make(map[string]ServiceHealth),
	}

	response.Services["downloader"] = h.checkDownloader(ctx)
	response.Services["scratch"] = h.checkScratchDir(ctx)

	for _, service := range response.Services {
		if service.Status != "healthy" {
			response.Status = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
	}

	c.JSON(http.StatusOK, response)
}

// Readiness godoc
// @Summary Readiness check endpoint
// @Description Check if the service is ready to accept requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()

	ready := true
	checks := make(map[string]interface{})

	if health := h.checkDownloader(ctx); health.Status != "healthy" {
		ready = false
		checks["downloader"] = map[string]interface{}{"ready": false, "error": health.Error}
	} else {
		checks["downloader"] = map[string]interface{}{"ready": true}
	}

	if health := h.checkScratchDir(ctx); health.Status != "healthy" {
		ready = false
		checks["scratch"] = map[string]interface{}{"ready": false, "error": health.Error}
	} else {
		checks["scratch"] = map[string]interface{}{"ready": true}
	}

	response := map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	}

	if ready {
		c.JSON(http.StatusOK, response)
	} else {
		c.JSON(http.StatusServiceUnavailable, response)
	}
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Description Check if the service is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) checkDownloader(ctx context.Context) ServiceHealth {
	if _, err := exec.LookPath(h.binaryPath); err != nil {
		utils.LogError(ctx, "Downloader health check failed", err)
		return ServiceHealth{
			Status: "unhealthy",
			Error:  err.Error(),
		}
	}

	return ServiceHealth{Status: "healthy"}
}

func (h *HealthHandler) checkScratchDir(ctx context.Context) ServiceHealth {
	probe, err := os.CreateTemp(h.scratchDir, ".healthcheck-*")
	if err != nil {
		utils.LogError(ctx, "Scratch dir health check failed", err)
		return ServiceHealth{
			Status: "unhealthy",
			Error:  err.Error(),
		}
	}
	probe.Close()
	os.Remove(probe.Name())

	return ServiceHealth{Status: "healthy"}
}
