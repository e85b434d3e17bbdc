package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/utils"
)

// errorResponse converts an AppError into the fixed wire shape. The error
// field carries only the generic message; internal detail stays server-side.
func errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error":      err.Message,
		"code":       err.Code,
		"request_id": c.GetString("request_id"),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}
