// Package web carries the embedded browser UI: a single page that talks to
// /api/search, /api/download and /api/video.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html static
var content embed.FS

// Register mounts the UI on the engine: index at /, assets under /static.
func Register(engine *gin.Engine) {
	staticFS, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}

	engine.StaticFS("/static", http.FS(staticFS))
	engine.GET("/", func(c *gin.Context) {
		page, err := content.ReadFile("index.html")
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
}
