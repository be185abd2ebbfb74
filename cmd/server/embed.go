//go:build embed
// +build embed

package main

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles serves the web UI embedded in the binary
func setupStaticFiles(router *gin.Engine, _ string, l *zap.Logger) {
	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		l.Fatal("failed to get dist subdirectory", zap.Error(err))
	}

	l.Info("using embedded web UI")
	router.StaticFileFS("/", "index.html", http.FS(distFS))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found", "status": "error"})
	})
}
