//go:build !embed
// +build !embed

package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setupStaticFiles serves the web UI from disk (no embedding)
func setupStaticFiles(router *gin.Engine, dir string, l *zap.Logger) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		l.Warn("web UI not found, serving API only", zap.String("dir", dir))
		router.NoRoute(notFound)
		return
	}

	l.Info("serving web UI from disk", zap.String("dir", dir))
	router.StaticFile("/", index)
	router.NoRoute(notFound)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found", "status": "error"})
}
