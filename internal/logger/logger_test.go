package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"homeprice/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		wantErr bool
	}{
		{name: "json info", cfg: config.LoggingConfig{Level: "info", Format: "json"}},
		{name: "console debug", cfg: config.LoggingConfig{Level: "DEBUG", Format: "console"}},
		{name: "bad level", cfg: config.LoggingConfig{Level: "loud", Format: "json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_WritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	l, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	l.Info("hello", zap.String("k", "v"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestGinLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := gin.New()
	router.Use(GinLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "/fail", entries[1].ContextMap()["path"])
}

func TestGinRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	router := gin.New()
	router.Use(GinRecovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error","status":"error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
