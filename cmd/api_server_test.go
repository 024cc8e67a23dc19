package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rm-hull/batch-effects/internal/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ginprom registers its collectors globally, so the router is built once.
func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rootDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, "cat_tint.jpg"), []byte("jpeg bytes"), 0644))

	r, err := NewRouter(rootDir, false)
	require.NoError(t, err)

	t.Run("effects catalog", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/effects", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Effects []struct {
				Name   string         `json:"name"`
				Params map[string]any `json:"params"`
			} `json:"effects"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Effects, 18)
		assert.Equal(t, "saturate_hsl", body.Effects[0].Name)
		assert.Equal(t, 0.2, body.Effects[0].Params["level"])
		assert.Equal(t, "tint", body.Effects[11].Name)
		assert.Equal(t, map[string]any{"r": 10.0, "g": 20.0, "b": 15.0}, body.Effects[11].Params)
		assert.Equal(t, "primary", body.Effects[17].Name)
	})

	t.Run("gallery", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/gallery/cat_tint.jpg", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "jpeg bytes", w.Body.String())
	})

	t.Run("healthz", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestBatch_InvalidQuality(t *testing.T) {
	for _, quality := range []int{0, 101} {
		err := Batch(t.TempDir(), t.TempDir(), batch.Options{Quality: quality})
		assert.ErrorContains(t, err, "invalid JPEG quality")
	}
}
