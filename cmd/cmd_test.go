package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ziadkadry99/gallery/internal/config"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "gallery "+Version+"\n", out.String())
}

func TestBuildServerWiresRoutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "output.css"), []byte("body{}"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Title = "Wired"
	cfg.ImageBaseURL = "https://example.com/img"
	cfg.StaticDir = dir

	srv, err := buildServer(cfg, zap.NewNop())
	require.NoError(t, err)

	for _, tc := range []struct {
		target string
		status int
		want   string
	}{
		{"/", http.StatusOK, "<title>Wired</title>"},
		{"/more", http.StatusOK, "https://example.com/img?"},
		{"/modal/open?url=images%3F10&dir=left", http.StatusOK, `id="modal-content-left"`},
		{"/modal/open", http.StatusBadRequest, "invalid image reference"},
		{"/static/output.css", http.StatusOK, "body{}"},
		{"/healthz", http.StatusOK, `"ok"`},
	} {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		assert.Equal(t, tc.status, w.Code, tc.target)
		assert.True(t, strings.Contains(w.Body.String(), tc.want), "%s: body missing %q", tc.target, tc.want)
	}
}
