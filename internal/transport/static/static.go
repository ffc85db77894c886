// Package static serves the bundled web UI. It is the fallback for any
// request no API route matched; a miss here becomes the JSON 404.
package static

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type Handler struct {
	root   string
	logger *slog.Logger
}

func NewHandler(root string, logger *slog.Logger) *Handler {
	return &Handler{root: root, logger: logger}
}

// TryServe writes the requested file and returns true, or returns false
// without touching the response when no file matches. Paths are cleaned and
// re-checked against the asset root so traversal cannot escape it.
func (h *Handler) TryServe(w http.ResponseWriter, r *http.Request) bool {
	requested := r.URL.Path
	if requested == "/" || requested == "" {
		requested = "/index.html"
	}

	// Clean with a leading slash so ".." segments cannot climb above root.
	cleaned := path.Clean("/" + requested)
	full := filepath.Join(h.root, filepath.FromSlash(cleaned))

	absRoot, err := filepath.Abs(h.root)
	if err != nil {
		return false
	}
	absFull, err := filepath.Abs(full)
	if err != nil {
		return false
	}
	if absFull != absRoot && !strings.HasPrefix(absFull, absRoot+string(filepath.Separator)) {
		h.logger.Warn("rejected path outside asset root", "path", r.URL.Path)
		return false
	}

	info, err := os.Stat(absFull)
	if err != nil || info.IsDir() {
		return false
	}

	file, err := os.Open(absFull)
	if err != nil {
		h.logger.Error("failed to open static file", "error", err, "path", absFull)
		return false
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(absFull))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		h.logger.Error("failed to serve static file", "error", err, "path", absFull)
	}
	return true
}
