package assets

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".js":   "application/javascript",
	".css":  "text/css",
	".wasm": "application/wasm",
	".png":  "image/png",
}

// HandleUI serves the host page from fsys. Paths without an extension fall
// back to index.html.
func HandleUI(fsys fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" || name == "." {
			name = "index.html"
		}

		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) && path.Ext(name) == "" {
			name = "index.html"
			data, err = fs.ReadFile(fsys, name)
		}
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				http.NotFound(w, r)
				return
			}
			logrus.WithField("error", err).Error("Failed to read asset")
			http.Error(w, "Error reading file", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType(name, data))
		if _, err := w.Write(data); err != nil {
			logrus.WithError(err).Warn("Failed to write asset")
		}
	}
}

// HandleWasm serves the compiled editor module and wasm_exec.js from dir.
// Directories are never listed. The route prefix must be stripped before this
// handler.
func HandleWasm(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			http.Error(w, "WASM directory not configured", http.StatusNotFound)
			return
		}
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path))))
		if err != nil || info.IsDir() {
			logrus.WithField("path", r.URL.Path).Debug("WASM asset not found")
			http.NotFound(w, r)
			return
		}
		if ct, ok := contentTypes[path.Ext(r.URL.Path)]; ok {
			w.Header().Set("Content-Type", ct)
		}
		files.ServeHTTP(w, r)
	})
}

func contentType(name string, data []byte) string {
	if ct, ok := contentTypes[path.Ext(name)]; ok {
		return ct
	}
	return http.DetectContentType(data)
}
