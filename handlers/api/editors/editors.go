package editors

import (
	"bytes"
	"canvas-editor/editor"
	"canvas-editor/surface/memory"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

type (
	SurfaceConfig struct {
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		BackgroundColor string `json:"backgroundColor"`
	}

	ConfigResponse struct {
		MountID string        `json:"mountId"`
		Surface SurfaceConfig `json:"surface"`
	}
)

// HandleGetConfig tells the bootstrap script which element to mount the
// editor on.
func HandleGetConfig(mountID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ConfigResponse{
			MountID: mountID,
			Surface: SurfaceConfig{
				Width:           editor.DefaultWidth,
				Height:          editor.DefaultHeight,
				BackgroundColor: editor.DefaultBackground,
			},
		})
	}
}

// HandlePreview renders a headless session holding the given number of
// default rectangles (query "rects", default 1) and returns it as PNG.
func HandlePreview() http.HandlerFunc {
	const mountID = "preview"

	return func(w http.ResponseWriter, r *http.Request) {
		count := 1
		if v := r.URL.Query().Get("rects"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || n > 64 {
				http.Error(w, "rects must be between 0 and 64", http.StatusBadRequest)
				return
			}
			count = n
		}

		backend := memory.NewBackend(mountID)
		ed, err := editor.New(backend, mountID, editor.WithSink(editor.Discard))
		if err != nil {
			logrus.WithField("error", err).Error("Failed to start preview session")
			http.Error(w, "Failed to render preview", http.StatusInternalServerError)
			return
		}
		for i := 0; i < count; i++ {
			if _, err := ed.AddRectangle(); err != nil {
				logrus.WithField("error", err).Error("Failed to add preview rectangle")
				http.Error(w, "Failed to render preview", http.StatusInternalServerError)
				return
			}
		}
		// An empty preview still needs one pass to paint the background.
		surface, _ := backend.Surface(mountID)
		if count == 0 {
			if err := surface.RequestRender(); err != nil {
				logrus.WithField("error", err).Error("Failed to render preview")
				http.Error(w, "Failed to render preview", http.StatusInternalServerError)
				return
			}
		}

		var buf bytes.Buffer
		if err := surface.EncodePNG(&buf); err != nil {
			logrus.WithField("error", err).Error("Failed to encode preview")
			http.Error(w, "Failed to render preview", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logrus.WithError(err).Warn("Failed to write preview")
		}
	}
}
