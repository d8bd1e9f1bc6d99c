package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"camrent-backend/internal/storage"

	"github.com/gorilla/mux"
)

type ImageHandler struct {
	images *storage.ImageStore
}

func NewImageHandler(images *storage.ImageStore) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload stores an equipment image from a multipart form and returns the key
// to reference it from an equipment record.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	key := h.images.NewKey(header.Filename)
	if err := h.images.Save(key, file); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"key": key,
		"url": h.images.URL(key),
	})
}

func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	reader, err := h.images.Open(key)
	if err != nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	defer reader.Close()

	if ctype := mime.TypeByExtension(filepath.Ext(key)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	w.WriteHeader(http.StatusOK)
	io.Copy(w, reader)
}
