package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/storage"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageHandler accepts listing photo uploads and serves them back.
type ImageHandler struct {
	store        storage.ImageStore
	maxSizeBytes int64
}

func NewImageHandler(store storage.ImageStore, maxSizeBytes int64) *ImageHandler {
	if maxSizeBytes <= 0 {
		maxSizeBytes = 10 << 20
	}
	return &ImageHandler{store: store, maxSizeBytes: maxSizeBytes}
}

// Upload stores the request body as a new image and returns the URL to
// put in the listing's image_url field.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	if principal.Role != domain.RoleLandlord && principal.Role != domain.RoleMaster {
		respondError(w, domain.ErrPermissionDenied)
		return
	}

	ext, ok := imageExtensions[r.Header.Get("Content-Type")]
	if !ok {
		respondError(w, domain.NewValidationError("content-type", "must be an image type"))
		return
	}

	key := uuid.NewString() + ext
	body := http.MaxBytesReader(w, r.Body, h.maxSizeBytes)
	if err := h.store.Save(key, body); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"key":       key,
		"image_url": fmt.Sprintf("/v1/images/%s", key),
	})
}

func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	file, err := h.store.Open(key)
	if err != nil {
		respondError(w, domain.ErrNotFound)
		return
	}
	defer file.Close()

	for contentType, ext := range imageExtensions {
		if len(key) > len(ext) && key[len(key)-len(ext):] == ext {
			w.Header().Set("Content-Type", contentType)
			break
		}
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
