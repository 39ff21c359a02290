// internal/store/upload.go
package store

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	apperrors "womenrisehub/internal/common/errors"
	"womenrisehub/internal/common/metrics"
)

// UploadedImage is the result of a project image upload. With a remote
// store the URLs come from the gateway; locally both are a data URL the UI
// can display directly.
type UploadedImage struct {
	StoredURL  string `json:"storedUrl"`
	PreviewURL string `json:"previewUrl"`
}

// UploadProjectImage validates and stores an image. Validation failures and
// remote upload failures are returned as errors so the caller can show a
// retry affordance; this method never panics and never partially mutates
// store state.
func (s *Store) UploadProjectImage(ctx context.Context, filename string, data []byte) (*UploadedImage, error) {
	if len(data) == 0 {
		return nil, apperrors.NewInvalidInputError("image", "file is empty")
	}
	if int64(len(data)) > s.maxUpload {
		return nil, apperrors.NewInvalidInputError("image", "file exceeds the maximum allowed size")
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.NewInvalidInputError("image", "file is not an image")
	}

	if s.remoteEnabled() {
		stored, err := s.gw.UploadImage(ctx, filename, data, contentType)
		if err != nil {
			metrics.StoreFallbacks.WithLabelValues("upload_image").Inc()
			s.log.WithError(err).Warn("remote image upload failed", nil)
			return nil, err
		}
		return &UploadedImage{StoredURL: stored, PreviewURL: stored}, nil
	}

	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return &UploadedImage{StoredURL: dataURL, PreviewURL: dataURL}, nil
}
