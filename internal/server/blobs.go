package server

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/scribepipe/scribepipe/internal/blobstore"
	"github.com/scribepipe/scribepipe/internal/common"
)

// BlobHandler serves signed download URLs minted by the local store.
// The S3 backend presigns against S3 directly and never hits this.
type BlobHandler struct {
	store  *blobstore.LocalStore
	logger *slog.Logger
}

func NewBlobHandler(store *blobstore.LocalStore, logger *slog.Logger) *BlobHandler {
	return &BlobHandler{store: store, logger: logger}
}

func (h *BlobHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/blobs/")
	q := r.URL.Query()
	if err := h.store.VerifySignedRequest(path, q.Get("exp"), q.Get("sig")); err != nil {
		h.logger.Warn("blob request rejected", "path", path, "error", err)
		code := http.StatusForbidden
		if common.KindOf(err) == common.KindValidation {
			code = http.StatusBadRequest
		}
		http.Error(w, "invalid or expired link", code)
		return
	}

	rc, err := h.store.Download(r.Context(), path)
	if err != nil {
		if common.KindOf(err) == common.KindNotFound {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("blob read failed", "path", path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("blob stream interrupted", "path", path, "error", err)
	}
}
