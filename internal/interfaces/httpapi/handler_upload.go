package httpapi

import (
	"fmt"
	"net/http"

	"github.com/splcricket/auction-hall/internal/usecase"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing; larger
// payloads spill to temp files before the object-store size check applies.
const maxUploadMemory = 8 << 20

// folderByUploadKind maps the public upload kinds to object-store folders.
var folderByUploadKind = map[string]string{
	"player-photo": "player-photos",
	"team-logo":    "team-logos",
}

func (h *Handler) UploadAsset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadAsset")
	defer span.End()

	if h.uploader == nil {
		writeError(ctx, w, fmt.Errorf("%w: object store is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	kind := r.PathValue("kind")
	folder, ok := folderByUploadKind[kind]
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown upload kind %q", usecase.ErrInvalidInput, kind))
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: file part is required: %v", usecase.ErrInvalidInput, err))
		return
	}
	defer file.Close()

	result, err := h.uploader.Upload(ctx, folder, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.WarnContext(ctx, "upload asset failed", "folder", folder, "filename", header.Filename, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, uploadResultToDTO(result))
}
