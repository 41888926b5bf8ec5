package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/portfolio-server/internal/service"
	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
)

// uploadFormField is the multipart field carrying the image.
const uploadFormField = "file"

// multipartMemory is the part of a multipart form kept in memory, the rest
// is spooled to temporary files.
const multipartMemory = 1 << 20

// multipartOverhead is allowed on top of the image limit for boundaries,
// part headers and other form fields.
const multipartOverhead = 64 << 10

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.services.UploadService.MaxBytes()+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, fmt.Errorf("%w: %w: request exceeds %d bytes", service.ErrValidation, service.ErrImageTooLarge, tooLarge.Limit))
			return
		}
		writeBadRequest(w, r, fmt.Errorf("error parsing multipart form: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeError(w, r, service.ErrNoFileUploaded)
			return
		}
		writeBadRequest(w, r, err)
		return
	}
	defer file.Close()

	result, err := h.services.UploadService.UploadImage(r.Context(), models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
