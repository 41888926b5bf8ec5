package http

import (
	"net/http"

	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
)

func (h *Handler) getResume(w http.ResponseWriter, r *http.Request) {
	resume, err := h.services.ResumeService.GetResume(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resume, http.StatusOK)
}

// updateResume replaces the top-level resume fields present in the body.
func (h *Handler) updateResume(w http.ResponseWriter, r *http.Request) {
	var update models.ResumeUpdate
	if err := utils.DecodeJSONStrict(r.Body, &update); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	resume, err := h.services.ResumeService.UpdateResume(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resume, http.StatusOK)
}
