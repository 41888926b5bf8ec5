package http

import (
	"net/http"

	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.services.ProjectService.GetProject(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := utils.DecodeJSONStrict(r.Body, &project); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	created, err := h.services.ProjectService.CreateProject(r.Context(), project)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateProject and deleteProject address projects by slug only.
func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var update models.ProjectUpdate
	if err := utils.DecodeJSONStrict(r.Body, &update); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	updated, err := h.services.ProjectService.UpdateProject(r.Context(), chi.URLParam(r, "slug"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProjectService.DeleteProject(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
