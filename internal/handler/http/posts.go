package http

import (
	"net/http"

	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// getPost resolves {key} as an id when it is uuid-shaped, as a slug otherwise.
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := utils.DecodeJSONStrict(r.Body, &post); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	created, err := h.services.PostService.CreatePost(r.Context(), post)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	var update models.PostUpdate
	if err := utils.DecodeJSONStrict(r.Body, &update); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	updated, err := h.services.PostService.UpdatePost(r.Context(), chi.URLParam(r, "key"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PostService.DeletePost(r.Context(), chi.URLParam(r, "key")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
