package http

import (
	"net/http"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
)

// login exchanges administrator credentials for a session token. The token
// is returned both in the body and in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSONStrict(r.Body, &credentials); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	admin, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("admin_id", admin.ID).Msg("admin logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}

// updateCredentials rotates the administrator username and/or password.
// Sessions issued before the rotation stop being accepted.
func (h *Handler) updateCredentials(w http.ResponseWriter, r *http.Request) {
	var update models.CredentialsUpdate
	if err := utils.DecodeJSONStrict(r.Body, &update); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	if err := h.services.AuthService.RotateCredentials(r.Context(), update); err != nil {
		writeError(w, r, err)
		return
	}

	adminID, _ := utils.GetAdminIDFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("admin_id", adminID).Msg("admin credentials rotated")

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
