package handlers

import (
	"context"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
)

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID int64) (*models.UserDB, error)
}

// NewMeHandler returns an HTTP handler for reading the caller's profile.
// @Summary Authenticated user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB "Caller's user row"
// @Failure 401 {object} map[string]any "Missing or invalid token"
// @Failure 404 {object} map[string]any "User not found"
// @Router /auth/me [get]
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}
