package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, userID int64, name *string) (*models.UserDB, error)
}

// UpdateProfileRequest represents the JSON body for a partial profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// New display name; absent fields stay unchanged
	// example: Siti Rahma
	Name *string `json:"name"`
}

// Validate reports every violated field.
func (req *UpdateProfileRequest) Validate() error {
	v := validation.New()
	v.MaxLen("name", req.Name, 100)
	return v.Err()
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update profile
// @Description Partial update of the caller's profile. An empty body is a no-op that still returns the current row.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.UserDB "Updated user row"
// @Failure 404 {object} map[string]any "User not found"
// @Router /profile [post]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, errInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			httperr.Write(w, err)
			return
		}

		user, err := svc.Update(r.Context(), userID, req.Name)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}
