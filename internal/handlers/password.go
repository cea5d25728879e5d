package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// PasswordChanger defines the interface that the profile service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID int64, password string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// New password, minimum 6 characters
	// required: true
	// example: secret456
	Password string `json:"password"`
}

// Validate reports every violated field.
func (req *ChangePasswordRequest) Validate() error {
	v := validation.New()
	v.MinLen("password", &req.Password, 6)
	return v.Err()
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Tags profile
// @Accept json
// @Security BearerAuth
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "New password"
// @Success 204 "Password changed"
// @Failure 404 {object} map[string]any "User not found"
// @Router /profile/password [post]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, errInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			httperr.Write(w, err)
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.Password); err != nil {
			httperr.Write(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
