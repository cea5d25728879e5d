package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, key, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Registered email or phone number
	// required: true
	// example: siti@example.com
	Key string `json:"key"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// Validate reports every violated field.
func (req *LoginRequest) Validate() error {
	v := validation.New()
	v.Required("key", req.Key)
	v.Required("password", req.Password)
	return v.Err()
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Signed token, valid for 7 days
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email or phone number and return a token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token returned"
// @Failure 400 {object} map[string]any "Wrong account and password combination"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, errInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			httperr.Write(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Key, req.Password)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}
