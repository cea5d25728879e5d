package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, childName, phoneNumber, email, password string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Parent name
	// required: true
	// example: Siti Rahma
	Name string `json:"name"`

	// Name of the first child, created together with the account
	// required: true
	// example: Budi
	ChildName string `json:"child_name"`

	// Phone number, usable as a login key
	// required: true
	// example: 081234567890
	PhoneNumber string `json:"phone_number"`

	// Email, usable as a login key
	// required: true
	// example: siti@example.com
	Email string `json:"email"`

	// Password, minimum 6 characters
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// Validate reports every violated field.
func (req *RegisterRequest) Validate() error {
	v := validation.New()
	v.Required("name", req.Name)
	v.MaxLen("name", &req.Name, 100)
	v.Required("child_name", req.ChildName)
	v.MaxLen("child_name", &req.ChildName, 100)
	v.Required("phone_number", req.PhoneNumber)
	v.MaxLen("phone_number", &req.PhoneNumber, 20)
	v.Email("email", req.Email)
	v.MinLen("password", &req.Password, 6)
	return v.Err()
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account and their first child in one transaction. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} models.UserDB "Created user"
// @Failure 400 {object} map[string]any "Email already registered / invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, errInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			httperr.Write(w, err)
			return
		}

		user, err := svc.Register(r.Context(), req.Name, req.ChildName, req.PhoneNumber, req.Email, req.Password)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}
