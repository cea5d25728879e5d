package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// ChildrenLister defines the interface that the child service must implement.
type ChildrenLister interface {
	List(ctx context.Context, userID int64) ([]models.ChildDB, error)
}

// ChildCreator defines the interface that the child service must implement.
type ChildCreator interface {
	Create(ctx context.Context, userID int64, name string, birthDate *models.DateTime, birthPlace *string) (*models.ChildDB, error)
}

// CreateChildRequest represents the JSON body for creating a child
// swagger:model CreateChildRequest
type CreateChildRequest struct {
	// Child name
	// required: true
	// example: Budi
	Name string `json:"name"`

	// Birth date, RFC 3339 or YYYY-MM-DD; null when omitted
	// example: 2024-06-01
	BirthDate *models.DateTime `json:"birth_date"`

	// Birth place; null when omitted
	// example: Bandung
	BirthPlace *string `json:"birth_place"`
}

// Validate reports every violated field.
func (req *CreateChildRequest) Validate() error {
	v := validation.New()
	v.Required("name", req.Name)
	v.MaxLen("name", &req.Name, 100)
	return v.Err()
}

// NewListChildrenHandler returns an HTTP handler listing the caller's children.
// @Summary List children
// @Tags children
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ChildDB "Children owned by the caller"
// @Failure 404 {object} map[string]any "User not found"
// @Router /children [get]
func NewListChildrenHandler(svc ChildrenLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		children, err := svc.List(r.Context(), userID)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, children)
	}
}

// NewCreateChildHandler returns an HTTP handler creating a child.
// @Summary Create a child
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createChildRequest body handlers.CreateChildRequest true "Child to create"
// @Success 200 {object} models.ChildDB "Created child"
// @Failure 404 {object} map[string]any "User not found"
// @Router /children [post]
func NewCreateChildHandler(svc ChildCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		var req CreateChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, errInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			httperr.Write(w, err)
			return
		}

		child, err := svc.Create(r.Context(), userID, req.Name, req.BirthDate, req.BirthPlace)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, child)
	}
}
