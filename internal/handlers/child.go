package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
	"github.com/apriyandi/timbangan-api/internal/services"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// ChildGetter defines the interface that the child service must implement.
type ChildGetter interface {
	Get(ctx context.Context, userID, childID int64) (*models.ChildDetail, error)
}

// ChildUpdater defines the interface that the child service must implement.
type ChildUpdater interface {
	Update(ctx context.Context, userID, childID int64, fields map[string]any) (*models.ChildDB, error)
}

// ChildDeleter defines the interface that the child service must implement.
type ChildDeleter interface {
	Delete(ctx context.Context, userID, childID int64) error
}

// UpdateChildRequest represents the JSON body for a partial child update
// swagger:model UpdateChildRequest
type UpdateChildRequest struct {
	// example: Budi
	Name *string `json:"name"`
	// example: 2024-06-01
	BirthDate *models.DateTime `json:"birth_date"`
	// example: Bandung
	BirthPlace *string `json:"birth_place"`
	// Weight in kilograms
	// example: 4.2
	Weight *float64 `json:"weight"`
	// Length in centimeters
	// example: 53.5
	Length *float64 `json:"length"`
	// example: 2024-08-01T09:30:00Z
	WeightRecordedAt *models.DateTime `json:"weight_recorded_at"`
}

// Validate reports every violated field.
func (req *UpdateChildRequest) Validate() error {
	v := validation.New()
	v.MaxLen("name", req.Name, 100)
	v.Min("weight", req.Weight, 0)
	v.Min("length", req.Length, 0)
	return v.Err()
}

// fields maps the present fields to their column values.
func (req *UpdateChildRequest) fields() map[string]any {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.BirthDate != nil {
		fields["birth_date"] = *req.BirthDate
	}
	if req.BirthPlace != nil {
		fields["birth_place"] = *req.BirthPlace
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.Length != nil {
		fields["length"] = *req.Length
	}
	if req.WeightRecordedAt != nil {
		fields["weight_recorded_at"] = *req.WeightRecordedAt
	}
	return fields
}

// childIDFromRequest parses the {id} path segment. An id that cannot
// be a child id is reported the same way as one that does not exist.
func childIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, services.ErrChildNotFound
	}
	return id, nil
}

// NewGetChildHandler returns an HTTP handler reading one owned child.
// @Summary Get a child
// @Tags children
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID"
// @Success 200 {object} models.ChildDetail "Child with parent attached"
// @Failure 404 {object} map[string]any "Child not found or not owned"
// @Router /children/{id} [get]
func NewGetChildHandler(svc ChildGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		childID, err := childIDFromRequest(r)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		child, err := svc.Get(r.Context(), userID, childID)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, child)
	}
}

// NewUpdateChildHandler returns an HTTP handler for partial child updates.
// @Summary Update a child
// @Description Partial update. An empty body is a no-op that still returns the current row.
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID"
// @Param updateChildRequest body handlers.UpdateChildRequest true "Fields to change"
// @Success 200 {object} models.ChildDB "Updated child row"
// @Failure 404 {object} map[string]any "Child not found or not owned"
// @Router /children/{id} [post]
func NewUpdateChildHandler(svc ChildUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		childID, err := childIDFromRequest(r)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		var req UpdateChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, errInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			httperr.Write(w, err)
			return
		}

		child, err := svc.Update(r.Context(), userID, childID, req.fields())
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, child)
	}
}

// NewDeleteChildHandler returns an HTTP handler deleting an owned child.
// @Summary Delete a child
// @Tags children
// @Security BearerAuth
// @Param id path int true "Child ID"
// @Success 204 "Child deleted"
// @Failure 404 {object} map[string]any "Child not found or not owned"
// @Router /children/{id} [delete]
func NewDeleteChildHandler(svc ChildDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		childID, err := childIDFromRequest(r)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID, childID); err != nil {
			httperr.Write(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
