package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// RecordSaver defines the interface that the record service must implement.
type RecordSaver interface {
	Save(ctx context.Context, userID, recordID int64) (*models.RecordDB, error)
}

// SaveRecordRequest represents the JSON body for claiming a measurement
// swagger:model SaveRecordRequest
type SaveRecordRequest struct {
	// Id of a previously submitted measurement
	// required: true
	// example: 17
	RecordID *int64 `json:"record_id"`
}

// Validate reports every violated field.
func (req *SaveRecordRequest) Validate() error {
	v := validation.New()
	v.RequiredInt("record_id", req.RecordID)
	return v.Err()
}

// NewSaveRecordHandler returns an HTTP handler claiming a box
// measurement into the caller's child.
// @Summary Save a measurement to the caller's child
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param saveRecordRequest body handlers.SaveRecordRequest true "Measurement to claim"
// @Success 200 {object} models.RecordDB "Saved record"
// @Failure 400 {object} map[string]any "No child / invalid record id"
// @Router /record_save [post]
func NewSaveRecordHandler(svc RecordSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		var req SaveRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, errInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			httperr.Write(w, err)
			return
		}

		record, err := svc.Save(r.Context(), userID, *req.RecordID)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}
