package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// RecordSubmitter defines the interface that the record service must implement.
type RecordSubmitter interface {
	Submit(ctx context.Context, boxID string, weight, length float64) (*models.WeightRecordDB, error)
}

// SubmitRecordRequest represents the JSON body a box sends
// swagger:model SubmitRecordRequest
type SubmitRecordRequest struct {
	// Device identifier
	// required: true
	// example: box-0042
	BoxID string `json:"box_id"`

	// Weight in kilograms
	// required: true
	// example: 4.2
	Weight *float64 `json:"weight"`

	// Length in centimeters
	// required: true
	// example: 53.5
	Length *float64 `json:"length"`
}

// Validate reports every violated field.
func (req *SubmitRecordRequest) Validate() error {
	v := validation.New()
	v.Required("box_id", req.BoxID)
	v.RequiredNumber("weight", req.Weight)
	v.RequiredNumber("length", req.Length)
	return v.Err()
}

// NewSubmitRecordHandler returns an HTTP handler for box submissions.
// The endpoint is unauthenticated: boxes carry no credentials.
// @Summary Submit a measurement
// @Tags records
// @Accept json
// @Produce json
// @Param submitRecordRequest body handlers.SubmitRecordRequest true "Measurement"
// @Success 200 {object} models.WeightRecordDB "Stored measurement, stamped with server time"
// @Router /record [post]
func NewSubmitRecordHandler(svc RecordSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, errInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			httperr.Write(w, err)
			return
		}

		record, err := svc.Submit(r.Context(), req.BoxID, *req.Weight, *req.Length)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}
