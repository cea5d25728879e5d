package handlers

import (
	"context"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// LatestRecordGetter defines the interface that the record service must implement.
type LatestRecordGetter interface {
	Latest(ctx context.Context, boxID string) (*models.WeightRecordDB, error)
}

// NewLatestRecordHandler returns an HTTP handler for a box's newest
// measurement. The body is null when the box has never reported.
// @Summary Latest measurement for a box
// @Tags records
// @Produce json
// @Param box_id query string true "Device identifier"
// @Success 200 {object} models.WeightRecordDB "Newest measurement, or null"
// @Router /record_latest [get]
func NewLatestRecordHandler(svc LatestRecordGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boxID := r.URL.Query().Get("box_id")

		v := validation.New()
		v.Required("box_id", boxID)
		if err := v.Err(); err != nil {
			httperr.Write(w, err)
			return
		}

		record, err := svc.Latest(r.Context(), boxID)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}
