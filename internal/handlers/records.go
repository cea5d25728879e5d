package handlers

import (
	"context"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/models"
)

// RecordsLister defines the interface that the record service must implement.
type RecordsLister interface {
	List(ctx context.Context, userID int64) ([]models.RecordDB, error)
}

// NewListRecordsHandler returns an HTTP handler listing the saved
// records of the caller's child.
// @Summary List saved records
// @Tags records
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RecordDB "Records of the caller's child"
// @Failure 400 {object} map[string]any "Caller has no child"
// @Router /records [get]
func NewListRecordsHandler(svc RecordsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUserID(w, r)
		if !ok {
			return
		}

		records, err := svc.List(r.Context(), userID)
		if err != nil {
			httperr.Write(w, err)
			return
		}

		respondJSON(w, http.StatusOK, records)
	}
}
