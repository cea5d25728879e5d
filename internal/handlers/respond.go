package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/middlewares"
)

// errInvalidBody is returned for bodies that are not valid JSON at all.
var errInvalidBody = httperr.BadRequest("Invalid request body")

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// authedUserID reads the user id set by the auth middleware. A missing
// id on a protected route means the route was wired without the
// middleware; it is reported as a 401 rather than panicking.
func authedUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.Unauthorized("authentication required"))
		return 0, false
	}
	return userID, true
}
