package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the error envelope. Details lists the individual
// problems when the error accumulated several, as config validation does.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeErr(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			resp.Details = append(resp.Details, e.Error())
		}
	}
	writeJSON(w, status, resp)
}
