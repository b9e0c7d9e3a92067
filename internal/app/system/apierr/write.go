package apierr

import (
	"encoding/json"
	"net/http"
)

// body is the JSON shape of every error response.
type body struct {
	Error   Kind   `json:"error"`
	Message string `json:"message"`
}

// Write sends err as a JSON error response.
func Write(w http.ResponseWriter, err error) {
	e := From(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status())
	_ = json.NewEncoder(w).Encode(body{Error: e.Kind, Message: e.PublicMessage()})
}
