// Package handlers exposes the dashboard services over a JSON HTTP API
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}
	writeJSON(w, status, map[string]string{"error": userMsg})
}

// decodeJSON reads the request body into v, rejecting unknown fields
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
