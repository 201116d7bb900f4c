package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SAndrade100/mvp-test/internal/catalog"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func writeValidationErrors(w http.ResponseWriter, errs ...catalog.ValidationError) {
	writeJSON(w, http.StatusBadRequest, errs)
}

// queryInt reads an optional integer query parameter, returning def when the
// parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &catalog.ValidationError{Field: name, Description: "must be an integer"}
	}
	return v, nil
}

// queryFloat reads an optional float query parameter, returning nil when the
// parameter is absent.
func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &catalog.ValidationError{Field: name, Description: "must be a number"}
	}
	return &v, nil
}

// queryBool reads an optional boolean query parameter, treating absence as
// false.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &catalog.ValidationError{Field: name, Description: "must be a boolean"}
	}
	return v, nil
}
