package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/pos-lite/models"
)

// WriteJSON marshals data and writes it with statusCode and a JSON content
// type. On marshal failure it answers 500 and returns the wrapped error.
//
//	WriteJSON(w, models.StatusResponse{Status: "online"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": msg} with statusCode.
func WriteError(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode)
}
