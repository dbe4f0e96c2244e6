package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// internalErrorBody is sent when a response value cannot be encoded.
var internalErrorBody = []byte(`{"detail":"Internal Server Error"}`)

// WriteJSON encodes data and writes it with statusCode and a JSON content
// type. When data cannot be encoded the client receives a 500 with a generic
// JSON body. Encoding and write errors are returned for the caller to log.
//
//	WriteJSON(w, item, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Detail: "Not Found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	w.Header().Set("Content-Type", contentTypeJSON)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return 0, fmt.Errorf("encoding response body: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteEmpty answers with statusCode and no body.
func WriteEmpty(w http.ResponseWriter, statusCode int) {
	w.Header().Del("Content-Type")
	w.WriteHeader(statusCode)
}
