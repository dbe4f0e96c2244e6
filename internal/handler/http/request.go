package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/utils"
	"github.com/MKhiriev/item-api/models"
)

// decodeJSON reads exactly one JSON value from the request body. Anything
// after it other than whitespace is rejected.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}
	return nil
}

// itemRequest is the wire form of models.Item. Pointers tell an absent
// field apart from its zero value: Name, Price, Company and Remarks must
// all be present, ID is checked by the caller.
type itemRequest struct {
	ID      *int64  `json:"ID"`
	Name    *string `json:"Name"`
	Price   *int64  `json:"Price"`
	Company *string `json:"Company"`
	Remarks *string `json:"Remarks"`
}

func decodeItem(r *http.Request) (models.Item, error) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		return models.Item{}, err
	}

	switch {
	case req.Name == nil:
		return models.Item{}, fmt.Errorf("%w: missing field %q", ErrInvalidJSON, "Name")
	case req.Price == nil:
		return models.Item{}, fmt.Errorf("%w: missing field %q", ErrInvalidJSON, "Price")
	case req.Company == nil:
		return models.Item{}, fmt.Errorf("%w: missing field %q", ErrInvalidJSON, "Company")
	case req.Remarks == nil:
		return models.Item{}, fmt.Errorf("%w: missing field %q", ErrInvalidJSON, "Remarks")
	}

	item := models.Item{
		Name:    *req.Name,
		Price:   *req.Price,
		Company: *req.Company,
		Remarks: *req.Remarks,
	}
	if req.ID != nil {
		item.ID = *req.ID
	}
	return item, nil
}

// respondJSON writes data and logs a response that could not be encoded
// or delivered.
func respondJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("failed to write response")
	}
}
