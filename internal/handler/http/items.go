package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/utils"
	"github.com/MKhiriev/item-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondJSON(w, r, item, http.StatusOK)
}

// listItems returns the items of {company}, or every item when the "all"
// query parameter is true.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")

	all, err := parseBoolQuery(r, "all")
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.ItemService.ListItems(r.Context(), company, all)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	respondJSON(w, r, items, http.StatusOK)
}

// createItem ignores any ID sent by the client.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	item, err := decodeItem(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	item.ID = 0

	created, err := h.services.ItemService.CreateItem(r.Context(), item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", created.ID).Msg("item created")
	respondJSON(w, r, created, http.StatusOK)
}

// updateItem answers 200 with an empty body whether or not the item existed.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	item, err := decodeItem(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if item.ID <= 0 {
		writeError(w, r, ErrItemIDRequired)
		return
	}

	updated, err := h.services.ItemService.UpdateItem(r.Context(), item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", item.ID).Bool("updated", updated).Send()
	utils.WriteEmpty(w, http.StatusOK)
}

// deleteItem answers 200 with an empty body whether or not the item existed.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.ItemService.DeleteItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", id).Bool("deleted", deleted).Send()
	utils.WriteEmpty(w, http.StatusOK)
}

func parseItemID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidItemID, raw)
	}
	return id, nil
}

// parseBoolQuery reads an optional boolean query parameter. A missing
// parameter is false. Besides the strconv forms it accepts yes/no and on/off.
func parseBoolQuery(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}

	switch strings.ToLower(raw) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return value, nil
}
