package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/service"
	"github.com/MKhiriev/item-api/internal/store"
	"github.com/MKhiriev/item-api/internal/utils"
	"github.com/MKhiriev/item-api/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidItemID:              http.StatusBadRequest,
	ErrItemIDRequired:             http.StatusBadRequest,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidQueryParam:          http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrItemNotFound:            http.StatusNotFound,
	service.ErrInvalidItem:             http.StatusBadRequest,

	store.ErrItemNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError never exposes the error text, except for the login
// rejection whose message is identical for every cause.
func detailFromError(err error, status int) string {
	if errors.Is(err, service.ErrInvalidCredentials) {
		return service.ErrInvalidCredentials.Error()
	}
	return http.StatusText(status)
}

// writeError logs err and answers with the mapped status and a generic body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeDetail(w, status, detailFromError(err, status))
}

// writeDetail sends the generic error body. ErrorResponse always encodes,
// so only a failed write to the client can be lost here.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
