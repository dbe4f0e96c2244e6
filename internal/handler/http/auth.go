package http

import (
	"net/http"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/models"
)

// login exchanges a username/password pair for a bearer token. Unknown
// usernames and wrong passwords produce the same 401 response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credential models.Credential
	if err := decodeJSON(r, &credential); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credential)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", credential.Username).Msg("user successfully logged in")

	respondJSON(w, r, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenType,
	}, http.StatusOK)
}
