package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/utils"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the token subject in the request context under [utils.SubjectCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and never calls
// next in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, has a bad signature, or cannot be parsed.
//
// The response body is the same generic detail in every case.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = logger.FromContext(ctx).WithStr("subject", token.Subject).WithContext(ctx)
		ctx = context.WithValue(ctx, utils.SubjectCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns the following
// sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the scheme is not Bearer or the
//     token part is missing entirely.
//   - [ErrEmptyToken] if the token part consists only of spaces.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
