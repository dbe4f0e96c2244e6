package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/utils"
	"github.com/MKhiriev/item-api/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against a static [CredentialStore] and issues
// stateless HMAC-SHA256 JWTs. No session state is kept on the server.
type authService struct {
	// credentials is the fixed username → password table checked at login.
	credentials CredentialStore

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and verifying tokens.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over the given credential
// store, populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentials CredentialStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentials:   credentials,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Login authenticates a credential pair and issues a token for its username.
//
// Returns ErrInvalidCredentials for an unknown username, a wrong password or
// empty input, without telling these cases apart.
func (a *authService) Login(ctx context.Context, credential models.Credential) (models.Token, error) {
	log := logger.FromContext(ctx)

	if !a.credentials.Verify(credential.Username, credential.Password) {
		log.Warn().Str("func", "authService.Login").Msg("login rejected")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.CreateToken(ctx, credential.Username)
}

// CreateToken issues a signed JWT for subject.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
