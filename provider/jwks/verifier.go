// Package jwks implements the verification collaborator by validating the
// stored token offline against a JWK Set, without a remote introspection
// round trip.
package jwks

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	authstate "github.com/goliatone/go-authstate"
	goerrors "github.com/goliatone/go-errors"
)

// Config holds the JWKS verifier configuration.
type Config struct {
	// JWKSURL is the JWK Set endpoint of the token issuer.
	JWKSURL string

	// RefreshInterval controls JWKS cache refresh. Defaults to 1 hour.
	RefreshInterval time.Duration

	// Keyfunc overrides JWKS fetching entirely, mainly for tests and
	// static-key setups.
	Keyfunc jwt.Keyfunc

	// Methods restricts accepted signing algorithms. Defaults to RS256.
	Methods []string
}

// Verifier implements authstate.VerificationClient.
type Verifier struct {
	config  Config
	keyfunc jwt.Keyfunc
}

// New creates a JWKS-backed verifier.
func New(cfg Config) (*Verifier, error) {
	if len(cfg.Methods) == 0 {
		cfg.Methods = []string{"RS256"}
	}

	kf := cfg.Keyfunc
	if kf == nil {
		if cfg.JWKSURL == "" {
			return nil, fmt.Errorf("jwks: JWKS URL or Keyfunc is required")
		}

		refresh := cfg.RefreshInterval
		if refresh == 0 {
			refresh = time.Hour
		}

		set, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
			RefreshInterval: refresh,
		})
		if err != nil {
			return nil, fmt.Errorf("jwks: failed to load JWK Set: %w", err)
		}
		kf = set.Keyfunc
	}

	return &Verifier{
		config:  cfg,
		keyfunc: kf,
	}, nil
}

// GetTokenInfo implements authstate.VerificationClient. Expired or
// badly-signed tokens collapse into the invalid-credential service code so
// the resolver treats them as unauthenticated rather than as errors.
func (v *Verifier) GetTokenInfo(ctx context.Context, token string) (*authstate.TokenInfo, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.keyfunc, jwt.WithValidMethods(v.config.Methods))
	if err != nil {
		return nil, normalizeValidationError(err)
	}
	if !parsed.Valid {
		return nil, authstate.NewServiceError(authstate.CodeTokenInvalid, "token is not valid")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		if user, ok := claims["user"].(string); ok && user != "" {
			subject = user
		}
	}
	if subject == "" {
		return nil, nil
	}

	fields := make(map[string]any, len(claims))
	for k, val := range claims {
		fields[k] = val
	}

	return &authstate.TokenInfo{User: subject, Fields: fields}, nil
}

func normalizeValidationError(err error) error {
	switch {
	case stderrors.Is(err, jwt.ErrTokenExpired),
		stderrors.Is(err, jwt.ErrTokenNotValidYet),
		stderrors.Is(err, jwt.ErrTokenSignatureInvalid):
		return authstate.NewServiceError(authstate.CodeTokenInvalid, "token is expired or invalid")
	case stderrors.Is(err, jwt.ErrTokenMalformed):
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "token is malformed")
	default:
		return goerrors.Wrap(err, goerrors.CategoryOperation, "token validation failed")
	}
}

var _ authstate.VerificationClient = (*Verifier)(nil)
