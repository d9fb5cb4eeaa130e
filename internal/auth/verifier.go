package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"jobhub/internal/config"
)

// Identity is the claim set the application trusts from the external
// provider. The provider issues the id; the application never mints one.
type Identity struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// Verifier checks a raw bearer token and extracts the identity behind it.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// OIDCVerifier validates ID tokens against the configured OIDC issuer.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier performs issuer discovery and builds the token verifier.
func NewOIDCVerifier(ctx context.Context, cfg config.OIDCConfig) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("discover oidc issuer: %w", err)
	}

	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

type idTokenClaims struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// Verify parses and validates the raw ID token and maps its claims onto an
// Identity.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	if rawToken == "" {
		return nil, errors.New("token is empty")
	}

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	var claims idTokenClaims
	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}

	return &Identity{
		ID:              token.Subject,
		Email:           claims.Email,
		FirstName:       claims.GivenName,
		LastName:        claims.FamilyName,
		ProfileImageURL: claims.Picture,
	}, nil
}
