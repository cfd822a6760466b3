// internals/features/users/auth/service/token_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/configs"
	authHelper "aptfee_backend/internals/features/users/auth/helper"
	authRepo "aptfee_backend/internals/features/users/auth/repository"
	residentModel "aptfee_backend/internals/features/users/residents/model"
	residentRepo "aptfee_backend/internals/features/users/residents/repository"
	helper "aptfee_backend/internals/helpers"
	helperAuth "aptfee_backend/internals/helpers/auth"
)

const signingAlg = "HS512"

// SessionClaims is the payload of every issued token.
type SessionClaims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues, verifies and revokes session tokens.
// Revocation state lives in the revoked_tokens table; nothing else is stored server side.
type TokenService struct {
	DB              *gorm.DB
	SignerKey       []byte
	Issuer          string
	ValidDuration   time.Duration
	RefreshDuration time.Duration

	Now func() time.Time
}

func NewTokenService(db *gorm.DB, cfg configs.Config) *TokenService {
	return &TokenService{
		DB:              db,
		SignerKey:       []byte(cfg.JWTSignerKey),
		Issuer:          cfg.JWTIssuer,
		ValidDuration:   cfg.JWTValidDuration,
		RefreshDuration: cfg.JWTRefreshDuration,
		Now:             time.Now,
	}
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ========================== ISSUE ==========================

func (s *TokenService) Issue(r *residentModel.Resident) (string, *SessionClaims, error) {
	now := s.now()
	claims := &SessionClaims{
		Scope: helperAuth.ScopeFor(r.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   r.Email,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ValidDuration)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.SignerKey)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// ========================== VERIFY ==========================

// Verify checks, in order: parseability, expiry (reported as TokenExpired even for a
// forged token), the refresh window when isRefreshCheck is set, the signature, and revocation.
func (s *TokenService) Verify(ctx context.Context, token string, isRefreshCheck bool) (*SessionClaims, error) {
	now := s.now()

	unverified := &SessionClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, unverified); err != nil {
		return nil, helper.ErrUnauthenticated
	}
	if unverified.ExpiresAt == nil {
		return nil, helper.ErrUnauthenticated
	}
	if now.After(unverified.ExpiresAt.Time) {
		return nil, helper.ErrTokenExpired
	}
	if isRefreshCheck {
		if unverified.IssuedAt == nil || now.After(unverified.IssuedAt.Add(s.RefreshDuration)) {
			return nil, helper.ErrUnauthenticated
		}
	}

	claims := &SessionClaims{}
	parser := jwt.Parser{ValidMethods: []string{signingAlg}, SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.SignerKey, nil
	}); err != nil {
		return nil, helper.ErrUnauthenticated
	}

	if claims.ID == "" {
		return nil, helper.ErrUnauthenticated
	}
	revoked, err := authRepo.IsRevoked(ctx, s.DB, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, helper.ErrUnauthenticated
	}
	return claims, nil
}

// ========================== INTROSPECT ==========================

func (s *TokenService) Introspect(ctx context.Context, token string) bool {
	_, err := s.Verify(ctx, token, false)
	return err == nil
}

// ========================== LOGOUT ==========================

// Logout revokes a still-valid token. Tokens that fail verification need no revocation,
// so the failure is only logged.
func (s *TokenService) Logout(ctx context.Context, token string) error {
	claims, err := s.Verify(ctx, token, false)
	if err != nil {
		var ae *helper.AppError
		if errors.As(err, &ae) {
			log.Printf("[INFO] logout: token not revoked (%s)", ae.Message)
			return nil
		}
		return err
	}
	if _, err := authRepo.Revoke(ctx, s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// ========================== REFRESH ==========================

// Refresh rotates a token inside its refresh window. The presented jti is revoked even
// when the subject no longer exists, so a refresh token is never usable twice. Only the
// call whose revocation row lands wins; a concurrent refresh of the same jti is rejected.
func (s *TokenService) Refresh(ctx context.Context, token string) (string, *SessionClaims, error) {
	claims, err := s.Verify(ctx, token, true)
	if err != nil {
		return "", nil, err
	}

	var resident *residentModel.Resident
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inserted, err := authRepo.Revoke(ctx, tx, claims.ID, claims.ExpiresAt.Time)
		if err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		if !inserted {
			return helper.ErrUnauthenticated
		}
		r, err := residentRepo.FindByEmail(ctx, tx, claims.Subject)
		if errors.Is(err, helper.ErrResidentNotExisted) {
			return nil
		}
		if err != nil {
			return err
		}
		resident = r
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	if resident == nil {
		return "", nil, helper.ErrUnauthenticated
	}
	return s.Issue(resident)
}

// ========================== AUTHENTICATE ==========================

func (s *TokenService) Authenticate(ctx context.Context, email, password string) (string, *SessionClaims, error) {
	r, err := residentRepo.FindByEmail(ctx, s.DB, email)
	if err != nil {
		return "", nil, err
	}
	if !authHelper.CheckPasswordHash(password, r.Password) {
		return "", nil, helper.ErrUnauthenticated
	}
	return s.Issue(r)
}
