package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/exalt/teamboard/internal/core/domain"
)

const (
	defaultAccessTTL  = 24 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenService issues and validates HS256-signed JWTs. Tokens are stateless
// and self-contained: there is no server-side session or revocation store,
// so a token stays trusted until its expiry.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService builds a TokenService around the single symmetric signing
// key. Non-positive TTLs fall back to the defaults.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssueAccessToken builds a short-lived token with subject, issued-at and
// expiry claims.
func (s *TokenService) IssueAccessToken(subject string) (string, error) {
	return s.sign(subject, s.accessTTL, nil)
}

// IssueRefreshToken builds a long-lived token, embedding any extra
// string-keyed claims alongside the registered ones.
func (s *TokenService) IssueRefreshToken(subject string, extraClaims map[string]any) (string, error) {
	return s.sign(subject, s.refreshTTL, extraClaims)
}

func (s *TokenService) sign(subject string, ttl time.Duration, extra map[string]any) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	// Registered claims always win over extras.
	claims["sub"] = subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ExtractSubject parses and signature-verifies the token, returning its
// subject claim. Structurally invalid or unsigned tokens fail with
// domain.ErrTokenInvalid; expiry is deliberately not checked here so the
// refresh flow can still identify whose token it is holding.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrTokenInvalid
	}
	return sub, nil
}

// IsValid reports whether the token carries exactly expectedSubject and has
// not expired. Parse and signature failures are definitively invalid and
// never propagate as errors.
func (s *TokenService) IsValid(token, expectedSubject string) bool {
	claims, err := s.parse(token)
	if err != nil {
		return false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub != expectedSubject {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().Before(exp.Time)
}

// parse verifies structure and signature only; claim validation (expiry)
// is done by the callers that care about it.
func (s *TokenService) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
