package sessions

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidGrant is returned when a video access grant fails verification.
var ErrInvalidGrant = errors.New("invalid access grant")

// GrantClaims are the claims of a video access grant. A grant is minted on
// successful registration and unlocks exactly one session's video.
type GrantClaims struct {
	VisitorID   string `json:"visitor_id"`
	SessionSlug string `json:"session_slug"`
	UserType    string `json:"user_type"`
	jwt.RegisteredClaims
}

// GrantService mints and verifies video access grants.
type GrantService struct {
	secret        []byte
	expireMinutes int
}

// NewGrantService creates a grant service.
func NewGrantService(secret string, expireMinutes int) *GrantService {
	return &GrantService{secret: []byte(secret), expireMinutes: expireMinutes}
}

// TTL returns the grant lifetime.
func (s *GrantService) TTL() time.Duration {
	return time.Duration(s.expireMinutes) * time.Minute
}

// Issue creates a grant for one visitor and one session.
func (s *GrantService) Issue(visitorID, sessionSlug, userType string) (string, error) {
	claims := GrantClaims{
		VisitorID:   visitorID,
		SessionSlug: sessionSlug,
		UserType:    userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TTL())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a grant and checks it was issued for the given session.
func (s *GrantService) Verify(tokenString, sessionSlug string) (*GrantClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &GrantClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidGrant
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidGrant
	}
	claims, ok := token.Claims.(*GrantClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidGrant
	}
	if claims.SessionSlug != sessionSlug {
		return nil, ErrInvalidGrant
	}
	return claims, nil
}
