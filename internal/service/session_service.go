package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mindtriage/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// SessionService issues and validates screening-session tokens. The engine
// itself is stateless; the token only identifies which user an evaluation and
// any resulting referral belong to.
type SessionService struct {
	jwtSecret []byte
}

// NewSessionService creates a new session service
func NewSessionService(secret string) *SessionService {
	return &SessionService{jwtSecret: []byte(secret)}
}

// CreateSession issues a session token for a user. An empty user id gets an
// anonymous generated one.
func (s *SessionService) CreateSession(userID string) (*model.SessionResponse, error) {
	if userID == "" {
		userID = "user_" + uuid.New().String()[:8]
	}

	claims := &model.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.SessionResponse{
		Token:  tokenString,
		UserID: userID,
	}, nil
}

// ValidateToken validates a session JWT and returns its claims
func (s *SessionService) ValidateToken(tokenString string) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
