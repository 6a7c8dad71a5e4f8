package auth

import (
	"errors"
	"time"

	"github.com/papermapper/papermapper/internal/config"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type JWT struct {
	logger     *zap.SugaredLogger
	jwtSecret  string
	sessionTTL time.Duration
}

type JWTInterface interface {
	GenerateSessionToken(payload JWTPayload) (*string, error)
	VerifySessionToken(token string) (*JWTClaims, error)
	SessionTTL() time.Duration
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &JWT{
		jwtSecret:  cfg.JWT_SECRET,
		sessionTTL: cfg.SessionTTL,
		logger:     logger,
	}
}

type JWTPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type JWTClaims struct {
	User JWTPayload `json:"user"`
	IAT  int64      `json:"iat"`
	EXP  int64      `json:"exp"`
}

func (j JWT) SessionTTL() time.Duration {
	return j.sessionTTL
}

// GenerateSessionToken signs the cookie-borne session token.
func (j JWT) GenerateSessionToken(payload JWTPayload) (*string, error) {
	j.logger.Debugf("Generate session token with payload: %v", payload)

	claims := jwt.MapClaims{
		"user": payload,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(j.sessionTTL).Unix(),
	}
	session := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := session.SignedString([]byte(j.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &token, nil
}

func (j JWT) VerifySessionToken(token string) (*JWTClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	})
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, errors.New("jwt token is not valid")
	}

	user, ok := claims["user"].(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid token: user field is missing or malformed")
	}

	// JSON numbers come back as float64.
	id, ok := user["id"].(float64)
	if !ok {
		return nil, errors.New("invalid token: user id is missing or malformed")
	}
	email, ok := user["email"].(string)
	if !ok {
		return nil, errors.New("invalid token: user email is missing or malformed")
	}

	return &JWTClaims{
		User: JWTPayload{
			ID:    uint(id),
			Email: email,
		},
		IAT: int64(claims["iat"].(float64)),
		EXP: int64(claims["exp"].(float64)),
	}, nil
}
