package jwtmanager

import (
	"errors"
	"fmt"
	"practice-service/internal/app/config"
	"practice-service/internal/app/contracts"
	"practice-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager signs and verifies the HS256 tokens issued to doctors on login.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
}

// NewJWTManager constructs a JWTManager from InternalConfig.JWT. An empty
// secret is rejected so the service never signs with a default key.
func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (contracts.TokenManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl := time.Duration(cfg.JWT.ExpiryHours) * time.Hour
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

func (m *JWTManager) CreateToken(doctorID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.JWTClaimDoctorID: doctorID,
		"iat":                      now.Unix(),
		constvars.JWTClaimExpiry:   now.Add(m.ttl).Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		m.log.Error("JWTManager.CreateToken failed to sign token", zap.Error(err))
		return "", err
	}
	return signed, nil
}

func (m *JWTManager) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if doctorID, ok := claims[constvars.JWTClaimDoctorID].(string); ok && doctorID != "" {
			return doctorID, nil
		}
	}
	return "", errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
}
