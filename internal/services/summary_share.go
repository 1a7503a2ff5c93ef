package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidShareToken = errors.New("invalid share token")

const (
	DefaultShareTokenTTL = 72 * time.Hour
	shareTokenPurpose    = "healthcare_summary"
)

type shareClaims struct {
	UserID  uint   `json:"uid"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// SummaryShareService signs links that let a healthcare provider open one
// user's consultation summary until the token expires.
type SummaryShareService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewSummaryShareService(secretKey []byte, ttl time.Duration) *SummaryShareService {
	if ttl <= 0 {
		ttl = DefaultShareTokenTTL
	}
	return &SummaryShareService{
		secretKey: secretKey,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (service *SummaryShareService) IssueToken(userID uint) (string, time.Time, error) {
	now := service.now()
	expiresAt := now.Add(service.ttl)

	claims := shareClaims{
		UserID:  userID,
		Purpose: shareTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign share token: %w", err)
	}
	return signed, expiresAt, nil
}

func (service *SummaryShareService) ParseToken(raw string) (uint, error) {
	claims := &shareClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return service.secretKey, nil
	}, jwt.WithTimeFunc(service.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return 0, ErrInvalidShareToken
	}
	if claims.Purpose != shareTokenPurpose || claims.UserID == 0 {
		return 0, ErrInvalidShareToken
	}
	return claims.UserID, nil
}
