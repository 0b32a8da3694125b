// Package auth issues and verifies access tokens for registered devices.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hyperaware/doorbell-relay/internal/common"
)

// Claims carries the registered claim set plus the identifier of the
// device the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	DeviceID string
}

// GenerateToken signs an HS256 token for the given device.
func GenerateToken(deviceID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		DeviceID: deviceID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetDeviceIDFromToken verifies the token signature and expiry and
// returns the device identifier embedded in the claims.
func GetDeviceIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.DeviceID, nil
}
