package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID       uint   `json:"userId"`
	Role         string `json:"role"`
	RestaurantID *uint  `json:"restaurantId"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string, restaurantID *uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:       userID,
		Role:         role,
		RestaurantID: restaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
