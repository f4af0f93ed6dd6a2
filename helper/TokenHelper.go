package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ngocsang1201/blog-server/config"
)

// GenerateToken signs an HS256 access token whose subject is the user id hex.
func GenerateToken(userID primitive.ObjectID) (string, error) {
	expire := config.GlobalConfig.JWT.AccessExpire
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.Hex(),
		"exp": time.Now().Add(time.Duration(expire) * time.Second).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(config.GlobalConfig.JWT.Secret))
}

// ParseToken validates signature and expiry, returning the encoded user id.
func ParseToken(tokenString string) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GlobalConfig.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return primitive.NilObjectID, errors.New("missing subject claim")
	}
	return primitive.ObjectIDFromHex(sub)
}
