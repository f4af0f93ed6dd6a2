package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ngocsang1201/blog-server/config"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.GlobalConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", AccessExpire: 3600},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(t)

	userID := primitive.NewObjectID()
	token, err := GenerateToken(userID)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parsed, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed != userID {
		t.Fatalf("got subject %s, want %s", parsed.Hex(), userID.Hex())
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	setTestConfig(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": primitive.NewObjectID().Hex(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.GlobalConfig.JWT.Secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := ParseToken(signed); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": primitive.NewObjectID().Hex(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := ParseToken(signed); err == nil {
		t.Fatalf("expected error for token signed with the wrong secret")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setTestConfig(t)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(tokenString); err == nil {
			t.Fatalf("expected error for %q", tokenString)
		}
	}
}
