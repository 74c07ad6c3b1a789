package auth

import (
	"testing"
	"time"
)

func TestSignAndParseToken(t *testing.T) {
	user := UserContext{UserID: 42, Username: "msantos", Role: "admin"}
	raw, err := SignToken("test-secret", user, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := ParseToken("test-secret", raw)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "msantos" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	raw, err := SignToken("secret-a", UserContext{UserID: 1}, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ParseToken("secret-b", raw); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	raw, err := SignToken("secret", UserContext{UserID: 1}, -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ParseToken("secret", raw); err == nil {
		t.Fatal("expected error for expired token")
	}
}
