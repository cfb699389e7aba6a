package jwt

import (
	"testing"
	"time"

	httpx "github.com/go-atlas/atlas/pkg/http"
)

func TestGenAndParseToken(t *testing.T) {
	secretKey := []byte("1111111111111111")

	aToken, rToken, err := GenToken(1, "admin", secretKey, time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("GenToken error: %v", err)
	}
	if aToken == "" || rToken == "" {
		t.Fatal("expected non-empty token pair")
	}

	claims, err := ParseToken(aToken, string(secretKey))
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserId != 1 || claims.Username != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenWrongKey(t *testing.T) {
	aToken, _, err := GenToken(2, "guest", []byte("right-key-000000"), time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("GenToken error: %v", err)
	}
	if _, err := ParseToken(aToken, "wrong-key-000000"); err == nil {
		t.Error("expected error for token signed with another key")
	}
}

func TestRefreshToken(t *testing.T) {
	secretKey := "bf284d03-ba65-42d4-a9fe-0d2fbfe61060"
	auth := &httpx.Auth{
		SecretKey:     secretKey,
		AccessExpire:  time.Hour,
		RefreshExpire: 2 * time.Hour,
	}

	_, rToken, err := GenToken(1, "admin", []byte(secretKey), auth.AccessExpire, auth.RefreshExpire)
	if err != nil {
		t.Fatalf("GenToken error: %v", err)
	}

	pair, err := RefreshToken(auth, 1, "admin", rToken)
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if pair["accessToken"] == "" || pair["refreshToken"] == "" {
		t.Errorf("expected new token pair, got %v", pair)
	}
}
