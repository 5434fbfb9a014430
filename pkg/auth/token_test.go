package auth

import (
	"testing"
	"time"

	"github.com/grocerly/appcore/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "grocerly-mockapi",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, 42, "customer")
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Role != "customer" {
		t.Fatalf("unexpected role %s", claims.Role)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}

	exp := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestMintAccessToken_RequiresConfig(t *testing.T) {
	now := time.Now()

	cfg := testJWTConfig()
	cfg.Secret = ""
	if _, err := MintAccessToken(cfg, now, 1, "customer"); err == nil {
		t.Fatalf("expected error for missing secret")
	}

	cfg = testJWTConfig()
	cfg.ExpirationMinutes = 0
	if _, err := MintAccessToken(cfg, now, 1, "customer"); err == nil {
		t.Fatalf("expected error for non-positive expiration")
	}

	if _, err := MintAccessToken(testJWTConfig(), now, 0, "customer"); err == nil {
		t.Fatalf("expected error for invalid user id")
	}
}

func TestParseAccessToken_InvalidSignature(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), 7, "admin")
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	other := cfg
	other.Secret = "different"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatalf("expected signature validation to fail")
	}
}

func TestParseAccessToken_WrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), 7, "admin")
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatalf("expected issuer validation to fail")
	}
}
