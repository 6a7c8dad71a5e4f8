package auth

import (
	"testing"
	"time"

	"github.com/papermapper/papermapper/internal/config"
)

// Perform token generation and verify the generated token to ensure
// VerifySessionToken is correct
func TestSessionToken(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{
		JWT_SECRET: "test-secret",
		SessionTTL: time.Hour,
	}, nil)

	payload := JWTPayload{
		ID:    42,
		Email: "test@gmail.com",
	}

	token, err := jwtService.GenerateSessionToken(payload)
	if err != nil {
		t.Fatalf("An error occurred during session token generation. Error: %v", err)
	}

	claim, err := jwtService.VerifySessionToken(*token)
	if err != nil {
		t.Fatalf("An error occurred during session token verification. Error: %v", err)
	}

	if claim.User.ID != payload.ID || claim.User.Email != payload.Email {
		t.Errorf("Verified claim user = %+v, want %+v", claim.User, payload)
	}
}

func TestVerifySessionTokenRejectsTampering(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{
		JWT_SECRET: "test-secret",
		SessionTTL: time.Hour,
	}, nil)

	token, err := jwtService.GenerateSessionToken(JWTPayload{ID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	otherService := NewJwt(config.AuthConfig{
		JWT_SECRET: "another-secret",
		SessionTTL: time.Hour,
	}, nil)

	if _, err := otherService.VerifySessionToken(*token); err == nil {
		t.Error("VerifySessionToken() accepted a token signed with a different secret")
	}

	if _, err := jwtService.VerifySessionToken(*token + "x"); err == nil {
		t.Error("VerifySessionToken() accepted a tampered token")
	}
}

func TestVerifySessionTokenRejectsExpired(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{
		JWT_SECRET: "test-secret",
		SessionTTL: -time.Minute,
	}, nil)

	token, err := jwtService.GenerateSessionToken(JWTPayload{ID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if _, err := jwtService.VerifySessionToken(*token); err == nil {
		t.Error("VerifySessionToken() accepted an expired token")
	}
}
