package service

import (
	"context"
	"testing"
	"time"

	"github.com/promptstash/promptstash-go/internal/model"
	"github.com/promptstash/promptstash-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
	)
}

func TestRegisterEmptyFullName(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	if !IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc := newTestAuthService()

	for _, email := range []string{"", "no-at-sign", "@nodomain", "trailing@", "no@tld"} {
		_, err := svc.Register(context.Background(), model.RegisterRequest{
			FullName: "Test User",
			Email:    email,
			Password: "password123",
		})
		if !IsValidation(err) {
			t.Errorf("email %q: expected ValidationError, got %v", email, err)
		}
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		FullName: "Test User",
		Email:    "test@example.com",
		Password: "12345",
	})
	if !IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{})
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidEmail(t *testing.T) {
	for _, email := range []string{"a@b.co", "user.name@example.com"} {
		if !validEmail(email) {
			t.Errorf("validEmail(%q) = false, want true", email)
		}
	}
	for _, email := range []string{"", "a b@c.co", "nodot@domain"} {
		if validEmail(email) {
			t.Errorf("validEmail(%q) = true, want false", email)
		}
	}
}
