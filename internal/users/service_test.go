package users

import (
	"context"
	"errors"
	"testing"
)

func TestSignupAndLogin(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Signup(ctx, "User@Example.com", "Test User", "s3cret-pass")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
	if created.Email != "user@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}
	if created.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}

	logged, err := svc.Login(ctx, "user@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, logged.ID)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Signup(context.Background(), "user@example.com", "Test", "short"); err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "user@example.com", "First", "s3cret-pass"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, err := svc.Signup(ctx, "USER@example.com", "Second", "other-pass-1")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "user@example.com", "Test", "s3cret-pass"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(ctx, "user@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginRejectsOAuthOnlyAccount(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	err := svc.UpsertFromAuth(ctx, User{ID: "google:1", Email: "user@example.com", FullName: "OAuth User"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := svc.Login(ctx, "user@example.com", "any-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
