package store

import (
	"context"
	"testing"

	"inventorypro/internal/db"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "owner@example.com", "hashed")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}
	if user.Email != "owner@example.com" {
		t.Errorf("expected email 'owner@example.com', got %q", user.Email)
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got == nil || got.Email != user.Email {
		t.Errorf("expected user %q by id, got %v", user.Email, got)
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "owner@example.com", "hashed")

	got, err := GetUserByEmail(ctx, database, "owner@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got == nil {
		t.Fatal("expected user by email")
	}
	if got.PasswordHash != "hashed" {
		t.Errorf("expected password hash roundtrip, got %q", got.PasswordHash)
	}

	missing, err := GetUserByEmail(ctx, database, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "owner@example.com", "hash1"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := CreateUser(ctx, database, "owner@example.com", "hash2"); err == nil {
		t.Error("expected error for duplicate email")
	}
}
