package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
)

func TestUserFile_ReadAllInitializesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := NewUserFile(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	users, err := store.ReadAll()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty collection, got %d users", len(users))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to be created on first read: %v", err)
	}
}

func TestUserFile_ReadAllResetsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	store, err := NewUserFile(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	users, err := store.ReadAll()
	if err != nil {
		t.Fatalf("expected corrupt file to be reset, got %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty collection after reset, got %d users", len(users))
	}
}

func TestUserFile_WriteThenRead(t *testing.T) {
	store, err := NewUserFile(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	want := []models.User{
		{ID: "u1", Email: "a@example.com", Password: "hash", Role: models.RoleAdmin},
		{ID: "u2", Email: "b@example.com", Password: "hash2", Role: models.RoleRegistered},
	}
	if err := store.WriteAll(want); err != nil {
		t.Fatalf("failed to write users: %v", err)
	}

	got, err := store.ReadAll()
	if err != nil {
		t.Fatalf("failed to read users: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(got))
	}
	if got[0] != want[0] || got[1] != want[1] {
		t.Errorf("read-back mismatch: got %+v", got)
	}
}

func TestPostFile_ReadAllMissingFileFails(t *testing.T) {
	store, err := NewPostFile(filepath.Join(t.TempDir(), "posts.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if _, err := store.ReadAll(); err == nil {
		t.Errorf("expected error for missing posts file, got nil")
	}
}

func TestPostFile_WriteThenRead(t *testing.T) {
	store, err := NewPostFile(filepath.Join(t.TempDir(), "posts.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	want := []models.Post{{
		ID:      "p1",
		UserID:  "u1",
		Title:   "T",
		Content: "C",
		Likes:   []string{"u2"},
		Comments: []models.Comment{
			{ID: "c1", UserID: "u2", Content: "hi", Timestamp: "2024-01-01T00:00:00Z"},
		},
	}}
	if err := store.WriteAll(want); err != nil {
		t.Fatalf("failed to write posts: %v", err)
	}

	got, err := store.ReadAll()
	if err != nil {
		t.Fatalf("failed to read posts: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 post, got %d", len(got))
	}
	if got[0].ID != "p1" || len(got[0].Likes) != 1 || len(got[0].Comments) != 1 {
		t.Errorf("read-back mismatch: got %+v", got[0])
	}
	if got[0].Comments[0].Content != "hi" {
		t.Errorf("expected comment content 'hi', got %q", got[0].Comments[0].Content)
	}
}

func TestPostFile_EmptyArraySnapshotReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	store, err := NewPostFile(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	posts, err := store.ReadAll()
	if err != nil {
		t.Fatalf("failed to read posts: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", posts)
	}
}
