// Package storage persists the user and post collections as whole-file
// JSON snapshots. Every read returns the full collection and every write
// replaces the file contents; there is no partial access.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
)

// UserStore is the persistence contract for the user collection.
type UserStore interface {
	ReadAll() ([]models.User, error)
	WriteAll(users []models.User) error
}

// PostStore is the persistence contract for the post collection.
type PostStore interface {
	ReadAll() ([]models.Post, error)
	WriteAll(posts []models.Post) error
}

func readSnapshot(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeSnapshot(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
