package storage

import (
	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
)

// UserFile stores the user collection in a single JSON file.
type UserFile struct {
	path string
}

// NewUserFile creates a file-backed user store at path, creating the
// parent directory if needed.
func NewUserFile(path string) (*UserFile, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return &UserFile{path: path}, nil
}

var _ UserStore = (*UserFile)(nil)

// ReadAll loads the full user collection. A missing or unparsable file is
// initialized to an empty collection and persisted before returning; the
// caller never sees an error for that case.
func (s *UserFile) ReadAll() ([]models.User, error) {
	var users []models.User
	if err := readSnapshot(s.path, &users); err != nil {
		users = []models.User{}
		if werr := writeSnapshot(s.path, users); werr != nil {
			return nil, werr
		}
		return users, nil
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// WriteAll replaces the stored collection with users.
func (s *UserFile) WriteAll(users []models.User) error {
	return writeSnapshot(s.path, users)
}
