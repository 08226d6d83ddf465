package storage

import (
	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
)

// PostFile stores the post collection in a single JSON file. Unlike
// UserFile it does not initialize a missing file; ReadAll surfaces the
// error instead. The asymmetry is inherited from the system this replaces
// and is covered by tests.
type PostFile struct {
	path string
}

// NewPostFile creates a file-backed post store at path, creating the
// parent directory if needed.
func NewPostFile(path string) (*PostFile, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return &PostFile{path: path}, nil
}

var _ PostStore = (*PostFile)(nil)

// ReadAll loads the full post collection.
func (s *PostFile) ReadAll() ([]models.Post, error) {
	var posts []models.Post
	if err := readSnapshot(s.path, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// WriteAll replaces the stored collection with posts.
func (s *PostFile) WriteAll(posts []models.Post) error {
	return writeSnapshot(s.path, posts)
}
