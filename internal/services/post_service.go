package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
	"github.com/sachinbijalwan2892/Social-media-app/internal/storage"
)

// PostServiceProvider defines the interface for post operations.
type PostServiceProvider interface {
	Create(callerID, title, content string) (models.Post, error)
	Update(id, callerID, title, content string) (models.Post, error)
	Delete(id, callerID string, callerRole models.Role) error
	List() ([]models.Post, error)
	Like(id, callerID string) (bool, error)
	Unlike(id, callerID string) error
	Comment(id, callerID, content string) (models.Comment, error)
	ListComments(id string) ([]models.Comment, error)
}

// PostService provides the business logic for posts. Every mutation loads
// the full post snapshot, edits it in memory and writes it back.
type PostService struct {
	store storage.PostStore

	// Serializes read-modify-write cycles on the post snapshot.
	mu sync.Mutex
}

// NewPostService creates a new PostService.
func NewPostService(store storage.PostStore) *PostService {
	return &PostService{store: store}
}

// Create adds a new post owned by the caller. Title and content are
// required.
func (s *PostService) Create(callerID, title, content string) (models.Post, error) {
	if title == "" || content == "" {
		return models.Post{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.ReadAll()
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to read posts: %w", err)
	}

	post := models.Post{
		ID:       uuid.New().String(),
		UserID:   callerID,
		Title:    title,
		Content:  content,
		Likes:    []string{},
		Comments: []models.Comment{},
	}
	posts = append(posts, post)
	if err := s.store.WriteAll(posts); err != nil {
		return models.Post{}, fmt.Errorf("failed to write posts: %w", err)
	}
	return post, nil
}

// Update replaces the title and content of the caller's own post. Likes
// and comments are preserved. A post that does not exist or belongs to
// someone else is reported the same way.
func (s *PostService) Update(id, callerID, title, content string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.ReadAll()
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to read posts: %w", err)
	}

	for i := range posts {
		if posts[i].ID != id || posts[i].UserID != callerID {
			continue
		}
		posts[i].Title = title
		posts[i].Content = content
		if err := s.store.WriteAll(posts); err != nil {
			return models.Post{}, fmt.Errorf("failed to write posts: %w", err)
		}
		return posts[i], nil
	}
	return models.Post{}, ErrForbidden
}

// Delete removes a post. Admins may delete any post; registered users only
// their own.
func (s *PostService) Delete(id, callerID string, callerRole models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read posts: %w", err)
	}

	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		if callerRole != models.RoleAdmin && posts[i].UserID != callerID {
			continue
		}
		posts = append(posts[:i], posts[i+1:]...)
		if err := s.store.WriteAll(posts); err != nil {
			return fmt.Errorf("failed to write posts: %w", err)
		}
		return nil
	}
	return ErrForbidden
}

// List returns all posts in store order.
func (s *PostService) List() ([]models.Post, error) {
	posts, err := s.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return posts, nil
}

// Like records the caller's like on a post. It reports false without
// writing when the caller already liked the post.
func (s *PostService) Like(id, callerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.ReadAll()
	if err != nil {
		return false, fmt.Errorf("failed to read posts: %w", err)
	}

	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		for _, userID := range posts[i].Likes {
			if userID == callerID {
				return false, nil
			}
		}
		posts[i].Likes = append(posts[i].Likes, callerID)
		if err := s.store.WriteAll(posts); err != nil {
			return false, fmt.Errorf("failed to write posts: %w", err)
		}
		return true, nil
	}
	return false, ErrNotFound
}

// Unlike removes the caller's like from a post. Removing a like that was
// never there is a silent no-op.
func (s *PostService) Unlike(id, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read posts: %w", err)
	}

	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		likes := make([]string, 0, len(posts[i].Likes))
		for _, userID := range posts[i].Likes {
			if userID != callerID {
				likes = append(likes, userID)
			}
		}
		posts[i].Likes = likes
		if err := s.store.WriteAll(posts); err != nil {
			return fmt.Errorf("failed to write posts: %w", err)
		}
		return nil
	}
	return ErrNotFound
}

// Comment appends a new comment by the caller to a post. Empty content is
// permitted.
func (s *PostService) Comment(id, callerID, content string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.ReadAll()
	if err != nil {
		return models.Comment{}, fmt.Errorf("failed to read posts: %w", err)
	}

	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		comment := models.Comment{
			ID:        uuid.New().String(),
			UserID:    callerID,
			Content:   content,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		posts[i].Comments = append(posts[i].Comments, comment)
		if err := s.store.WriteAll(posts); err != nil {
			return models.Comment{}, fmt.Errorf("failed to write posts: %w", err)
		}
		return comment, nil
	}
	return models.Comment{}, ErrNotFound
}

// ListComments returns a post's comments in append order.
func (s *PostService) ListComments(id string) ([]models.Comment, error) {
	posts, err := s.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	for i := range posts {
		if posts[i].ID == id {
			if posts[i].Comments == nil {
				return []models.Comment{}, nil
			}
			return posts[i].Comments, nil
		}
	}
	return nil, ErrNotFound
}
