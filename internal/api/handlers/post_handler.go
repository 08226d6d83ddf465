package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sachinbijalwan2892/Social-media-app/internal/auth"
	"github.com/sachinbijalwan2892/Social-media-app/internal/services"
)

// PostHandler handles HTTP requests for posts, likes and comments.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// PostPayload defines the structure for create and update requests.
type PostPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CommentPayload defines the structure for comment requests.
type CommentPayload struct {
	Content string `json:"content"`
}

// Create handles new post creation by the authenticated caller.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusForbidden, "Missing or invalid token")
		return
	}

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.Create(claims.UserID, payload.Title, payload.Content)
	switch {
	case err == nil:
		respondJSON(w, http.StatusCreated, post)
	case errors.Is(err, services.ErrValidation):
		respondMessage(w, http.StatusBadRequest, "Title and content are required")
	default:
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to create post")
		respondMessage(w, http.StatusInternalServerError, "Failed to create post")
	}
}

// Update handles in-place edits of the caller's own post.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusForbidden, "Missing or invalid token")
		return
	}
	id := chi.URLParam(r, "id")

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.Update(id, claims.UserID, payload.Title, payload.Content)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, post)
	case errors.Is(err, services.ErrForbidden):
		respondMessage(w, http.StatusForbidden, "Unauthorized")
	default:
		log.Error().Err(err).Str("post_id", id).Msg("Failed to update post")
		respondMessage(w, http.StatusInternalServerError, "Failed to update post")
	}
}

// Delete handles post removal under the admin-any / owner-only rule.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusForbidden, "Missing or invalid token")
		return
	}
	id := chi.URLParam(r, "id")

	err := h.service.Delete(id, claims.UserID, claims.Role)
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Post deleted successfully")
	case errors.Is(err, services.ErrForbidden):
		respondMessage(w, http.StatusForbidden, "Unauthorized")
	default:
		log.Error().Err(err).Str("post_id", id).Msg("Failed to delete post")
		respondMessage(w, http.StatusInternalServerError, "Failed to delete post")
	}
}

// List handles the public listing of all posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		respondMessage(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// Like records the caller's like on a post.
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusForbidden, "Missing or invalid token")
		return
	}
	id := chi.URLParam(r, "id")

	liked, err := h.service.Like(id, claims.UserID)
	switch {
	case err == nil && liked:
		respondMessage(w, http.StatusOK, "Post liked")
	case err == nil:
		respondMessage(w, http.StatusOK, "Post already liked")
	case errors.Is(err, services.ErrNotFound):
		respondMessage(w, http.StatusNotFound, "Post not found")
	default:
		log.Error().Err(err).Str("post_id", id).Msg("Failed to like post")
		respondMessage(w, http.StatusInternalServerError, "Failed to like post")
	}
}

// Unlike removes the caller's like from a post.
func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusForbidden, "Missing or invalid token")
		return
	}
	id := chi.URLParam(r, "id")

	err := h.service.Unlike(id, claims.UserID)
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Post unliked")
	case errors.Is(err, services.ErrNotFound):
		respondMessage(w, http.StatusNotFound, "Post not found")
	default:
		log.Error().Err(err).Str("post_id", id).Msg("Failed to unlike post")
		respondMessage(w, http.StatusInternalServerError, "Failed to unlike post")
	}
}

// Comment appends a comment by the caller to a post.
func (h *PostHandler) Comment(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusForbidden, "Missing or invalid token")
		return
	}
	id := chi.URLParam(r, "id")

	var payload CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.service.Comment(id, claims.UserID, payload.Content)
	switch {
	case err == nil:
		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Comment added",
			"comment": comment,
		})
	case errors.Is(err, services.ErrNotFound):
		respondMessage(w, http.StatusNotFound, "Post not found")
	default:
		log.Error().Err(err).Str("post_id", id).Msg("Failed to comment on post")
		respondMessage(w, http.StatusInternalServerError, "Failed to comment on post")
	}
}

// ListComments handles the public listing of a post's comments.
func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	comments, err := h.service.ListComments(id)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, comments)
	case errors.Is(err, services.ErrNotFound):
		respondMessage(w, http.StatusNotFound, "Post not found")
	default:
		log.Error().Err(err).Str("post_id", id).Msg("Failed to list comments")
		respondMessage(w, http.StatusInternalServerError, "Failed to list comments")
	}
}
