package models

// Post represents a blog post owned by a user. Likes holds the IDs of the
// users who liked the post, in the order the likes arrived, without
// duplicates.
type Post struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Likes    []string  `json:"likes"`
	Comments []Comment `json:"comments"`
}

// Comment is a single comment on a post. Comments are immutable once
// created.
type Comment struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"` // RFC3339, set at creation
}
