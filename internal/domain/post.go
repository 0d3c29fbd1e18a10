package domain

import "time"

// Post is a blog entry authored by a user.
type Post struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	ImageURL  string
	CreatedAt time.Time

	// Username is the author's name, populated by joined queries.
	Username string
}

// Comment is a reader remark attached to a post.
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Comment   string
	CreatedAt time.Time

	// Username is the commenter's name, populated by joined queries.
	Username string
}
