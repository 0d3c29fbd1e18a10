package repository

import (
	"context"
	"errors"

	"blog-server/internal/domain"
)

// ErrPostNotFound indicates an operation referenced a post that does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostRepository exposes persistence operations for Post entities.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	ListWithAuthors(ctx context.Context) ([]domain.Post, error)
}

// CommentRepository manages comments attached to posts.
type CommentRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, comment *domain.Comment) (int64, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
}
