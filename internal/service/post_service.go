package service

import (
	"context"
	"strings"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

// PostService coordinates post and comment operations backed by repositories.
type PostService interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, userID int64, title, content, imageURL string) (*domain.Post, error)
	ListComments(ctx context.Context, postID int64) ([]domain.Comment, error)
	AddComment(ctx context.Context, postID, userID int64, text string) (*domain.Comment, error)
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewPostService(posts repository.PostRepository, comments repository.CommentRepository) PostService {
	return &postService{
		posts:    posts,
		comments: comments,
	}
}

func (s *postService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.ListWithAuthors(ctx)
}

func (s *postService) CreatePost(ctx context.Context, userID int64, title, content, imageURL string) (*domain.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrMissingFields
	}

	post := &domain.Post{
		UserID:   userID,
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}

	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

func (s *postService) AddComment(ctx context.Context, postID, userID int64, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingFields
	}

	comment := &domain.Comment{
		PostID:  postID,
		UserID:  userID,
		Comment: text,
	}

	if _, err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
