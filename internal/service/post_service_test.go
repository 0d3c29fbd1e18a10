package service

import (
	"context"
	"errors"
	"testing"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

type fakePostRepo struct {
	posts  []domain.Post
	nextID int64
}

func (r *fakePostRepo) Init(ctx context.Context) error { return nil }

func (r *fakePostRepo) Create(ctx context.Context, post *domain.Post) (int64, error) {
	r.nextID++
	post.ID = r.nextID
	r.posts = append(r.posts, *post)
	return post.ID, nil
}

func (r *fakePostRepo) ListWithAuthors(ctx context.Context) ([]domain.Post, error) {
	return r.posts, nil
}

type fakeCommentRepo struct {
	comments   []domain.Comment
	nextID     int64
	knownPosts map[int64]bool
}

func (r *fakeCommentRepo) Init(ctx context.Context) error { return nil }

func (r *fakeCommentRepo) Create(ctx context.Context, comment *domain.Comment) (int64, error) {
	if r.knownPosts != nil && !r.knownPosts[comment.PostID] {
		return 0, repository.ErrPostNotFound
	}
	r.nextID++
	comment.ID = r.nextID
	r.comments = append(r.comments, *comment)
	return comment.ID, nil
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCreatePost(t *testing.T) {
	svc := NewPostService(&fakePostRepo{}, &fakeCommentRepo{})
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, 7, "Hello", "First post", "")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if post.ID != 1 {
		t.Errorf("post.ID = %d, want 1", post.ID)
	}
	if post.UserID != 7 {
		t.Errorf("post.UserID = %d, want 7", post.UserID)
	}

	posts, err := svc.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Hello" {
		t.Errorf("ListPosts() = %+v, want the created post", posts)
	}
}

func TestCreatePost_MissingFields(t *testing.T) {
	svc := NewPostService(&fakePostRepo{}, &fakeCommentRepo{})
	ctx := context.Background()

	tests := []struct {
		name           string
		title, content string
	}{
		{"empty title", "", "content"},
		{"empty content", "title", ""},
		{"whitespace title", "  ", "content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreatePost(ctx, 1, tt.title, tt.content, ""); !errors.Is(err, ErrMissingFields) {
				t.Errorf("CreatePost() error = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestAddComment(t *testing.T) {
	comments := &fakeCommentRepo{knownPosts: map[int64]bool{1: true}}
	svc := NewPostService(&fakePostRepo{}, comments)
	ctx := context.Background()

	comment, err := svc.AddComment(ctx, 1, 7, "nice post")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if comment.PostID != 1 || comment.UserID != 7 {
		t.Errorf("comment = %+v, want post 1 user 7", comment)
	}

	listed, err := svc.ListComments(ctx, 1)
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	if len(listed) != 1 || listed[0].Comment != "nice post" {
		t.Errorf("ListComments() = %+v, want the added comment", listed)
	}
}

func TestAddComment_Errors(t *testing.T) {
	comments := &fakeCommentRepo{knownPosts: map[int64]bool{1: true}}
	svc := NewPostService(&fakePostRepo{}, comments)
	ctx := context.Background()

	if _, err := svc.AddComment(ctx, 1, 7, ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("empty comment error = %v, want ErrMissingFields", err)
	}

	if _, err := svc.AddComment(ctx, 99, 7, "hello"); !errors.Is(err, repository.ErrPostNotFound) {
		t.Errorf("unknown post error = %v, want ErrPostNotFound", err)
	}
}
