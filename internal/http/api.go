package http

import (
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
	"blog-server/internal/service"
	"blog-server/internal/storage"
)

const genericErrorMessage = "An internal server error occurred"

// mediaURLTTL bounds how long a presigned media URL stays fetchable.
const mediaURLTTL = 24 * time.Hour

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	posts     service.PostService
	tokens    service.TokenService
	storage   storage.Service
	bucket    string
	keyPrefix string
	logger    *logrus.Logger
}

func NewHandler(
	users service.UserService,
	posts service.PostService,
	tokens service.TokenService,
	store storage.Service,
	bucket, keyPrefix string,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:     users,
		posts:     posts,
		tokens:    tokens,
		storage:   store,
		bucket:    bucket,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(RequestLogger(h.logger))

	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.GET("/posts", h.listPosts)
	router.GET("/posts/:postId/comments", h.listComments)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	protected := router.Group("/", RequireAuth(h.tokens))
	{
		protected.GET("", h.tokenCheck)
		protected.POST("/add-post", h.createPost)
		protected.POST("/posts/:postId/comments", h.addComment)
		protected.POST("/media", h.uploadMedia)
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		case errors.Is(err, service.ErrEmailExists):
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
		case errors.Is(err, service.ErrUsernameExists):
			c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
		default:
			h.logger.WithError(err).Error("register user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, _, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		h.logger.WithError(err).Error("login user")
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "success",
		"accessToken": token,
	})
}

func (h *Handler) tokenCheck(c *gin.Context) {
	userID, _ := AuthUserID(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Token is valid",
		"payload": gin.H{
			"userId":   userID,
			"username": AuthUsername(c),
		},
	})
}

type PostResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"created_at"`
	Username  string `json:"username"`
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

func (h *Handler) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	userID, ok := AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	post, err := h.posts.CreatePost(c.Request.Context(), userID, req.Title, req.Content, req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
			return
		}
		h.logger.WithError(err).Error("create post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"postId":  post.ID,
	})
}

type CommentResponse struct {
	ID        int64  `json:"id"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	Username  string `json:"username"`
}

func (h *Handler) listComments(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil || postID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post id"})
		return
	}

	comments, err := h.posts.ListComments(c.Request.Context(), postID)
	if err != nil {
		h.logger.WithError(err).Error("list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		return
	}

	resp := make([]CommentResponse, len(comments))
	for i := range comments {
		resp[i] = commentToResponse(comments[i])
	}
	c.JSON(http.StatusOK, resp)
}

type addCommentRequest struct {
	Comment string `json:"comment"`
}

func (h *Handler) addComment(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil || postID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post id"})
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	userID, ok := AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	comment, err := h.posts.AddComment(c.Request.Context(), postID, userID, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Comment is required"})
		case errors.Is(err, repository.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		default:
			h.logger.WithError(err).Error("add comment")
			c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Comment added successfully",
		"commentId": comment.ID,
	})
}

func (h *Handler) uploadMedia(c *gin.Context) {
	if h.storage == nil || h.bucket == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Storage service not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.WithError(err).Error("open upload")
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		return
	}
	defer file.Close()

	key := path.Join(h.keyPrefix, uuid.NewString()+filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	if _, err := h.storage.UploadObject(c.Request.Context(), h.bucket, key, contentType, file); err != nil {
		h.logger.WithError(err).Error("upload media")
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		return
	}

	url, err := h.storage.PresignGet(c.Request.Context(), h.bucket, key, mediaURLTTL)
	if err != nil {
		h.logger.WithError(err).Error("presign media")
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericErrorMessage})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Upload successful",
		"key":     key,
		"url":     url,
	})
}

func postToResponse(post domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		Username:  post.Username,
	}
}

func commentToResponse(comment domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		Username:  comment.Username,
	}
}
