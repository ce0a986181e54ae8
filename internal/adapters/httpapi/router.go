package httpapi

import (
	"context"
	"net/http"

	"postcms/internal/adapters/httpapi/middleware"
	postPort "postcms/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type PostUseCase interface {
	CreatePost(ctx context.Context, identity string, req postPort.CreatePostRequest) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, rawID string) (*postPort.PostDTO, error)
	ListPostsByAuthor(ctx context.Context, identity string) ([]*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, identity, rawID string, req postPort.UpdatePostRequest) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, identity, rawID string) error
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(postUC PostUseCase, jwtSecret []byte, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	pc := NewPostController(postUC, logger)
	auth := middleware.JWTAuthMiddleware(jwtSecret)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "ok"})
	})

	posts := r.Group("/api/posts")
	{
		posts.POST("/create", auth, pc.CreatePost)
		posts.GET("", auth, pc.ListMyPosts)
		// خواندن تکی پست عمومی است
		posts.GET("/:id", pc.GetPost)
		posts.PUT("/:id", auth, pc.UpdatePost)
		posts.DELETE("/:id", auth, pc.DeletePost)
	}
	return r
}
