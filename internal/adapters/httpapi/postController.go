package httpapi

import (
	"errors"
	"net/http"

	"postcms/internal/adapters/httpapi/middleware"
	"postcms/internal/core/post"
	postPort "postcms/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgCreated        = "Post added successfully"
	msgUpdated        = "Post updated successfully"
	msgDeleted        = "Post deleted successfully"
	msgFound          = "Post found successfully"
	msgListed         = "Posts found successfully"
	msgRequiredFields = "Please fill all required fields (title, content)"
	msgBadBody        = "Invalid request body"
	msgDuplicate      = "Post title already exists"
	msgInvalidID      = "Invalid Post ID"
	msgNotFound       = "Post not found"
	msgNoPosts        = "No posts found"
	msgUnauthorized   = "Unauthorized: Invalid token or user info"
	msgInternal       = "Internal server error"
)

// Envelope قالب ثابت همه پاسخ‌ها
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type PostController struct {
	pc     PostUseCase
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, logger *zap.Logger) *PostController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostController{pc: pc, logger: logger}
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postPort.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgBadBody)
		return
	}
	res, err := ctl.pc.CreatePost(c.Request.Context(), middleware.Identity(c), req)
	if err != nil {
		ctl.writeError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, Envelope{Status: true, Message: msgCreated, Data: res})
}

// ListMyPosts پست‌های کاربر فعلی
func (ctl *PostController) ListMyPosts(c *gin.Context) {
	res, err := ctl.pc.ListPostsByAuthor(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			fail(c, http.StatusNotFound, msgNoPosts)
			return
		}
		ctl.writeError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, Envelope{Status: true, Message: msgListed, Data: res})
}

func (ctl *PostController) GetPost(c *gin.Context) {
	res, err := ctl.pc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctl.writeError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, Envelope{Status: true, Message: msgFound, Data: res})
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	var req postPort.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgBadBody)
		return
	}
	res, err := ctl.pc.UpdatePost(c.Request.Context(), middleware.Identity(c), c.Param("id"), req)
	if err != nil {
		ctl.writeError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, Envelope{Status: true, Message: msgUpdated, Data: res})
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	if err := ctl.pc.DeletePost(c.Request.Context(), middleware.Identity(c), c.Param("id")); err != nil {
		ctl.writeError(c, err, "delete")
		return
	}
	c.JSON(http.StatusOK, Envelope{Status: true, Message: msgDeleted})
}

// writeError نوع خطا را به کد HTTP و پیام ثابت تبدیل می‌کند
func (ctl *PostController) writeError(c *gin.Context, err error, action string) {
	var verr *post.ValidationError
	switch {
	case errors.Is(err, post.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, msgUnauthorized)
	case errors.As(err, &verr):
		msg := verr.Error()
		if verr.Message == "is required" && (verr.Field == "title" || verr.Field == "content") {
			msg = msgRequiredFields
		}
		fail(c, http.StatusBadRequest, msg)
	case errors.Is(err, post.ErrInvalidIdentifier):
		fail(c, http.StatusBadRequest, msgInvalidID)
	case errors.Is(err, post.ErrConflict):
		fail(c, http.StatusConflict, msgDuplicate)
	case errors.Is(err, post.ErrNotFound):
		fail(c, http.StatusNotFound, msgNotFound)
	case errors.Is(err, post.ErrForbidden):
		fail(c, http.StatusForbidden, "Forbidden: You are not authorized to "+action+" this post")
	default:
		ctl.logger.Error("post request failed", zap.String("action", action), zap.Error(err))
		fail(c, http.StatusInternalServerError, msgInternal)
	}
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Status: false, Message: msg})
}
