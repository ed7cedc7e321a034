package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fanzone-backend/internal/domains/community/model"
	"fanzone-backend/internal/domains/community/service"
	"fanzone-backend/internal/shared/response"
)

type CommunityHandler struct {
	communityService service.ServiceInterface
}

func NewCommunityHandler(communityService service.ServiceInterface) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// CreatePost adds a feed entry for the authenticated user.
// POST /api/v1/community/posts
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.Unauthorized(c, "invalid session")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	post, err := h.communityService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// ListFeed returns the paginated public feed.
// GET /api/v1/community/posts?page=&limit=
func (h *CommunityHandler) ListFeed(c *gin.Context) {
	var req model.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	posts, total, err := h.communityService.ListFeed(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Page:  page,
		Limit: len(posts),
		Total: total,
	})
}

func (h *CommunityHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}
	response.InternalServerError(c, "Something went wrong")
}
