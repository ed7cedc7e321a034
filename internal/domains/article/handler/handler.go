package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fanzone-backend/internal/domains/article/model"
	"fanzone-backend/internal/domains/article/service"
	"fanzone-backend/internal/shared/response"
)

type ArticleHandler struct {
	articleService service.ServiceInterface
}

func NewArticleHandler(articleService service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// Create makes a DRAFT article.
// POST /api/v1/articles (admin)
func (h *ArticleHandler) Create(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, article)
}

// Publish flips an article to PUBLISHED.
// POST /api/v1/articles/:id/publish (admin)
func (h *ArticleHandler) Publish(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	article, err := h.articleService.Publish(c.Request.Context(), articleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article)
}

// GetBySlug returns a published article.
// GET /api/v1/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article)
}

// List returns published articles newest first.
// GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	var req model.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	articles, err := h.articleService.List(c.Request.Context(), req, false)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, articles)
}

func (h *ArticleHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	var articleErr *model.ArticleError
	if errors.As(err, &articleErr) {
		switch {
		case errors.Is(articleErr, model.ErrArticleNotFound):
			response.ErrorResponse(c, http.StatusNotFound, articleErr.Code, articleErr.Message)
		case errors.Is(articleErr, model.ErrSlugTaken):
			response.ErrorResponse(c, http.StatusConflict, articleErr.Code, articleErr.Message)
		default:
			response.ErrorResponse(c, http.StatusBadRequest, articleErr.Code, articleErr.Message)
		}
		return
	}

	response.InternalServerError(c, "Something went wrong")
}
