package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"fanzone-backend/internal/domains/comment/model"
	"fanzone-backend/internal/domains/comment/service"
	"fanzone-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Submit creates a PENDING comment on a published article.
// POST /api/v1/articles/:slug/comments
func (h *CommentHandler) Submit(c *gin.Context) {
	var req model.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	comment, err := h.commentService.Submit(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// ListPublic returns APPROVED comments for a published article.
// GET /api/v1/articles/:slug/comments
func (h *CommentHandler) ListPublic(c *gin.Context) {
	comments, err := h.commentService.ListPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// AdminList returns the moderation queue.
// GET /api/v1/admin/comments?status=
func (h *CommentHandler) AdminList(c *gin.Context) {
	entries, err := h.commentService.ListForModeration(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entries)
}

// Approve transitions a comment to APPROVED.
// POST /api/v1/admin/comments/:id/approve
func (h *CommentHandler) Approve(c *gin.Context) {
	h.moderate(c, h.commentService.Approve)
}

// Reject transitions a comment to REJECTED.
// POST /api/v1/admin/comments/:id/reject
func (h *CommentHandler) Reject(c *gin.Context) {
	h.moderate(c, h.commentService.Reject)
}

func (h *CommentHandler) moderate(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*model.Comment, error)) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	comment, err := fn(c.Request.Context(), commentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// Export streams the moderation queue as an .xlsx workbook.
// GET /api/v1/admin/comments/export?status=
func (h *CommentHandler) Export(c *gin.Context) {
	entries, err := h.commentService.ListForModeration(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Comments"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Article Slug", "Article Title", "Author", "Body", "Status", "Submitted At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, entry := range entries {
		values := []interface{}{
			entry.ID.String(),
			entry.Article.Slug,
			entry.Article.Title,
			entry.AuthorName,
			entry.Body,
			string(entry.Status),
			entry.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("comments-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("failed to stream comment export")
	}
}

func (h *CommentHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	var commentErr *model.CommentError
	if errors.As(err, &commentErr) {
		switch {
		case errors.Is(commentErr, model.ErrCommentNotFound),
			errors.Is(commentErr, model.ErrArticleNotFound):
			response.ErrorResponse(c, http.StatusNotFound, commentErr.Code, commentErr.Message)
		case errors.Is(commentErr, model.ErrAlreadyModerated):
			response.ErrorResponse(c, http.StatusConflict, commentErr.Code, commentErr.Message)
		default:
			response.ErrorResponse(c, http.StatusBadRequest, commentErr.Code, commentErr.Message)
		}
		return
	}

	response.InternalServerError(c, "Something went wrong")
}
