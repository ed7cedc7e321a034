package handler

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fanzone-backend/internal/domains/canvas/model"
	"fanzone-backend/internal/domains/canvas/service"
	"fanzone-backend/internal/shared/response"
)

type CanvasHandler struct {
	canvasService service.ServiceInterface
}

func NewCanvasHandler(canvasService service.ServiceInterface) *CanvasHandler {
	return &CanvasHandler{canvasService: canvasService}
}

// Create makes a new canvas.
// POST /api/v1/canvases
func (h *CanvasHandler) Create(c *gin.Context) {
	var req model.CreateCanvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	canvas, err := h.canvasService.CreateCanvas(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, canvas)
}

// Get returns a single canvas.
// GET /api/v1/canvases/:id
func (h *CanvasHandler) Get(c *gin.Context) {
	canvasID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid canvas id")
		return
	}

	canvas, err := h.canvasService.GetCanvas(c.Request.Context(), canvasID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, canvas)
}

// List returns canvases newest first.
// GET /api/v1/canvases
func (h *CanvasHandler) List(c *gin.Context) {
	canvases, err := h.canvasService.ListCanvases(c.Request.Context(), 0)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, canvases)
}

// CreatePost creates a post inside a canvas. The declared content type
// picks the submission variant: JSON for TEXT, multipart for media.
// POST /api/v1/canvases/:id/posts
func (h *CanvasHandler) CreatePost(c *gin.Context) {
	canvasID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid canvas id")
		return
	}

	submission, err := h.decodeSubmission(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	post, err := h.canvasService.CreatePost(c.Request.Context(), canvasID, submission)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// ListPosts returns a canvas's posts newest first.
// GET /api/v1/canvases/:id/posts
func (h *CanvasHandler) ListPosts(c *gin.Context) {
	canvasID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid canvas id")
		return
	}

	posts, err := h.canvasService.ListPosts(c.Request.Context(), canvasID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// decodeSubmission resolves the tagged union once, at the boundary.
func (h *CanvasHandler) decodeSubmission(c *gin.Context) (model.PostSubmission, error) {
	contentType := c.ContentType()

	switch {
	case contentType == "application/json":
		var sub model.TextSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			return nil, validation.Errors{"body": errors.New("invalid JSON body")}
		}
		return sub, nil

	case strings.HasPrefix(contentType, "multipart/form-data"):
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return nil, validation.Errors{"file": errors.New("file is required")}
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, validation.Errors{"file": errors.New("file could not be read")}
		}
		// Closed by gin when the request finishes; the multipart temp
		// file is cleaned up with the form.
		mimeType := fileHeader.Header.Get("Content-Type")
		if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
			mimeType = parsed
		}

		return model.MediaSubmission{
			Type:     c.PostForm("type"),
			FileName: fileHeader.Filename,
			MimeType: mimeType,
			Size:     fileHeader.Size,
			Reader:   file,
		}, nil

	default:
		return nil, model.NewUnsupportedShapeError()
	}
}

func (h *CanvasHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	var canvasErr *model.CanvasError
	if errors.As(err, &canvasErr) {
		switch {
		case errors.Is(canvasErr, model.ErrCanvasNotFound):
			response.ErrorResponse(c, http.StatusNotFound, canvasErr.Code, canvasErr.Message)
		case errors.Is(canvasErr, model.ErrFileTooLarge):
			response.PayloadTooLarge(c, canvasErr.Message)
		case errors.Is(canvasErr, model.ErrUnsupportedShape):
			response.UnsupportedMediaType(c, canvasErr.Message)
		default:
			response.ErrorResponse(c, http.StatusBadRequest, canvasErr.Code, canvasErr.Message)
		}
		return
	}

	response.InternalServerError(c, "Something went wrong")
}
