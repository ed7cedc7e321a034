package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fanzone-backend/internal/domains/media/model"
	"fanzone-backend/internal/domains/media/service"
	"fanzone-backend/internal/shared/response"
)

type MediaHandler struct {
	mediaService service.ServiceInterface
}

func NewMediaHandler(mediaService service.ServiceInterface) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Presign registers an asset and returns the upload target.
// POST /api/v1/media/presign
func (h *MediaHandler) Presign(c *gin.Context) {
	var req model.RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	presign, err := h.mediaService.RegisterAsset(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, presign)
}

// UploadBytes accepts the raw byte stream for a registered asset.
// The body is written verbatim; nothing is re-validated here.
// PUT /api/v1/uploads/:id
func (h *MediaHandler) UploadBytes(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid asset id")
		return
	}

	err = h.mediaService.AcceptBytes(c.Request.Context(), assetID, c.Request.Body, c.Request.ContentLength)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Finalize promotes the asset to READY.
// POST /api/v1/media/:id/finalize
func (h *MediaHandler) Finalize(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid asset id")
		return
	}

	// The body is optional; an absent body means no dimensions.
	var req model.FinalizeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid JSON body")
			return
		}
	}

	asset, err := h.mediaService.Finalize(c.Request.Context(), assetID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, asset)
}

// AdminList lists assets for operations.
// GET /api/v1/admin/media?status=&limit=
func (h *MediaHandler) AdminList(c *gin.Context) {
	var req model.ListAssetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	assets, err := h.mediaService.ListAssets(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, assets)
}

func (h *MediaHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	var mediaErr *model.MediaError
	if errors.As(err, &mediaErr) {
		switch {
		case errors.Is(mediaErr, model.ErrAssetNotFound):
			response.ErrorResponse(c, http.StatusNotFound, mediaErr.Code, mediaErr.Message)
		case errors.Is(mediaErr, model.ErrBytesMissing):
			response.ErrorResponse(c, http.StatusBadRequest, mediaErr.Code, mediaErr.Message)
		default:
			response.ErrorResponse(c, http.StatusBadRequest, mediaErr.Code, mediaErr.Message)
		}
		return
	}

	response.InternalServerError(c, "Something went wrong")
}
