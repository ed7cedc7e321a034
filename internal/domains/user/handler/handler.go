package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"fanzone-backend/internal/domains/user/model"
	"fanzone-backend/internal/domains/user/service"
	"fanzone-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates an account and returns an access token.
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	auth, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, auth)
}

// Login exchanges credentials for an access token.
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	auth, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	var userErr *model.UserError
	if errors.As(err, &userErr) {
		switch {
		case errors.Is(userErr, model.ErrEmailTaken):
			response.ErrorResponse(c, http.StatusConflict, userErr.Code, userErr.Message)
		case errors.Is(userErr, model.ErrInvalidCredentials):
			response.ErrorResponse(c, http.StatusUnauthorized, userErr.Code, userErr.Message)
		default:
			response.ErrorResponse(c, http.StatusBadRequest, userErr.Code, userErr.Message)
		}
		return
	}

	response.InternalServerError(c, "Something went wrong")
}
