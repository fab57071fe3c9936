package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/interfaces/http/response"
	"orderlink.backend/internal/usecases"
)

// MerchantHandler handles the back-office endpoints behind the static
// admin key: direct merchant and panel user management.
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
	authUsecase     *usecases.AuthUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase, authUsecase *usecases.AuthUsecase) *MerchantHandler {
	return &MerchantHandler{
		merchantUsecase: merchantUsecase,
		authUsecase:     authUsecase,
	}
}

// CreateMerchant creates a merchant without a linked user
// POST /api/v1/merchants
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var input entities.CreateMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchant, err := h.merchantUsecase.CreateMerchant(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, merchant)
}

// ListMerchants lists every merchant
// GET /api/v1/merchants
func (h *MerchantHandler) ListMerchants(c *gin.Context) {
	merchants, err := h.merchantUsecase.ListMerchants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchants)
}

// CreateUser creates a panel user, optionally linked to a merchant
// POST /api/v1/users
func (h *MerchantHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// DeactivateUser soft-deletes a panel user
// DELETE /api/v1/users/:id
func (h *MerchantHandler) DeactivateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user id"))
		return
	}

	if err := h.authUsecase.DeactivateUser(c.Request.Context(), userID); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "User deactivated",
	})
}
