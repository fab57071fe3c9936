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

// PublicHandler handles the unauthenticated storefront endpoints
type PublicHandler struct {
	menuUsecase         *usecases.MenuUsecase
	orderUsecase        *usecases.OrderUsecase
	registrationUsecase *usecases.RegistrationUsecase
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(
	menuUsecase *usecases.MenuUsecase,
	orderUsecase *usecases.OrderUsecase,
	registrationUsecase *usecases.RegistrationUsecase,
) *PublicHandler {
	return &PublicHandler{
		menuUsecase:         menuUsecase,
		orderUsecase:        orderUsecase,
		registrationUsecase: registrationUsecase,
	}
}

// GetMenu returns the active menu of an active restaurant
// GET /api/v1/public/restaurants/:slug/menu
func (h *PublicHandler) GetMenu(c *gin.Context) {
	slug := c.Param("slug")

	menu, err := h.menuUsecase.GetMenuBySlug(c.Request.Context(), slug)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Restaurant not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, menu)
}

// CreateOrder handles storefront checkout
// POST /api/v1/public/restaurants/:slug/orders
func (h *PublicHandler) CreateOrder(c *gin.Context) {
	slug := c.Param("slug")

	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.orderUsecase.CreateOrder(c.Request.Context(), slug, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Restaurant not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// MarkOrderSent confirms the WhatsApp handoff. The storefront fires this
// right before opening the deep link, so it never hard-fails on unknown ids.
// POST /api/v1/public/orders/:orderId/mark-sent
func (h *PublicHandler) MarkOrderSent(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order id"))
		return
	}

	status, err := h.orderUsecase.MarkSent(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"order_id": orderID,
		"status":   status,
	})
}

// RegisterMerchant handles merchant self-service registration
// POST /api/v1/public/merchants/register
func (h *PublicHandler) RegisterMerchant(c *gin.Context) {
	var input entities.RegisterMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.registrationUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}
