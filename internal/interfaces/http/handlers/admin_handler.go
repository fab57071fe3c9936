package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/interfaces/http/middleware"
	"orderlink.backend/internal/interfaces/http/response"
	"orderlink.backend/internal/usecases"
)

// AdminHandler handles the merchant panel endpoints. Every route sits
// behind AuthMiddleware and RequireMerchant, so the merchant id is always
// present in the gin context.
type AdminHandler struct {
	catalogUsecase *usecases.CatalogUsecase
	orderUsecase   *usecases.OrderUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalogUsecase *usecases.CatalogUsecase, orderUsecase *usecases.OrderUsecase) *AdminHandler {
	return &AdminHandler{
		catalogUsecase: catalogUsecase,
		orderUsecase:   orderUsecase,
	}
}

// GetRestaurant returns the merchant's settings
// GET /api/v1/admin/restaurant
func (h *AdminHandler) GetRestaurant(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	merchant, err := h.catalogUsecase.GetRestaurant(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchant)
}

// UpdateRestaurant applies a partial settings update
// PUT /api/v1/admin/restaurant
func (h *AdminHandler) UpdateRestaurant(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	var input entities.UpdateMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchant, err := h.catalogUsecase.UpdateRestaurant(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchant)
}

// ListCategories lists the merchant's categories
// GET /api/v1/admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	categories, err := h.catalogUsecase.ListCategories(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// CreateCategory creates a category
// POST /api/v1/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	var input entities.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.catalogUsecase.CreateCategory(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, category)
}

// UpdateCategory updates a category
// PUT /api/v1/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid category id"))
		return
	}

	var input entities.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.catalogUsecase.UpdateCategory(c.Request.Context(), merchantID, categoryID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

// DeleteCategory soft-deletes a category and its products
// DELETE /api/v1/admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid category id"))
		return
	}

	if err := h.catalogUsecase.DeleteCategory(c.Request.Context(), merchantID, categoryID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Category deleted",
	})
}

// ListProducts lists the merchant's products
// GET /api/v1/admin/products
func (h *AdminHandler) ListProducts(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	products, err := h.catalogUsecase.ListProducts(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// CreateProduct creates a product
// POST /api/v1/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	var input entities.CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.catalogUsecase.CreateProduct(c.Request.Context(), merchantID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Category not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// UpdateProduct updates a product
// PUT /api/v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product id"))
		return
	}

	var input entities.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.catalogUsecase.UpdateProduct(c.Request.Context(), merchantID, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// DeleteProduct soft-deletes a product
// DELETE /api/v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product id"))
		return
	}

	if err := h.catalogUsecase.DeleteProduct(c.Request.Context(), merchantID, productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Product deleted",
	})
}

// ListOrders lists the merchant's orders with optional filters
// GET /api/v1/admin/orders?status=&from=&to=
func (h *AdminHandler) ListOrders(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	var filter entities.OrderFilter
	if status := c.Query("status"); status != "" {
		filter.Status = entities.OrderStatus(status)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid from timestamp, expected RFC3339"))
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid to timestamp, expected RFC3339"))
			return
		}
		filter.To = &t
	}

	orders, err := h.orderUsecase.ListOrders(c.Request.Context(), merchantID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order with its lines
// GET /api/v1/admin/orders/:id
func (h *AdminHandler) GetOrder(c *gin.Context) {
	merchantID, _ := middleware.GetMerchantID(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order id"))
		return
	}

	order, err := h.orderUsecase.GetOrder(c.Request.Context(), merchantID, orderID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Order not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}
