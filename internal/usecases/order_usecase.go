package usecases

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/domain/repositories"
	"orderlink.backend/pkg/logger"
	"orderlink.backend/pkg/whatsapp"
)

// OrderUsecase handles the public checkout flow and the admin order views
type OrderUsecase struct {
	merchantRepo repositories.MerchantRepository
	itemRepo     repositories.ItemRepository
	orderRepo    repositories.OrderRepository
	uow          repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	merchantRepo repositories.MerchantRepository,
	itemRepo repositories.ItemRepository,
	orderRepo repositories.OrderRepository,
	uow repositories.UnitOfWork,
) *OrderUsecase {
	return &OrderUsecase{
		merchantRepo: merchantRepo,
		itemRepo:     itemRepo,
		orderRepo:    orderRepo,
		uow:          uow,
	}
}

// CreateOrder takes a checkout request against an active merchant, snapshots
// the current catalog prices into order lines, persists the order atomically
// with a fresh short code, then stores the wa.me handoff link on it.
func (u *OrderUsecase) CreateOrder(ctx context.Context, slug string, input *entities.CreateOrderInput) (*entities.CreateOrderResponse, error) {
	merchant, err := u.merchantRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	address := strings.TrimSpace(input.DeliveryAddress)
	if input.Delivery == entities.DeliveryDelivery && address == "" {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, "delivery_address is required for delivery orders", domainerrors.ErrAddressRequired)
	}

	// Validate the whole cart against the active catalog before writing
	// anything. A single missing or inactive product rejects the order.
	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, line := range input.Items {
		ids = append(ids, line.ProductID)
	}
	products, err := u.itemRepo.ListActiveByIDs(ctx, merchant.ID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entities.Item, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, line := range input.Items {
		if _, ok := byID[line.ProductID]; !ok {
			return nil, domainerrors.NewAppError(http.StatusBadRequest, "one or more products are unavailable", domainerrors.ErrInvalidProduct)
		}
	}

	order := &entities.Order{
		MerchantID:      merchant.ID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		Delivery:        input.Delivery,
		DeliveryAddress: null.NewString(address, address != ""),
		Notes:           null.NewString(input.Notes, input.Notes != ""),
		Status:          entities.OrderStatusCreated,
	}
	for _, line := range input.Items {
		product := byID[line.ProductID]
		lineTotal := int64(line.Qty) * product.PriceCents
		order.Items = append(order.Items, entities.OrderItem{
			ItemID:         product.ID,
			ProductName:    product.Name,
			Qty:            line.Qty,
			Notes:          null.NewString(line.Notes, line.Notes != ""),
			UnitPriceCents: product.PriceCents,
			LineTotalCents: lineTotal,
		})
		order.TotalCents += lineTotal
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		shortCode, err := u.orderRepo.NextShortCode(txCtx, merchant.ID)
		if err != nil {
			return err
		}
		order.ShortCode = shortCode
		return u.orderRepo.Create(txCtx, order)
	})
	if err != nil {
		return nil, err
	}

	msg := whatsapp.Message{
		RestaurantName:  merchant.Name,
		OrderNumber:     order.OrderNumber(),
		OrderID:         order.ID.String(),
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		Delivery:        string(order.Delivery),
		DeliveryAddress: order.DeliveryAddress.String,
		Notes:           order.Notes.String,
		Currency:        merchant.Currency,
		TotalCents:      order.TotalCents,
	}
	for _, line := range order.Items {
		msg.Lines = append(msg.Lines, whatsapp.MessageLine{
			Qty:            line.Qty,
			Name:           line.ProductName,
			Notes:          line.Notes.String,
			LineTotalCents: line.LineTotalCents,
		})
	}
	link, err := whatsapp.BuildLink(merchant.WhatsappPhone, msg)
	if err != nil {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, "restaurant whatsapp phone is invalid", domainerrors.ErrInvalidPhone)
	}

	if err := u.orderRepo.SetWhatsappURL(ctx, order.ID, link); err != nil {
		return nil, err
	}
	order.WhatsappURL = null.StringFrom(link)
	order.Status = entities.OrderStatusSentToWhatsapp

	logger.Info(ctx, "order created",
		zap.String("merchant_id", merchant.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber()),
		zap.Int64("total_cents", order.TotalCents))

	return &entities.CreateOrderResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber(),
		WhatsappURL: link,
		Status:      string(order.Status),
	}, nil
}

// MarkSent confirms the customer opened the WhatsApp handoff. The endpoint
// is fire-and-forget on the storefront, so an unknown id reports a status
// instead of failing.
func (u *OrderUsecase) MarkSent(ctx context.Context, orderID uuid.UUID) (string, error) {
	found, err := u.orderRepo.MarkSent(ctx, orderID)
	if err != nil {
		return "", err
	}
	if !found {
		return "not_found", nil
	}
	return "ok", nil
}

// ListOrders lists a merchant's orders, newest first
func (u *OrderUsecase) ListOrders(ctx context.Context, merchantID uuid.UUID, filter entities.OrderFilter) ([]*entities.Order, error) {
	return u.orderRepo.List(ctx, merchantID, filter)
}

// GetOrder gets one order with its lines, scoped to the merchant
func (u *OrderUsecase) GetOrder(ctx context.Context, merchantID, orderID uuid.UUID) (*entities.Order, error) {
	return u.orderRepo.GetByID(ctx, merchantID, orderID)
}
