package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/infrastructure/models"
)

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists an order with its line items. Run inside a UnitOfWork so
// the short code assignment and both writes commit together.
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	m := &models.Order{
		ID:              order.ID,
		MerchantID:      order.MerchantID,
		ShortCode:       order.ShortCode,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		Delivery:        string(order.Delivery),
		DeliveryAddress: order.DeliveryAddress.Ptr(),
		Notes:           order.Notes.Ptr(),
		Status:          string(order.Status),
		TotalCents:      order.TotalCents,
		WhatsappURL:     order.WhatsappURL.Ptr(),
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt

	for i := range order.Items {
		line := &order.Items[i]
		if line.ID == uuid.Nil {
			line.ID = uuid.New()
		}
		line.OrderID = order.ID
		im := &models.OrderItem{
			ID:             line.ID,
			OrderID:        order.ID,
			ItemID:         line.ItemID,
			Qty:            line.Qty,
			Notes:          line.Notes.Ptr(),
			UnitPriceCents: line.UnitPriceCents,
			LineTotalCents: line.LineTotalCents,
		}
		if err := db.Create(im).Error; err != nil {
			return err
		}
	}
	return nil
}

// NextShortCode returns the next per-merchant sequential order code
func (r *OrderRepository) NextShortCode(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	var next int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("merchant_id = ?", merchantID).
		Select("COALESCE(MAX(short_code), 0) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// SetWhatsappURL stores the deep link and flips the status to sent_to_whatsapp
func (r *OrderRepository) SetWhatsappURL(ctx context.Context, id uuid.UUID, url string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"whatsapp_url": url,
			"status":       string(entities.OrderStatusSentToWhatsapp),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkSent flips the status and reports whether the order existed
func (r *OrderRepository) MarkSent(ctx context.Context, id uuid.UUID) (bool, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", string(entities.OrderStatusSentToWhatsapp))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByID gets an order with its lines, scoped to a merchant
func (r *OrderRepository) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	order := toOrderEntity(&m)
	if err := r.attachItems(ctx, []*entities.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

// List lists a merchant's orders, newest first, with optional filters
func (r *OrderRepository) List(ctx context.Context, merchantID uuid.UUID, filter entities.OrderFilter) ([]*entities.Order, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var orderModels []models.Order
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderEntity(&orderModels[i]))
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads line items for the given orders and resolves product
// names from the catalog. Inactive products still resolve; historical
// lines must stay intact.
func (r *OrderRepository) attachItems(ctx context.Context, orders []*entities.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	byID := make(map[uuid.UUID]*entities.Order, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
		byID[o.ID] = o
	}

	var lineModels []models.OrderItem
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("created_at ASC").
		Find(&lineModels).Error
	if err != nil {
		return err
	}

	itemIDs := make([]uuid.UUID, 0, len(lineModels))
	seen := make(map[uuid.UUID]bool, len(lineModels))
	for i := range lineModels {
		if !seen[lineModels[i].ItemID] {
			seen[lineModels[i].ItemID] = true
			itemIDs = append(itemIDs, lineModels[i].ItemID)
		}
	}

	names := make(map[uuid.UUID]string, len(itemIDs))
	if len(itemIDs) > 0 {
		var itemModels []models.Item
		if err := GetDB(ctx, r.db).WithContext(ctx).Where("id IN ?", itemIDs).Find(&itemModels).Error; err != nil {
			return err
		}
		for i := range itemModels {
			names[itemModels[i].ID] = itemModels[i].Name
		}
	}

	for i := range lineModels {
		lm := &lineModels[i]
		order, ok := byID[lm.OrderID]
		if !ok {
			continue
		}
		order.Items = append(order.Items, entities.OrderItem{
			ID:             lm.ID,
			OrderID:        lm.OrderID,
			ItemID:         lm.ItemID,
			ProductName:    names[lm.ItemID],
			Qty:            lm.Qty,
			Notes:          null.StringFromPtr(lm.Notes),
			UnitPriceCents: lm.UnitPriceCents,
			LineTotalCents: lm.LineTotalCents,
		})
	}
	return nil
}

func toOrderEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:              m.ID,
		MerchantID:      m.MerchantID,
		ShortCode:       m.ShortCode,
		CustomerName:    m.CustomerName,
		CustomerPhone:   m.CustomerPhone,
		Delivery:        entities.DeliveryType(m.Delivery),
		DeliveryAddress: null.StringFromPtr(m.DeliveryAddress),
		Notes:           null.StringFromPtr(m.Notes),
		Status:          entities.OrderStatus(m.Status),
		TotalCents:      m.TotalCents,
		WhatsappURL:     null.StringFromPtr(m.WhatsappURL),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
