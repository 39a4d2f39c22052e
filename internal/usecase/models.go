package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/snackhub/catalog-backend/internal/domain"
)

// Типы событий изменения каталога.
const (
	EventProductCreated = "product.created"
	EventProductDeleted = "product.deleted"
)

// CreateProductReq — запрос на создание продукта.
type CreateProductReq struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
}

// PriceRangeReq — параметры поиска по категории и диапазону цен.
// Нулевые указатели означают отсутствующий параметр и отклоняются валидацией юзкейса.
type PriceRangeReq struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRes — DTO продукта для внешнего использования.
// EffectivePrice не хранится: он пересчитывается из сущности при сборке ответа.
type ProductRes struct {
	ID             string
	Name           string
	Description    string
	Price          decimal.Decimal
	Category       string
	OnPromotion    bool
	PromotionPrice *decimal.Decimal
	EffectivePrice decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductEventReq — событие изменения продукта для шины сообщений.
type ProductEventReq struct {
	EventID    string
	EventType  string
	ProductID  string
	OccurredAt time.Time
}

// MAPPERS

func NewCreateProductReq(name, description string, price decimal.Decimal, category string) *CreateProductReq {
	return &CreateProductReq{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
	}
}

func NewPriceRangeReq(category string, minPrice, maxPrice *decimal.Decimal) *PriceRangeReq {
	return &PriceRangeReq{
		Category: category,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}
}

func NewProductRes(product *domain.Product) *ProductRes {
	return &ProductRes{
		ID:             product.ID(),
		Name:           product.Name(),
		Description:    product.Description(),
		Price:          product.Price(),
		Category:       product.Category(),
		OnPromotion:    product.OnPromotion(),
		PromotionPrice: product.PromotionPrice(),
		EffectivePrice: product.EffectivePrice(),
		CreatedAt:      product.CreatedAt(),
		UpdatedAt:      product.UpdatedAt(),
	}
}

func NewArrProductRes(products []*domain.Product) []*ProductRes {
	result := make([]*ProductRes, 0, len(products))
	for _, product := range products {
		result = append(result, NewProductRes(product))
	}

	return result
}

func NewProductEventReq(eventID, eventType, productID string, occurredAt time.Time) *ProductEventReq {
	return &ProductEventReq{
		EventID:    eventID,
		EventType:  eventType,
		ProductID:  productID,
		OccurredAt: occurredAt,
	}
}
