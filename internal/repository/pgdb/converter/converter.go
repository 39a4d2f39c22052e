package converter

import (
	"github.com/shopspring/decimal"
	"github.com/snackhub/catalog-backend/internal/domain"
)

// ProductConverter преобразует сущность Product между domain и моделью PostgreSQL.
// Восстановление идёт через валидирующий конструктор сущности, поэтому
// невалидная запись хранилища не может превратиться в невалидный Product.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) (*domain.Product, error)
}

type productConverter struct{}

func NewProductConverter() ProductConverter {
	return &productConverter{}
}

func (c *productConverter) ToModel(entity *domain.Product) *ProductModel {
	model := &ProductModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		PriceCents:  DecimalToCents(entity.Price()),
		Category:    entity.Category(),
		OnPromotion: entity.OnPromotion(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}

	if promo := entity.PromotionPrice(); promo != nil {
		cents := DecimalToCents(*promo)
		model.PromotionPriceCents = &cents
	}

	return model
}

func (c *productConverter) ToEntity(model *ProductModel) (*domain.Product, error) {
	var promotionPrice *decimal.Decimal
	if model.PromotionPriceCents != nil {
		price := CentsToDecimal(*model.PromotionPriceCents)
		promotionPrice = &price
	}

	return domain.RestoreProduct(
		model.ID,
		model.Name,
		model.Description,
		CentsToDecimal(model.PriceCents),
		model.Category,
		model.OnPromotion,
		promotionPrice,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// DecimalToCents переводит денежную сумму в копейки с округлением до целого.
func DecimalToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// CentsToDecimal переводит копейки обратно в денежную сумму.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
