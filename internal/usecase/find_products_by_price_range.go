package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/pkg/e"
)

// FindProductsByCategoryAndPriceRangeUseCase ищет продукты категории в диапазоне
// цен через нативный запрос хранилища (BETWEEN).
type FindProductsByCategoryAndPriceRangeUseCase struct {
	productRepo ProductRepository
}

func NewFindProductsByCategoryAndPriceRangeUseCase(productRepo ProductRepository) *FindProductsByCategoryAndPriceRangeUseCase {
	return &FindProductsByCategoryAndPriceRangeUseCase{productRepo: productRepo}
}

func (uc *FindProductsByCategoryAndPriceRangeUseCase) Execute(ctx context.Context, req *PriceRangeReq) ([]*domain.Product, error) {
	if err := uc.validateParameters(req); err != nil {
		return nil, err
	}

	return uc.productRepo.FindByCategoryAndPriceBetween(ctx, req.Category, *req.MinPrice, *req.MaxPrice)
}

// Порядок проверок фиксирован контрактом сообщений об ошибках:
// категория, минимальная цена, максимальная цена, согласованность границ.
func (uc *FindProductsByCategoryAndPriceRangeUseCase) validateParameters(req *PriceRangeReq) error {
	if strings.TrimSpace(req.Category) == "" {
		return e.ErrCategoryRequired
	}
	if req.MinPrice == nil || req.MinPrice.IsNegative() {
		return e.ErrMinPriceNegative
	}
	if req.MaxPrice == nil || req.MaxPrice.LessThanOrEqual(decimal.Zero) {
		return e.ErrMaxPriceNotPositive
	}
	if req.MinPrice.GreaterThan(*req.MaxPrice) {
		return e.ErrMinPriceGreaterThanMax
	}

	return nil
}
