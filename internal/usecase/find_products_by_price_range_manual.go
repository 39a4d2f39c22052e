package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/pkg/e"
)

// FindProductsByCategoryAndPriceRangeManualUseCase — та же семантика, что и у
// нативного варианта, но поверх явно построенного запроса. Оба варианта обязаны
// возвращать идентичный результат и идентичные ошибки для одинаковых входов,
// поэтому правила валидации продублированы дословно.
type FindProductsByCategoryAndPriceRangeManualUseCase struct {
	productRepo ProductRepository
}

func NewFindProductsByCategoryAndPriceRangeManualUseCase(productRepo ProductRepository) *FindProductsByCategoryAndPriceRangeManualUseCase {
	return &FindProductsByCategoryAndPriceRangeManualUseCase{productRepo: productRepo}
}

func (uc *FindProductsByCategoryAndPriceRangeManualUseCase) Execute(ctx context.Context, req *PriceRangeReq) ([]*domain.Product, error) {
	if err := uc.validateParameters(req); err != nil {
		return nil, err
	}

	return uc.productRepo.FindByCategoryAndPriceRangeManual(ctx, req.Category, *req.MinPrice, *req.MaxPrice)
}

func (uc *FindProductsByCategoryAndPriceRangeManualUseCase) validateParameters(req *PriceRangeReq) error {
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
