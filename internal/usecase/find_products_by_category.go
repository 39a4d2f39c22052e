package usecase

import (
	"context"
	"strings"

	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/pkg/e"
)

type FindProductsByCategoryUseCase struct {
	productRepo ProductRepository
}

func NewFindProductsByCategoryUseCase(productRepo ProductRepository) *FindProductsByCategoryUseCase {
	return &FindProductsByCategoryUseCase{productRepo: productRepo}
}

func (uc *FindProductsByCategoryUseCase) Execute(ctx context.Context, category string) ([]*domain.Product, error) {
	if strings.TrimSpace(category) == "" {
		return nil, e.ErrCategoryRequired
	}

	return uc.productRepo.FindByCategory(ctx, category)
}
