package usecase

import (
	"context"

	"github.com/snackhub/catalog-backend/internal/domain"
)

type FindProductsOnPromotionUseCase struct {
	productRepo ProductRepository
}

func NewFindProductsOnPromotionUseCase(productRepo ProductRepository) *FindProductsOnPromotionUseCase {
	return &FindProductsOnPromotionUseCase{productRepo: productRepo}
}

func (uc *FindProductsOnPromotionUseCase) Execute(ctx context.Context) ([]*domain.Product, error) {
	return uc.productRepo.FindByOnPromotion(ctx, true)
}
