package usecase

import (
	"context"

	"github.com/snackhub/catalog-backend/internal/domain"
)

type FindAllProductsUseCase struct {
	productRepo ProductRepository
}

func NewFindAllProductsUseCase(productRepo ProductRepository) *FindAllProductsUseCase {
	return &FindAllProductsUseCase{productRepo: productRepo}
}

func (uc *FindAllProductsUseCase) Execute(ctx context.Context) ([]*domain.Product, error) {
	return uc.productRepo.FindAll(ctx)
}
