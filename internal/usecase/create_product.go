package usecase

import (
	"context"

	"github.com/snackhub/catalog-backend/internal/domain"
)

// CreateProductUseCase сохраняет новый продукт. Собственной валидации нет:
// всё, что нужно, уже гарантировал конструктор сущности.
type CreateProductUseCase struct {
	productRepo ProductRepository
}

func NewCreateProductUseCase(productRepo ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return uc.productRepo.Save(ctx, product)
}
