package usecase

import (
	"context"
	"strings"

	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/pkg/e"
)

// FindProductsByNameUseCase ищет продукты по подстроке имени.
// Регистронезависимость — забота адаптера хранилища.
type FindProductsByNameUseCase struct {
	productRepo ProductRepository
}

func NewFindProductsByNameUseCase(productRepo ProductRepository) *FindProductsByNameUseCase {
	return &FindProductsByNameUseCase{productRepo: productRepo}
}

func (uc *FindProductsByNameUseCase) Execute(ctx context.Context, name string) ([]*domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, e.ErrNameRequired
	}

	return uc.productRepo.FindByNameContaining(ctx, name)
}
