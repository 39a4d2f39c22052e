package usecase

import (
	"context"
	"strings"

	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/pkg/e"
)

// FindProductByIDUseCase возвращает продукт по идентификатору
// либо (nil, nil), когда продукта нет.
type FindProductByIDUseCase struct {
	productRepo ProductRepository
}

func NewFindProductByIDUseCase(productRepo ProductRepository) *FindProductByIDUseCase {
	return &FindProductByIDUseCase{productRepo: productRepo}
}

func (uc *FindProductByIDUseCase) Execute(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, e.ErrIDRequired
	}

	return uc.productRepo.FindByID(ctx, id)
}
