package usecase

import (
	"context"
	"strings"

	"github.com/snackhub/catalog-backend/pkg/e"
)

// DeleteProductByIDUseCase удаляет продукт по идентификатору.
// Удаление отсутствующего продукта — ошибка, в отличие от чтения:
// сначала проверяется существование, и без него delete не вызывается.
type DeleteProductByIDUseCase struct {
	productRepo ProductRepository
}

func NewDeleteProductByIDUseCase(productRepo ProductRepository) *DeleteProductByIDUseCase {
	return &DeleteProductByIDUseCase{productRepo: productRepo}
}

func (uc *DeleteProductByIDUseCase) Execute(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return e.ErrIDRequired
	}

	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return e.ErrProductNotFound
	}

	return uc.productRepo.DeleteByID(ctx, id)
}
