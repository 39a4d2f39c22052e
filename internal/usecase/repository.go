package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/snackhub/catalog-backend/internal/domain"
)

// ProductRepository — порт хранилища продуктов. Конкретная реализация живёт
// в адаптере хранения и внедряется при сборке приложения.
// Операции чтения возвращают (nil, nil), когда продукт не найден.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	DeleteByID(ctx context.Context, id string) error
	FindByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	FindByOnPromotion(ctx context.Context, onPromotion bool) ([]*domain.Product, error)
	FindByNameContaining(ctx context.Context, name string) ([]*domain.Product, error)
	FindByCategoryAndPriceBetween(ctx context.Context, category string, minPrice, maxPrice decimal.Decimal) ([]*domain.Product, error)
	// FindByCategoryAndPriceRangeManual семантически идентичен
	// FindByCategoryAndPriceBetween, но обязан выполняться через явно
	// построенный запрос. Оба метода возвращают одинаковый результат
	// для одинаковых аргументов.
	FindByCategoryAndPriceRangeManual(ctx context.Context, category string, minPrice, maxPrice decimal.Decimal) ([]*domain.Product, error)
}
