package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/pkg/logger"
)

// ProductService агрегирует юзкейсы каталога и переводит DTO <-> сущность.
// Сами юзкейсы остаются чистым слоем "валидация + делегирование": публикация
// событий и логирование происходят только здесь.
type ProductService struct {
	createProduct           *CreateProductUseCase
	findProductByID         *FindProductByIDUseCase
	findAllProducts         *FindAllProductsUseCase
	deleteProductByID       *DeleteProductByIDUseCase
	findProductsByCategory  *FindProductsByCategoryUseCase
	findProductsByName      *FindProductsByNameUseCase
	findProductsOnPromotion *FindProductsOnPromotionUseCase
	findByPriceRange        *FindProductsByCategoryAndPriceRangeUseCase
	findByPriceRangeManual  *FindProductsByCategoryAndPriceRangeManualUseCase
	events                  EventsInfra
	logger                  logger.Logger
}

func NewProductService(productRepo ProductRepository, events EventsInfra, logger logger.Logger) *ProductService {
	return &ProductService{
		createProduct:           NewCreateProductUseCase(productRepo),
		findProductByID:         NewFindProductByIDUseCase(productRepo),
		findAllProducts:         NewFindAllProductsUseCase(productRepo),
		deleteProductByID:       NewDeleteProductByIDUseCase(productRepo),
		findProductsByCategory:  NewFindProductsByCategoryUseCase(productRepo),
		findProductsByName:      NewFindProductsByNameUseCase(productRepo),
		findProductsOnPromotion: NewFindProductsOnPromotionUseCase(productRepo),
		findByPriceRange:        NewFindProductsByCategoryAndPriceRangeUseCase(productRepo),
		findByPriceRangeManual:  NewFindProductsByCategoryAndPriceRangeManualUseCase(productRepo),
		events:                  events,
		logger:                  logger,
	}
}

// CreateProduct создаёт продукт из запроса и после успешного сохранения
// публикует событие product.created. Ошибка публикации не отменяет создание.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductRes, error) {
	product, err := domain.NewProduct(req.Name, req.Description, req.Price, req.Category)
	if err != nil {
		return nil, err
	}

	saved, err := s.createProduct.Execute(ctx, product)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, EventProductCreated, saved.ID())

	return NewProductRes(saved), nil
}

// FindProductByID возвращает (nil, nil), когда продукта нет: отсутствие при
// чтении — не ошибка.
func (s *ProductService) FindProductByID(ctx context.Context, id string) (*ProductRes, error) {
	product, err := s.findProductByID.Execute(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	return NewProductRes(product), nil
}

func (s *ProductService) FindAllProducts(ctx context.Context) ([]*ProductRes, error) {
	products, err := s.findAllProducts.Execute(ctx)
	if err != nil {
		return nil, err
	}

	return NewArrProductRes(products), nil
}

func (s *ProductService) DeleteProductByID(ctx context.Context, id string) error {
	if err := s.deleteProductByID.Execute(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, EventProductDeleted, id)

	return nil
}

func (s *ProductService) FindProductsByCategory(ctx context.Context, category string) ([]*ProductRes, error) {
	products, err := s.findProductsByCategory.Execute(ctx, category)
	if err != nil {
		return nil, err
	}

	return NewArrProductRes(products), nil
}

func (s *ProductService) FindProductsOnPromotion(ctx context.Context) ([]*ProductRes, error) {
	products, err := s.findProductsOnPromotion.Execute(ctx)
	if err != nil {
		return nil, err
	}

	return NewArrProductRes(products), nil
}

func (s *ProductService) FindProductsByName(ctx context.Context, name string) ([]*ProductRes, error) {
	products, err := s.findProductsByName.Execute(ctx, name)
	if err != nil {
		return nil, err
	}

	return NewArrProductRes(products), nil
}

func (s *ProductService) FindProductsByCategoryAndPriceRange(ctx context.Context, req *PriceRangeReq) ([]*ProductRes, error) {
	products, err := s.findByPriceRange.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	return NewArrProductRes(products), nil
}

func (s *ProductService) FindProductsByCategoryAndPriceRangeManual(ctx context.Context, req *PriceRangeReq) ([]*ProductRes, error) {
	products, err := s.findByPriceRangeManual.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	return NewArrProductRes(products), nil
}

// publishEvent отправляет событие изменения каталога best-effort:
// неудача логируется и не влияет на результат операции.
func (s *ProductService) publishEvent(ctx context.Context, eventType, productID string) {
	req := NewProductEventReq(uuid.NewString(), eventType, productID, time.Now().UTC())
	if err := s.events.WriteProductEvent(ctx, req); err != nil {
		s.logger.Warnf("Failed to publish %s event for product %s: %v", eventType, productID, err)
	}
}
