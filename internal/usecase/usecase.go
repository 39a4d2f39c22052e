package usecase

import "context"

// ProductUC — фасад каталога, единственная точка входа транспортного слоя.
type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductRes, error)
	FindProductByID(ctx context.Context, id string) (*ProductRes, error)
	FindAllProducts(ctx context.Context) ([]*ProductRes, error)
	DeleteProductByID(ctx context.Context, id string) error
	FindProductsByCategory(ctx context.Context, category string) ([]*ProductRes, error)
	FindProductsOnPromotion(ctx context.Context) ([]*ProductRes, error)
	FindProductsByName(ctx context.Context, name string) ([]*ProductRes, error)
	FindProductsByCategoryAndPriceRange(ctx context.Context, req *PriceRangeReq) ([]*ProductRes, error)
	FindProductsByCategoryAndPriceRangeManual(ctx context.Context, req *PriceRangeReq) ([]*ProductRes, error)
}
