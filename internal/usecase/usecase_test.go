package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/pkg/e"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func restoredProduct(t *testing.T, id string) *domain.Product {
	t.Helper()
	product, err := domain.RestoreProduct(id, "X-Burger", "desc", dec("25.90"), "LANCHE", false, nil, time.Time{}, time.Time{})
	require.NoError(t, err)
	return product
}

func TestCreateProductUseCase(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewCreateProductUseCase(repo)

	product, err := domain.NewProduct("X-Burger", "desc", dec("25.90"), "LANCHE")
	require.NoError(t, err)
	saved := restoredProduct(t, "id-1")

	repo.On("Save", mock.Anything, product).Return(saved, nil)

	got, err := uc.Execute(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID())
	repo.AssertExpectations(t)
}

func TestFindProductByIDUseCase(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewFindProductByIDUseCase(repo)
		saved := restoredProduct(t, "id-1")

		repo.On("FindByID", mock.Anything, "id-1").Return(saved, nil)

		got, err := uc.Execute(context.Background(), "id-1")
		require.NoError(t, err)
		assert.True(t, got.Equal(saved))
	})

	t.Run("not found is not an error", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewFindProductByIDUseCase(repo)

		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		got, err := uc.Execute(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("blank id", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewFindProductByIDUseCase(repo)

		got, err := uc.Execute(context.Background(), "   ")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, e.ErrIDRequired)
		assert.EqualError(t, err, "Id is required")
		repo.AssertNotCalled(t, "FindByID")
	})
}

func TestFindAllProductsUseCase(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewFindAllProductsUseCase(repo)
	products := []*domain.Product{restoredProduct(t, "id-1"), restoredProduct(t, "id-2")}

	repo.On("FindAll", mock.Anything).Return(products, nil)

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteProductByIDUseCase(t *testing.T) {
	t.Run("existing product is deleted", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewDeleteProductByIDUseCase(repo)
		saved := restoredProduct(t, "id-1")

		repo.On("FindByID", mock.Anything, "id-1").Return(saved, nil)
		repo.On("DeleteByID", mock.Anything, "id-1").Return(nil)

		require.NoError(t, uc.Execute(context.Background(), "id-1"))
		repo.AssertExpectations(t)
	})

	t.Run("missing product is an error, delete not attempted", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewDeleteProductByIDUseCase(repo)

		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		err := uc.Execute(context.Background(), "missing")
		assert.ErrorIs(t, err, e.ErrProductNotFound)
		assert.EqualError(t, err, "Product not found")
		repo.AssertNotCalled(t, "DeleteByID")
	})

	t.Run("blank id", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewDeleteProductByIDUseCase(repo)

		err := uc.Execute(context.Background(), "")
		assert.ErrorIs(t, err, e.ErrIDRequired)
		repo.AssertNotCalled(t, "FindByID")
		repo.AssertNotCalled(t, "DeleteByID")
	})

	t.Run("lookup error is passed through unchanged", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewDeleteProductByIDUseCase(repo)
		repoErr := fmt.Errorf("connection refused")

		repo.On("FindByID", mock.Anything, "id-1").Return(nil, repoErr)

		err := uc.Execute(context.Background(), "id-1")
		assert.ErrorIs(t, err, repoErr)
		repo.AssertNotCalled(t, "DeleteByID")
	})
}

func TestFindProductsByCategoryUseCase(t *testing.T) {
	t.Run("delegates to repository", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewFindProductsByCategoryUseCase(repo)
		products := []*domain.Product{restoredProduct(t, "id-1")}

		repo.On("FindByCategory", mock.Anything, "LANCHE").Return(products, nil)

		got, err := uc.Execute(context.Background(), "LANCHE")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("blank category", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewFindProductsByCategoryUseCase(repo)

		got, err := uc.Execute(context.Background(), "  ")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, e.ErrCategoryRequired)
		assert.EqualError(t, err, "Category is required")
		repo.AssertNotCalled(t, "FindByCategory")
	})
}

func TestFindProductsByNameUseCase(t *testing.T) {
	t.Run("delegates to repository", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewFindProductsByNameUseCase(repo)
		products := []*domain.Product{restoredProduct(t, "id-1")}

		repo.On("FindByNameContaining", mock.Anything, "Burger").Return(products, nil)

		got, err := uc.Execute(context.Background(), "Burger")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := NewFindProductsByNameUseCase(repo)

		got, err := uc.Execute(context.Background(), "")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, e.ErrNameRequired)
		repo.AssertNotCalled(t, "FindByNameContaining")
	})
}

func TestFindProductsOnPromotionUseCase(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewFindProductsOnPromotionUseCase(repo)
	products := []*domain.Product{restoredProduct(t, "id-1")}

	repo.On("FindByOnPromotion", mock.Anything, true).Return(products, nil)

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}
