package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/pkg/e"
)

// Оба варианта выборки по диапазону обязаны валидировать одинаково
// и возвращать одинаковые ошибки с одинаковыми сообщениями.
type priceRangeExecutor interface {
	Execute(ctx context.Context, req *PriceRangeReq) ([]*domain.Product, error)
}

func priceRangeVariants(repo ProductRepository) map[string]priceRangeExecutor {
	return map[string]priceRangeExecutor{
		"between": NewFindProductsByCategoryAndPriceRangeUseCase(repo),
		"manual":  NewFindProductsByCategoryAndPriceRangeManualUseCase(repo),
	}
}

func TestPriceRange_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *PriceRangeReq
		wantErr error
		wantMsg string
	}{
		{
			"blank category",
			NewPriceRangeReq("   ", decPtr("10"), decPtr("30")),
			e.ErrCategoryRequired,
			"Category is required",
		},
		{
			"missing min price",
			NewPriceRangeReq("LANCHE", nil, decPtr("30")),
			e.ErrMinPriceNegative,
			"Min price must be ≥ zero",
		},
		{
			"negative min price",
			NewPriceRangeReq("LANCHE", decPtr("-5"), decPtr("30")),
			e.ErrMinPriceNegative,
			"Min price must be ≥ zero",
		},
		{
			"missing max price",
			NewPriceRangeReq("LANCHE", decPtr("10"), nil),
			e.ErrMaxPriceNotPositive,
			"Max price must be > zero",
		},
		{
			"zero max price",
			NewPriceRangeReq("LANCHE", decPtr("0"), decPtr("0")),
			e.ErrMaxPriceNotPositive,
			"Max price must be > zero",
		},
		{
			"min greater than max",
			NewPriceRangeReq("LANCHE", decPtr("30"), decPtr("10")),
			e.ErrMinPriceGreaterThanMax,
			"Min price cannot exceed max price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			for variant, uc := range priceRangeVariants(repo) {
				got, err := uc.Execute(context.Background(), tt.req)
				assert.Nil(t, got, variant)
				assert.ErrorIs(t, err, tt.wantErr, variant)
				assert.EqualError(t, err, tt.wantMsg, variant)
			}
			repo.AssertNotCalled(t, "FindByCategoryAndPriceBetween")
			repo.AssertNotCalled(t, "FindByCategoryAndPriceRangeManual")
		})
	}
}

func TestPriceRange_ValidationOrder(t *testing.T) {
	// при нескольких нарушениях сообщает о первом: категория раньше цен
	repo := new(MockProductRepository)
	req := NewPriceRangeReq("", nil, nil)

	for variant, uc := range priceRangeVariants(repo) {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, e.ErrCategoryRequired, variant)
	}
}

func TestPriceRange_ZeroMinPriceAllowed(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewFindProductsByCategoryAndPriceRangeUseCase(repo)
	products := []*domain.Product{restoredProduct(t, "id-1")}

	repo.On("FindByCategoryAndPriceBetween", mock.Anything, "LANCHE", dec("0"), dec("30")).Return(products, nil)

	got, err := uc.Execute(context.Background(), NewPriceRangeReq("LANCHE", decPtr("0"), decPtr("30")))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPriceRange_DelegatesToDistinctPortMethods(t *testing.T) {
	repo := new(MockProductRepository)
	products := []*domain.Product{restoredProduct(t, "id-1")}
	req := NewPriceRangeReq("LANCHE", decPtr("10"), decPtr("30"))

	repo.On("FindByCategoryAndPriceBetween", mock.Anything, "LANCHE", dec("10"), dec("30")).Return(products, nil).Once()
	repo.On("FindByCategoryAndPriceRangeManual", mock.Anything, "LANCHE", dec("10"), dec("30")).Return(products, nil).Once()

	between, err := NewFindProductsByCategoryAndPriceRangeUseCase(repo).Execute(context.Background(), req)
	require.NoError(t, err)
	manual, err := NewFindProductsByCategoryAndPriceRangeManualUseCase(repo).Execute(context.Background(), req)
	require.NoError(t, err)

	// одинаковые аргументы — одинаковый результат
	assert.Equal(t, between, manual)
	repo.AssertExpectations(t)
}
