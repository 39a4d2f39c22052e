package converter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

func TestDecimalToCents(t *testing.T) {
	assert.Equal(t, int64(2590), DecimalToCents(dec("25.90")))
	assert.Equal(t, int64(100), DecimalToCents(dec("1")))
	assert.Equal(t, int64(1), DecimalToCents(dec("0.01")))
}

func TestCentsToDecimal(t *testing.T) {
	assert.True(t, CentsToDecimal(2590).Equal(dec("25.90")))
	assert.True(t, CentsToDecimal(1).Equal(dec("0.01")))
}

func TestConverter_Roundtrip(t *testing.T) {
	conv := NewProductConverter()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)

	promo := dec("35.00")
	entity, err := domain.RestoreProduct("id-1", "Pizza", "desc", dec("50.00"), "LANCHE", true, &promo, createdAt, updatedAt)
	require.NoError(t, err)

	model := conv.ToModel(entity)
	assert.Equal(t, "id-1", model.ID)
	assert.Equal(t, int64(5000), model.PriceCents)
	require.NotNil(t, model.PromotionPriceCents)
	assert.Equal(t, int64(3500), *model.PromotionPriceCents)
	assert.True(t, model.OnPromotion)
	assert.Equal(t, createdAt, model.CreatedAt)
	assert.Equal(t, updatedAt, model.UpdatedAt)

	restored, err := conv.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, "id-1", restored.ID())
	assert.True(t, restored.Price().Equal(dec("50.00")))
	assert.True(t, restored.OnPromotion())
	assert.True(t, restored.EffectivePrice().Equal(dec("35.00")))
	assert.Equal(t, createdAt, restored.CreatedAt())
	assert.Equal(t, updatedAt, restored.UpdatedAt())
}

func TestConverter_NoPromotion(t *testing.T) {
	conv := NewProductConverter()

	entity, err := domain.RestoreProduct("id-1", "Pizza", "", dec("50.00"), "LANCHE", false, nil, time.Time{}, time.Time{})
	require.NoError(t, err)

	model := conv.ToModel(entity)
	assert.Nil(t, model.PromotionPriceCents)
	assert.False(t, model.OnPromotion)

	restored, err := conv.ToEntity(model)
	require.NoError(t, err)
	assert.False(t, restored.OnPromotion())
	assert.Nil(t, restored.PromotionPrice())
}

func TestConverter_InvalidStoredRecord(t *testing.T) {
	conv := NewProductConverter()

	// запись с нарушенным инвариантом не превращается в сущность
	entity, err := conv.ToEntity(&ProductModel{
		ID:         "id-1",
		Name:       "",
		PriceCents: 5000,
		Category:   "LANCHE",
	})
	assert.Nil(t, entity)
	assert.ErrorIs(t, err, e.ErrNameRequired)
}

func TestConverter_PromotionFlagWithoutPrice(t *testing.T) {
	conv := NewProductConverter()

	entity, err := conv.ToEntity(&ProductModel{
		ID:          "id-1",
		Name:        "Pizza",
		PriceCents:  5000,
		Category:    "LANCHE",
		OnPromotion: true,
	})
	require.NoError(t, err)
	assert.False(t, entity.OnPromotion())
}
