package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snackhub/catalog-backend/pkg/e"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"domain validation", e.ErrPriceNotPositive, http.StatusBadRequest, "Price must be greater than zero"},
		{"delete miss", e.ErrProductNotFound, http.StatusBadRequest, "Product not found"},
		{"wrapped validation", e.Wrap("ctx", e.ErrCategoryRequired), http.StatusBadRequest, "ctx: Category is required"},
		{"request parse", e.ErrPricePrecision, http.StatusBadRequest, e.ErrPricePrecision.Error()},
		{"rate limit", e.ErrRateLimitExceeded, http.StatusTooManyRequests, e.ErrRateLimitExceeded.Error()},
		{"unknown error hides details", fmt.Errorf("pq: connection reset"), http.StatusInternalServerError, e.ErrInternalServer.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestValidatePriceFormat(t *testing.T) {
	assert.NoError(t, validatePriceFormat(dec("25.90")))
	assert.NoError(t, validatePriceFormat(dec("9999999999.99")))
	assert.ErrorIs(t, validatePriceFormat(dec("25.999")), e.ErrPricePrecision)
	assert.ErrorIs(t, validatePriceFormat(dec("10000000000")), e.ErrPriceTooLarge)
}
