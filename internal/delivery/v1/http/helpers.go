package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/snackhub/catalog-backend/internal/usecase"
	"github.com/snackhub/catalog-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateProductRequest — тело запроса на создание продукта.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

// ProductResponse — представление продукта в ответах API.
type ProductResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	Category       string           `json:"category"`
	OnPromotion    bool             `json:"onPromotion"`
	PromotionPrice *decimal.Decimal `json:"promotionPrice,omitempty"`
	EffectivePrice decimal.Decimal  `json:"effectivePrice"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func NewProductResponse(res *usecase.ProductRes) *ProductResponse {
	return &ProductResponse{
		ID:             res.ID,
		Name:           res.Name,
		Description:    res.Description,
		Price:          res.Price,
		Category:       res.Category,
		OnPromotion:    res.OnPromotion,
		PromotionPrice: res.PromotionPrice,
		EffectivePrice: res.EffectivePrice,
		CreatedAt:      res.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      res.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func NewArrProductResponse(results []*usecase.ProductRes) []*ProductResponse {
	responses := make([]*ProductResponse, 0, len(results))
	for _, res := range results {
		responses = append(responses, NewProductResponse(res))
	}

	return responses
}

// ToHTTPResponse переводит ошибку ядра в статус и сообщение для клиента.
// Нарушения контракта входных данных — 400, всё остальное — 500 без деталей.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case e.IsValidation(err), isBadRequest(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrRateLimitExceeded):
		return http.StatusTooManyRequests, err.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServer.Error()
	}
}

func isBadRequest(err error) bool {
	badRequest := []error{
		e.ErrInvalidBody,
		e.ErrInvalidPrice,
		e.ErrPricePrecision,
		e.ErrPriceTooLarge,
		e.ErrNameLength,
		e.ErrDescriptionLength,
		e.ErrCategoryLength,
	}
	for _, b := range badRequest {
		if errors.Is(err, b) {
			return true
		}
	}
	return false
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(NewErrorResponse(http.StatusNotFound, e.ErrProductNotFound.Error()))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeCreateProduct разбирает и проверяет тело запроса на создание продукта.
// Границы длин и точности повторяют публичный контракт API; сущность затем
// валидирует свои инварианты независимо.
func decodeCreateProduct(r *http.Request) (*CreateProductRequest, error) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrInvalidBody)
	}

	if err := validatePriceFormat(req.Price); err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" && (len(name) < 2 || len(name) > 100) {
		return nil, e.ErrNameLength
	}
	if len(strings.TrimSpace(req.Description)) > 500 {
		return nil, e.ErrDescriptionLength
	}
	if category := strings.TrimSpace(req.Category); category != "" && (len(category) < 2 || len(category) > 50) {
		return nil, e.ErrCategoryLength
	}

	return &req, nil
}

// parsePriceParam разбирает ценовой query-параметр.
// Отсутствующий параметр — nil: решение о его обязательности принимает юзкейс.
func parsePriceParam(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, e.Wrap(name, e.ErrInvalidPrice)
	}

	return &d, nil
}

// validatePriceFormat: не более 2 знаков после запятой и 10 цифр в целой части.
func validatePriceFormat(price decimal.Decimal) error {
	if price.Exponent() < -2 {
		return e.ErrPricePrecision
	}

	maxPrice := decimal.New(1, 10) // 10^10
	if price.Abs().GreaterThanOrEqual(maxPrice) {
		return e.ErrPriceTooLarge
	}

	return nil
}
