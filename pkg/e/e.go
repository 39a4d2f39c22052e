package e

import (
	"errors"
	"fmt"
)

// Ошибки валидации доменной модели и юзкейсов.
// Тексты являются контрактом API: клиенты и тесты сверяются с ними дословно.
var (
	ErrNameRequired           = fmt.Errorf("Name is required")
	ErrPriceNotPositive       = fmt.Errorf("Price must be greater than zero")
	ErrCategoryRequired       = fmt.Errorf("Category is required")
	ErrInvalidPromotionPrice  = fmt.Errorf("Promotion price must be less than regular price")
	ErrIDRequired             = fmt.Errorf("Id is required")
	ErrProductNotFound        = fmt.Errorf("Product not found")
	ErrMinPriceNegative       = fmt.Errorf("Min price must be ≥ zero")
	ErrMaxPriceNotPositive    = fmt.Errorf("Max price must be > zero")
	ErrMinPriceGreaterThanMax = fmt.Errorf("Min price cannot exceed max price")
)

// Ошибки разбора входящих запросов (400 Bad Request)
var (
	ErrInvalidBody       = fmt.Errorf("invalid request body")
	ErrInvalidPrice      = fmt.Errorf("invalid price format")
	ErrPricePrecision    = fmt.Errorf("price must have at most 2 decimal places")
	ErrPriceTooLarge     = fmt.Errorf("price must have at most 10 integer digits")
	ErrNameLength        = fmt.Errorf("name must be between 2 and 100 characters")
	ErrDescriptionLength = fmt.Errorf("description must be at most 500 characters")
	ErrCategoryLength    = fmt.Errorf("category must be between 2 and 50 characters")
	ErrRateLimitExceeded = fmt.Errorf("rate limit exceeded")
	ErrInternalServer    = fmt.Errorf("internal server error")
	ErrIncorrectEnvVar   = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// IsValidation сообщает, относится ли ошибка к нарушению контракта входных данных.
func IsValidation(err error) bool {
	validation := []error{
		ErrNameRequired,
		ErrPriceNotPositive,
		ErrCategoryRequired,
		ErrInvalidPromotionPrice,
		ErrIDRequired,
		ErrProductNotFound,
		ErrMinPriceNegative,
		ErrMaxPriceNotPositive,
		ErrMinPriceGreaterThanMax,
	}
	for _, v := range validation {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
