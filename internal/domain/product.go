package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/snackhub/catalog-backend/pkg/e"
)

// Product — агрегат каталога. Все поля закрыты: любое создание или изменение
// проходит через валидацию, частично-валидного экземпляра не существует.
type Product struct {
	id             string
	name           string
	description    string
	price          decimal.Decimal
	category       string
	onPromotion    bool
	promotionPrice *decimal.Decimal
	createdAt      time.Time
	updatedAt      time.Time
}

// NewProduct создаёт продукт без идентификатора (id присваивает хранилище при первом сохранении).
// name и category обрезаются по краям, пустое описание заменяется на "".
func NewProduct(name, description string, price decimal.Decimal, category string) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Product{
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		price:       price,
		category:    strings.TrimSpace(category),
		onPromotion: false,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RestoreProduct восстанавливает продукт из хранилища через тот же валидирующий
// конструктор, чтобы инварианты нельзя было обойти десериализацией.
// Акция применяется только при onPromotion и ненулевой промо-цене: вызов с
// onPromotion=true и nil promotionPrice молча оставляет продукт без акции.
// Сохранённые метки времени восстанавливаются после валидации.
func RestoreProduct(
	id, name, description string,
	price decimal.Decimal,
	category string,
	onPromotion bool,
	promotionPrice *decimal.Decimal,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	product, err := NewProduct(name, description, price, category)
	if err != nil {
		return nil, err
	}

	product.id = id
	if onPromotion && promotionPrice != nil {
		if err := product.ApplyPromotion(*promotionPrice); err != nil {
			return nil, err
		}
	}

	if !createdAt.IsZero() {
		product.createdAt = createdAt
	}
	if !updatedAt.IsZero() {
		product.updatedAt = updatedAt
	}

	return product, nil
}

// EffectivePrice возвращает цену, которую фактически платит покупатель:
// промо-цену при действующей акции, иначе обычную цену.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.IsValidPromotion() {
		return *p.promotionPrice
	}
	return p.price
}

// IsValidPromotion истинно, когда акция включена и промо-цена строго меньше обычной.
func (p *Product) IsValidPromotion() bool {
	return p.onPromotion && p.promotionPrice != nil && p.promotionPrice.LessThan(p.price)
}

// ApplyPromotion включает акцию с указанной промо-ценой.
func (p *Product) ApplyPromotion(promotionPrice decimal.Decimal) error {
	if promotionPrice.GreaterThanOrEqual(p.price) {
		return e.ErrInvalidPromotionPrice
	}

	p.promotionPrice = &promotionPrice
	p.onPromotion = true
	p.touch()
	return nil
}

// RemovePromotion снимает акцию. Повторный вызов безопасен.
func (p *Product) RemovePromotion() {
	p.onPromotion = false
	p.promotionPrice = nil
	p.touch()
}

// UpdatePrice меняет обычную цену. Если новая цена опускается до промо-цены
// или ниже, акция снимается: промо-цена обязана оставаться строго меньше живой цены.
func (p *Product) UpdatePrice(newPrice decimal.Decimal) error {
	if err := validatePrice(newPrice); err != nil {
		return err
	}
	p.price = newPrice

	if p.isPromotionInvalidated() {
		p.RemovePromotion()
	}
	p.touch()
	return nil
}

func (p *Product) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.name = strings.TrimSpace(name)
	p.touch()
	return nil
}

func (p *Product) SetDescription(description string) {
	p.description = strings.TrimSpace(description)
	p.touch()
}

func (p *Product) SetCategory(category string) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	p.category = strings.TrimSpace(category)
	p.touch()
	return nil
}

// SetPromotionPrice с ненулевым значением эквивалентен ApplyPromotion,
// с nil — RemovePromotion: один сеттер и запускает, и останавливает акцию.
func (p *Product) SetPromotionPrice(promotionPrice *decimal.Decimal) error {
	if promotionPrice == nil {
		p.RemovePromotion()
		return nil
	}
	return p.ApplyPromotion(*promotionPrice)
}

// Equal определяет равенство исключительно по идентификатору.
func (p *Product) Equal(other *Product) bool {
	if other == nil {
		return false
	}
	return p.id == other.id
}

func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Category() string    { return p.category }
func (p *Product) OnPromotion() bool   { return p.onPromotion }

func (p *Product) Price() decimal.Decimal { return p.price }

// PromotionPrice возвращает копию промо-цены либо nil, когда акции нет.
func (p *Product) PromotionPrice() *decimal.Decimal {
	if p.promotionPrice == nil {
		return nil
	}
	v := *p.promotionPrice
	return &v
}

func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// isPromotionInvalidated: после смены цены акция с промо-ценой >= новой цены недействительна.
func (p *Product) isPromotionInvalidated() bool {
	return p.onPromotion && p.promotionPrice != nil && !p.promotionPrice.LessThan(p.price)
}

func (p *Product) touch() {
	p.updatedAt = time.Now().UTC()
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrNameRequired
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return e.ErrPriceNotPositive
	}
	return nil
}

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return e.ErrCategoryRequired
	}
	return nil
}
