package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
// Цены хранятся в копейках (минимальных единицах валюты).
type ProductModel struct {
	ID                  string    `db:"id"`
	Name                string    `db:"name"`
	Description         string    `db:"description"`
	PriceCents          int64     `db:"price_cents"`
	Category            string    `db:"category"`
	OnPromotion         bool      `db:"on_promotion"`
	PromotionPriceCents *int64    `db:"promotion_price_cents"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}
