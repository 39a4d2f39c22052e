package pgdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/snackhub/catalog-backend/internal/domain"
	"github.com/snackhub/catalog-backend/internal/repository/pgdb/converter"
	"github.com/snackhub/catalog-backend/pkg/e"
)

const productColumns = `id, name, description, price_cents, category, on_promotion, promotion_price_cents, created_at, updated_at`

// ProductRepo реализует порт хранилища продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Save сохраняет продукт. Продукту без идентификатора id присваивается здесь,
// дальнейшие сохранения обновляют существующую запись.
func (p *ProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price_cents = EXCLUDED.price_cents,
			category = EXCLUDED.category,
			on_promotion = EXCLUDED.on_promotion,
			promotion_price_cents = EXCLUDED.promotion_price_cents,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + productColumns + `;
	`

	row := p.pool.QueryRow(ctx, query,
		model.ID, model.Name, model.Description, model.PriceCents, model.Category,
		model.OnPromotion, model.PromotionPriceCents, model.CreatedAt, model.UpdatedAt,
	)

	saved, err := p.scanProduct(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return saved, nil
}

// FindByID возвращает (nil, nil), когда записи нет: отсутствие — не ошибка хранилища.
func (p *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	product, err := p.scanProduct(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

func (p *ProductRepo) FindAll(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at;`

	return p.queryProducts(ctx, query)
}

func (p *ProductRepo) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1;`

	if _, err := p.pool.Exec(ctx, query, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) FindByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at;`

	return p.queryProducts(ctx, query, category)
}

func (p *ProductRepo) FindByOnPromotion(ctx context.Context, onPromotion bool) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE on_promotion = $1 ORDER BY created_at;`

	return p.queryProducts(ctx, query, onPromotion)
}

// FindByNameContaining ищет по подстроке имени без учёта регистра.
func (p *ProductRepo) FindByNameContaining(ctx context.Context, name string) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at;`

	return p.queryProducts(ctx, query, name)
}

func (p *ProductRepo) FindByCategoryAndPriceBetween(ctx context.Context, category string, minPrice, maxPrice decimal.Decimal) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1 AND price_cents BETWEEN $2 AND $3
		ORDER BY created_at;
	`

	return p.queryProducts(ctx, query, category, converter.DecimalToCents(minPrice), converter.DecimalToCents(maxPrice))
}

// FindByCategoryAndPriceRangeManual — вручную построенный вариант того же
// запроса: явные сравнения границ вместо BETWEEN. Результаты обязаны совпадать
// с FindByCategoryAndPriceBetween на любых входах.
func (p *ProductRepo) FindByCategoryAndPriceRangeManual(ctx context.Context, category string, minPrice, maxPrice decimal.Decimal) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1 AND price_cents >= $2 AND price_cents <= $3
		ORDER BY created_at;
	`

	return p.queryProducts(ctx, query, category, converter.DecimalToCents(minPrice), converter.DecimalToCents(maxPrice))
}

func (p *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := p.scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) scanProduct(row pgx.Row) (*domain.Product, error) {
	var model converter.ProductModel
	if err := row.Scan(
		&model.ID, &model.Name, &model.Description, &model.PriceCents, &model.Category,
		&model.OnPromotion, &model.PromotionPriceCents, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return p.conv.ToEntity(&model)
}
