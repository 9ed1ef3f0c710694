package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Pesokrava/storefront/internal/domain"
)

const productColumns = `id, name, price, original_price, rating, review_count, image,
		colors, sizes, in_stock, save_amount, category, material, sustainable`

// productRow is the products table shape; array columns need pq.StringArray
type productRow struct {
	ID            int             `db:"id"`
	Name          string          `db:"name"`
	Price         decimal.Decimal `db:"price"`
	OriginalPrice decimal.Decimal `db:"original_price"`
	Rating        float64         `db:"rating"`
	ReviewCount   int             `db:"review_count"`
	Image         string          `db:"image"`
	Colors        pq.StringArray  `db:"colors"`
	Sizes         pq.StringArray  `db:"sizes"`
	InStock       bool            `db:"in_stock"`
	SaveAmount    decimal.Decimal `db:"save_amount"`
	Category      string          `db:"category"`
	Material      string          `db:"material"`
	Sustainable   bool            `db:"sustainable"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:            r.ID,
		Name:          r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		Image:         r.Image,
		Colors:        []string(r.Colors),
		Sizes:         []string(r.Sizes),
		InStock:       r.InStock,
		SaveAmount:    r.SaveAmount,
		Category:      r.Category,
		Material:      r.Material,
		Sustainable:   r.Sustainable,
	}
}

// ProductRepository implements domain.ProductRepository for PostgreSQL
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List retrieves the whole catalog in id order
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		ORDER BY id`

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toDomain())
	}

	return products, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	var row productRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	product := row.toDomain()
	return &product, nil
}
