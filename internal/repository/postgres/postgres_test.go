package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/storefront/internal/domain"
)

var productCols = []string{
	"id", "name", "price", "original_price", "rating", "review_count", "image",
	"colors", "sizes", "in_stock", "save_amount", "category", "material", "sustainable",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestProductRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := sqlmock.NewRows(productCols).
		AddRow(1, "OLD MONEY SUEDE LOAFERS", "199.95", "254.95", 4.9, 65, "loafers.jpg",
			"{Beige}", "{40,41,42,43,44}", true, "55.00", "Shoes", "Suede", false).
		AddRow(2, "CAPE TOWN - 100% LINEN SHIRT", "129.95", "149.95", 4.9, 18, "shirt.jpg",
			"{Beige,White}", "{S,M,L,XL}", true, "20.00", "Shirts", "Linen", true)

	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY id").WillReturnRows(rows)

	products, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("199.95")))
	assert.Equal(t, []string{"40", "41", "42", "43", "44"}, products[0].Sizes)
	assert.Equal(t, []string{"Beige", "White"}, products[1].Colors)
	assert.True(t, products[1].Sustainable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM products").WillReturnError(errors.New("connection reset"))

	products, err := repo.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := sqlmock.NewRows(productCols).
		AddRow(5, "ITALIAN LEATHER BELT", "79.95", "99.95", 4.8, 27, "belt.jpg",
			"{Brown,Black}", "{S,M,L}", false, "20.00", "Accessories", "Leather", false)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
		WithArgs(5).
		WillReturnRows(rows)

	product, err := repo.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "ITALIAN LEATHER BELT", product.Name)
	assert.False(t, product.InStock)
	assert.Equal(t, "Leather", product.Material)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	product, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartSnapshotRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartSnapshotRepository(db)

	capturedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snapshot := &domain.CartSnapshot{
		SessionID: "session-1",
		ItemCount: 2,
		Subtotal:  decimal.RequireFromString("399.90"),
		Lines: []domain.CartLine{
			{ProductID: 1, Name: "OLD MONEY SUEDE LOAFERS", Price: decimal.RequireFromString("199.95"), Quantity: 2},
		},
		CapturedAt: capturedAt,
	}

	mock.ExpectExec("INSERT INTO cart_snapshots").
		WithArgs("session-1", 2, sqlmock.AnyArg(), sqlmock.AnyArg(), capturedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), snapshot)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartSnapshotRepository_Upsert_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartSnapshotRepository(db)

	mock.ExpectExec("INSERT INTO cart_snapshots").
		WillReturnError(errors.New("deadlock detected"))

	err := repo.Upsert(context.Background(), &domain.CartSnapshot{SessionID: "s", CapturedAt: time.Now()})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
