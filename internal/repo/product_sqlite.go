package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SAndrade100/mvp-test/internal/models"
)

const productColumns = "asin, title, img_url, product_url, stars, reviews, price, is_best_seller, bought_in_last_month, category_name"

// SQLiteProductRepository serves the record set from a SQLite database, the
// storage the original CSV import produces. All queries are reads.
type SQLiteProductRepository struct {
	db *sql.DB
}

func NewSQLiteProductRepository(db *sql.DB) *SQLiteProductRepository {
	return &SQLiteProductRepository{db: db}
}

func (r *SQLiteProductRepository) GetByASIN(ctx context.Context, asin string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE asin = ?`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, asin))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *SQLiteProductRepository) Filter(ctx context.Context, pf ProductFilter) ([]models.Product, int, error) {
	conditions, args := sqliteFilterConditions(pf)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM products WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1` + conditions
	query += " ORDER BY reviews DESC, asin"

	if pf.Limit != nil && *pf.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, *pf.Limit)
	}
	if pf.Offset != nil && *pf.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, *pf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, totalCount, nil
}

func (r *SQLiteProductRepository) All(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY reviews DESC, asin`
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// sqliteFilterConditions builds the WHERE clause for a filter. SQLite's LIKE
// is case-insensitive for ASCII, which gives the search engine its matching
// rule directly.
func sqliteFilterConditions(pf ProductFilter) (string, []any) {
	query := ""
	args := []any{}

	if pf.Category != "" {
		query += " AND category_name = ?"
		args = append(args, pf.Category)
	}
	if pf.Query != "" {
		query += " AND title LIKE ?"
		args = append(args, "%"+pf.Query+"%")
	}
	if pf.MinPrice != nil {
		query += " AND price >= ?"
		args = append(args, *pf.MinPrice)
	}
	if pf.MaxPrice != nil {
		query += " AND price <= ?"
		args = append(args, *pf.MaxPrice)
	}
	if pf.MinRating != nil {
		query += " AND stars IS NOT NULL AND stars >= ?"
		args = append(args, *pf.MinRating)
	}
	if pf.BestSellerOnly {
		query += " AND is_best_seller = 1"
	}

	return query, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var stars sql.NullFloat64
	err := row.Scan(&p.ASIN, &p.Title, &p.ImgURL, &p.ProductURL, &stars,
		&p.Reviews, &p.Price, &p.IsBestSeller, &p.BoughtInLastMonth, &p.CategoryName)
	if err != nil {
		return models.Product{}, err
	}
	if stars.Valid {
		p.Stars = &stars.Float64
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
