// Package catalog is the query orchestrator: it validates and normalizes
// request parameters, translates them into store filters and routes to the
// analytics engine. The record set behind the repository is an immutable
// snapshot, so every operation is a pure read and safe under concurrency.
package catalog

import (
	"context"
	"strings"

	"github.com/SAndrade100/mvp-test/internal/analytics"
	"github.com/SAndrade100/mvp-test/internal/models"
	"github.com/SAndrade100/mvp-test/internal/repo"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	priceBucketCount = 10
)

type Service struct {
	products repo.ProductRepository
}

func New(products repo.ProductRepository) *Service {
	return &Service{products: products}
}

// ListParams carries the optional constraints of a list query. A zero Limit
// means "use the default"; out-of-range limits and offsets are clamped, not
// rejected.
type ListParams struct {
	Limit          int
	Offset         int
	Category       string
	MinPrice       *float64
	MaxPrice       *float64
	MinRating      *float64
	BestSellerOnly bool
}

// ListProducts returns the page selected by p and the total match count.
// A min_price above max_price yields an empty result, not an error.
func (s *Service) ListProducts(ctx context.Context, p ListParams) ([]models.Product, int, error) {
	if err := validateListParams(p); err != nil {
		return nil, 0, err
	}

	if p.MinPrice != nil && p.MaxPrice != nil && *p.MinPrice > *p.MaxPrice {
		return []models.Product{}, 0, nil
	}

	limit := clampLimit(p.Limit)
	offset := clampOffset(p.Offset)

	return s.products.Filter(ctx, repo.ProductFilter{
		Category:       p.Category,
		MinPrice:       p.MinPrice,
		MaxPrice:       p.MaxPrice,
		MinRating:      p.MinRating,
		BestSellerOnly: p.BestSellerOnly,
		Limit:          &limit,
		Offset:         &offset,
	})
}

// GetProduct looks up a single product by ASIN. A missing product surfaces
// as repo.ErrProductNotFound, never as an empty list.
func (s *Service) GetProduct(ctx context.Context, asin string) (models.Product, error) {
	return s.products.GetByASIN(ctx, asin)
}

// SearchProducts runs a case-insensitive substring match of q against
// product titles. q must be non-empty after trimming.
func (s *Service) SearchProducts(ctx context.Context, q string, limit, offset int) ([]models.Product, int, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, 0, &ValidationError{Field: "q", Description: "search query is required"}
	}

	l := clampLimit(limit)
	o := clampOffset(offset)

	return s.products.Filter(ctx, repo.ProductFilter{
		Query:  q,
		Limit:  &l,
		Offset: &o,
	})
}

func (s *Service) OverviewStats(ctx context.Context) (analytics.Overview, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return analytics.Overview{}, err
	}
	return analytics.Summarize(products), nil
}

// Categories returns the rollup for every category present in the snapshot,
// ordered by product count descending.
func (s *Service) Categories(ctx context.Context) ([]analytics.CategoryStats, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.CategorySummaries(products), nil
}

// CategoryStats returns the rollup for one category, or ErrCategoryNotFound
// when it has zero records.
func (s *Service) CategoryStats(ctx context.Context, category string) (analytics.CategoryStats, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return analytics.CategoryStats{}, err
	}
	for _, cs := range analytics.CategorySummaries(products) {
		if cs.CategoryName == category {
			return cs, nil
		}
	}
	return analytics.CategoryStats{}, ErrCategoryNotFound
}

func (s *Service) PriceDistribution(ctx context.Context) ([]analytics.Bucket, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.PriceDistribution(products, priceBucketCount), nil
}

func (s *Service) RatingDistribution(ctx context.Context) ([]analytics.Bucket, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.RatingDistribution(products), nil
}

func validateListParams(p ListParams) error {
	if p.MinPrice != nil && *p.MinPrice < 0 {
		return &ValidationError{Field: "min_price", Description: "must not be negative"}
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		return &ValidationError{Field: "max_price", Description: "must not be negative"}
	}
	if p.MinRating != nil && (*p.MinRating < 0 || *p.MinRating > 5) {
		return &ValidationError{Field: "min_rating", Description: "must be between 0 and 5"}
	}
	return nil
}

func clampLimit(limit int) int {
	if limit == 0 {
		return DefaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
