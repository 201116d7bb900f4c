package repo

import (
	"context"
	"sort"
	"strings"

	"github.com/SAndrade100/mvp-test/internal/models"
)

// SnapshotProductRepository is an in-memory implementation of
// ProductRepository over an immutable snapshot. Records are sorted once at
// construction; after that every method is a pure read, so the repository is
// safe for concurrent use without locking.
type SnapshotProductRepository struct {
	products []models.Product
	byASIN   map[string]int
}

// NewSnapshotProductRepository builds a repository from a loaded record set.
// The input slice is copied and sorted by reviews descending, ASIN ascending.
func NewSnapshotProductRepository(products []models.Product) *SnapshotProductRepository {
	snapshot := make([]models.Product, len(products))
	copy(snapshot, products)

	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].Reviews != snapshot[j].Reviews {
			return snapshot[i].Reviews > snapshot[j].Reviews
		}
		return snapshot[i].ASIN < snapshot[j].ASIN
	})

	byASIN := make(map[string]int, len(snapshot))
	for i, p := range snapshot {
		byASIN[p.ASIN] = i
	}

	return &SnapshotProductRepository{products: snapshot, byASIN: byASIN}
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Category != "" && p.CategoryName != pf.Category {
		return false
	}
	if pf.Query != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(pf.Query)) {
		return false
	}
	if pf.MinPrice != nil && p.Price < *pf.MinPrice {
		return false
	}
	if pf.MaxPrice != nil && p.Price > *pf.MaxPrice {
		return false
	}
	if pf.MinRating != nil && (p.Stars == nil || *p.Stars < *pf.MinRating) {
		return false
	}
	if pf.BestSellerOnly && !p.IsBestSeller {
		return false
	}
	return true
}

func (r *SnapshotProductRepository) Filter(_ context.Context, pf ProductFilter) ([]models.Product, int, error) {
	filtered := []models.Product{}

	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// GetByASIN retrieves a product by its ASIN.
func (r *SnapshotProductRepository) GetByASIN(_ context.Context, asin string) (models.Product, error) {
	if i, ok := r.byASIN[asin]; ok {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// All returns the full snapshot in stable order.
func (r *SnapshotProductRepository) All(_ context.Context) ([]models.Product, error) {
	return r.products, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
