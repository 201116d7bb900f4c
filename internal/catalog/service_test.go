package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SAndrade100/mvp-test/internal/models"
	"github.com/SAndrade100/mvp-test/internal/repo"
)

func stars(v float64) *float64  { return &v }
func floatp(v float64) *float64 { return &v }

func testService(products ...models.Product) *Service {
	return New(repo.NewSnapshotProductRepository(products))
}

func fixtureProducts() []models.Product {
	return []models.Product{
		{ASIN: "B001", Title: "USB Cable", Price: 10, Stars: stars(4.5), Reviews: 1200, CategoryName: "A"},
		{ASIN: "B002", Title: "Desk Lamp", Price: 50, Stars: stars(2.0), Reviews: 80, CategoryName: "B"},
	}
}

func TestListProducts_MinPriceFilter(t *testing.T) {
	svc := testService(fixtureProducts()...)

	products, total, err := svc.ListProducts(context.Background(), ListParams{MinPrice: floatp(20)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].ASIN != "B002" {
		t.Errorf("expected exactly B002, got %v (total %d)", products, total)
	}
}

func TestListProducts_MinAboveMaxIsEmptyNotError(t *testing.T) {
	svc := testService(fixtureProducts()...)

	products, total, err := svc.ListProducts(context.Background(), ListParams{
		MinPrice: floatp(100),
		MaxPrice: floatp(10),
	})
	if err != nil {
		t.Fatalf("expected no error for min_price > max_price, got %v", err)
	}
	if total != 0 || len(products) != 0 {
		t.Errorf("expected empty result, got %v (total %d)", products, total)
	}
}

func TestListProducts_Validation(t *testing.T) {
	svc := testService(fixtureProducts()...)

	tests := []struct {
		name   string
		params ListParams
		field  string
	}{
		{"negative min_price", ListParams{MinPrice: floatp(-1)}, "min_price"},
		{"negative max_price", ListParams{MaxPrice: floatp(-0.5)}, "max_price"},
		{"min_rating below zero", ListParams{MinRating: floatp(-1)}, "min_rating"},
		{"min_rating above five", ListParams{MinRating: floatp(5.1)}, "min_rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.ListProducts(context.Background(), tt.params)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected error on field %q, got %q", tt.field, ve.Field)
			}
		})
	}
}

func TestListProducts_LimitClamping(t *testing.T) {
	var fixtures []models.Product
	for i := 0; i < 150; i++ {
		fixtures = append(fixtures, models.Product{
			ASIN:    fmt.Sprintf("B%03d", i),
			Reviews: i,
		})
	}
	svc := testService(fixtures...)

	tests := []struct {
		name     string
		limit    int
		wantSize int
	}{
		{"zero means default", 0, DefaultLimit},
		{"negative clamps to one", -5, 1},
		{"above ceiling clamps to max", 500, MaxLimit},
		{"in range passes through", 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, total, err := svc.ListProducts(context.Background(), ListParams{Limit: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(products) != tt.wantSize {
				t.Errorf("expected page of %d, got %d", tt.wantSize, len(products))
			}
			if total != 150 {
				t.Errorf("expected total 150, got %d", total)
			}
		})
	}
}

func TestListProducts_NegativeOffsetClampsToZero(t *testing.T) {
	svc := testService(fixtureProducts()...)

	products, _, err := svc.ListProducts(context.Background(), ListParams{Offset: -10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected full first page, got %d products", len(products))
	}
}

// Pagination law: walking the filtered set in steps of L reconstructs it
// with no duplicates and no gaps.
func TestListProducts_PaginationReconstructsSet(t *testing.T) {
	var fixtures []models.Product
	for i := 0; i < 57; i++ {
		fixtures = append(fixtures, models.Product{
			ASIN:    fmt.Sprintf("B%03d", i),
			Reviews: i % 7, // plenty of review-count ties
		})
	}
	svc := testService(fixtures...)

	for _, limit := range []int{1, 7, 10, 100} {
		seen := map[string]bool{}
		var walked []string
		for offset := 0; ; offset += limit {
			products, total, err := svc.ListProducts(context.Background(), ListParams{Limit: limit, Offset: offset})
			if err != nil {
				t.Fatalf("limit %d offset %d: unexpected error: %v", limit, offset, err)
			}
			if total != len(fixtures) {
				t.Fatalf("limit %d: expected total %d, got %d", limit, len(fixtures), total)
			}
			if len(products) == 0 {
				break
			}
			for _, p := range products {
				if seen[p.ASIN] {
					t.Fatalf("limit %d: duplicate %s while paginating", limit, p.ASIN)
				}
				seen[p.ASIN] = true
				walked = append(walked, p.ASIN)
			}
		}
		if len(walked) != len(fixtures) {
			t.Errorf("limit %d: walked %d records, want %d", limit, len(walked), len(fixtures))
		}
	}
}

func TestListProducts_Idempotent(t *testing.T) {
	svc := testService(fixtureProducts()...)
	params := ListParams{Limit: 10}

	first, _, err := svc.ListProducts(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := svc.ListProducts(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("page sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ASIN != second[i].ASIN {
			t.Errorf("position %d: %s vs %s", i, first[i].ASIN, second[i].ASIN)
		}
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := testService(fixtureProducts()...)

	_, err := svc.GetProduct(context.Background(), "nonexistent")
	if !errors.Is(err, repo.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSearchProducts_EmptyQueryIsValidationError(t *testing.T) {
	svc := testService(fixtureProducts()...)

	for _, q := range []string{"", "   ", "\t"} {
		_, _, err := svc.SearchProducts(context.Background(), q, 10, 0)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("query %q: expected a validation error, got %v", q, err)
		}
	}
}

func TestSearchProducts_CaseInsensitive(t *testing.T) {
	svc := testService(models.Product{ASIN: "B001", Title: "Bluetooth Speaker"})

	for _, q := range []string{"bluetooth", "BLUETOOTH", "tooth spea"} {
		products, total, err := svc.SearchProducts(context.Background(), q, 10, 0)
		if err != nil {
			t.Fatalf("query %q: unexpected error: %v", q, err)
		}
		if total != 1 || len(products) != 1 {
			t.Errorf("query %q: expected one match, got %d", q, total)
		}
	}
}

func TestOverviewStats(t *testing.T) {
	svc := testService(fixtureProducts()...)

	o, err := svc.OverviewStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.AvgPrice != 30 || o.MinPrice != 10 || o.MaxPrice != 50 {
		t.Errorf("expected avg=30 min=10 max=50, got avg=%v min=%v max=%v", o.AvgPrice, o.MinPrice, o.MaxPrice)
	}
}

func TestOverviewStats_EmptySet(t *testing.T) {
	svc := testService()

	o, err := svc.OverviewStats(context.Background())
	if err != nil {
		t.Fatalf("expected no error on empty set, got %v", err)
	}
	if o.AvgPrice != 0 {
		t.Errorf("expected avg price 0 on empty set, got %v", o.AvgPrice)
	}
}

func TestCategoryStats_NotFound(t *testing.T) {
	svc := testService(fixtureProducts()...)

	_, err := svc.CategoryStats(context.Background(), "nonexistent")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryStats(t *testing.T) {
	svc := testService(fixtureProducts()...)

	cs, err := svc.CategoryStats(context.Background(), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.ProductCount != 1 || cs.AvgPrice != 10 {
		t.Errorf("expected count 1 avg price 10, got %+v", cs)
	}
}

func TestDistributions(t *testing.T) {
	svc := testService(fixtureProducts()...)

	price, err := svc.PriceDistribution(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for _, b := range price {
		total += b.Count
	}
	if total != 2 {
		t.Errorf("price bucket counts sum to %d, want 2", total)
	}

	rating, err := svc.RatingDistribution(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rating) != 5 {
		t.Errorf("expected 5 rating buckets, got %d", len(rating))
	}
}
