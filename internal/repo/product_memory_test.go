package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/SAndrade100/mvp-test/internal/models"
)

func stars(v float64) *float64 { return &v }
func intp(v int) *int          { return &v }
func floatp(v float64) *float64 {
	return &v
}

func testRepo() *SnapshotProductRepository {
	return NewSnapshotProductRepository([]models.Product{
		{ASIN: "B003", Title: "Bluetooth Speaker", Price: 29.99, Stars: stars(4.5), Reviews: 500, CategoryName: "Electronics", IsBestSeller: true},
		{ASIN: "B001", Title: "USB Cable", Price: 5.99, Stars: stars(4.0), Reviews: 1200, CategoryName: "Electronics"},
		{ASIN: "B002", Title: "Desk Lamp", Price: 19.99, Stars: nil, Reviews: 80, CategoryName: "Home"},
		{ASIN: "B004", Title: "", Price: 9.99, Stars: stars(3.0), Reviews: 80, CategoryName: "Home"},
	})
}

func TestSnapshotRepository_Order(t *testing.T) {
	r := testRepo()

	products, total, err := r.Filter(context.Background(), ProductFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected total 4, got %d", total)
	}

	// reviews descending, ASIN ascending on ties
	want := []string{"B001", "B003", "B002", "B004"}
	for i, asin := range want {
		if products[i].ASIN != asin {
			t.Errorf("position %d: expected %s, got %s", i, asin, products[i].ASIN)
		}
	}
}

func TestSnapshotRepository_Filter(t *testing.T) {
	r := testRepo()

	tests := []struct {
		name      string
		filter    ProductFilter
		wantASINs []string
	}{
		{
			name:      "category exact match",
			filter:    ProductFilter{Category: "Home"},
			wantASINs: []string{"B002", "B004"},
		},
		{
			name:      "category is case-sensitive",
			filter:    ProductFilter{Category: "home"},
			wantASINs: []string{},
		},
		{
			name:      "min price inclusive",
			filter:    ProductFilter{MinPrice: floatp(19.99)},
			wantASINs: []string{"B003", "B002"},
		},
		{
			name:      "max price inclusive",
			filter:    ProductFilter{MaxPrice: floatp(9.99)},
			wantASINs: []string{"B001", "B004"},
		},
		{
			name:      "min rating inclusive, unrated excluded",
			filter:    ProductFilter{MinRating: floatp(3.0)},
			wantASINs: []string{"B001", "B003", "B004"},
		},
		{
			name:      "best sellers only",
			filter:    ProductFilter{BestSellerOnly: true},
			wantASINs: []string{"B003"},
		},
		{
			name:      "combined filters AND together",
			filter:    ProductFilter{Category: "Electronics", MinPrice: floatp(10)},
			wantASINs: []string{"B003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, total, err := r.Filter(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != len(tt.wantASINs) {
				t.Errorf("expected total %d, got %d", len(tt.wantASINs), total)
			}
			if len(products) != len(tt.wantASINs) {
				t.Fatalf("expected %d products, got %d", len(tt.wantASINs), len(products))
			}
			for i, asin := range tt.wantASINs {
				if products[i].ASIN != asin {
					t.Errorf("position %d: expected %s, got %s", i, asin, products[i].ASIN)
				}
			}
		})
	}
}

func TestSnapshotRepository_Search(t *testing.T) {
	r := testRepo()

	for _, q := range []string{"bluetooth", "BLUETOOTH", "tooth spea"} {
		products, total, err := r.Filter(context.Background(), ProductFilter{Query: q})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1 || len(products) != 1 || products[0].ASIN != "B003" {
			t.Errorf("query %q: expected only B003, got %v (total %d)", q, products, total)
		}
	}
}

func TestSnapshotRepository_SearchEmptyTitleNeverMatches(t *testing.T) {
	r := testRepo()

	products, _, err := r.Filter(context.Background(), ProductFilter{Query: "lamp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range products {
		if p.Title == "" {
			t.Errorf("record with empty title matched query: %+v", p)
		}
	}
}

func TestSnapshotRepository_Pagination(t *testing.T) {
	r := testRepo()

	products, total, err := r.Filter(context.Background(), ProductFilter{Limit: intp(2), Offset: intp(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 4 {
		t.Errorf("expected total 4 regardless of page, got %d", total)
	}
	if len(products) != 2 || products[0].ASIN != "B003" || products[1].ASIN != "B002" {
		t.Errorf("expected page [B003 B002], got %v", products)
	}
}

func TestSnapshotRepository_OffsetPastEnd(t *testing.T) {
	r := testRepo()

	products, total, err := r.Filter(context.Background(), ProductFilter{Limit: intp(10), Offset: intp(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty page past the end, got %v", products)
	}
	if total != 4 {
		t.Errorf("expected total 4, got %d", total)
	}
}

func TestSnapshotRepository_GetByASIN(t *testing.T) {
	r := testRepo()

	p, err := r.GetByASIN(context.Background(), "B002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Desk Lamp" {
		t.Errorf("expected Desk Lamp, got %q", p.Title)
	}

	_, err = r.GetByASIN(context.Background(), "missing")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSnapshotRepository_SnapshotIsolation(t *testing.T) {
	input := []models.Product{
		{ASIN: "B001", Title: "USB Cable", Reviews: 10},
	}
	r := NewSnapshotProductRepository(input)

	input[0].Title = "mutated"

	p, err := r.GetByASIN(context.Background(), "B001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "USB Cable" {
		t.Errorf("snapshot should not observe caller mutations, got %q", p.Title)
	}
}
