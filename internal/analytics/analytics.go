// Package analytics computes aggregate statistics over the product snapshot.
// Every function is a pure fold over its input slice and is defined for the
// empty set: counts are zero and averages report 0 instead of failing.
package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/SAndrade100/mvp-test/internal/models"
)

// Overview holds the dataset-wide statistics.
type Overview struct {
	TotalProducts    int             `json:"total_products"`
	TotalCategories  int             `json:"total_categories"`
	AvgRating        float64         `json:"avg_rating"`
	AvgPrice         float64         `json:"avg_price"`
	MinPrice         float64         `json:"min_price"`
	MaxPrice         float64         `json:"max_price"`
	BestSellersCount int             `json:"best_sellers_count"`
	TopCategories    []CategoryCount `json:"top_categories"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryStats holds the rollup for a single category.
type CategoryStats struct {
	CategoryName     string  `json:"category_name"`
	ProductCount     int     `json:"product_count"`
	AvgRating        float64 `json:"avg_rating"`
	AvgPrice         float64 `json:"avg_price"`
	BestSellersCount int     `json:"best_sellers_count"`
}

// Bucket is one histogram cell. Buckets are half-open [Lower, Upper) except
// the last one, which is closed above so the maximum value is counted.
type Bucket struct {
	Label string  `json:"label"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Summarize computes the overview statistics. AvgRating covers only records
// that carry a rating; unrated products are excluded rather than counted as
// zero.
func Summarize(products []models.Product) Overview {
	o := Overview{TopCategories: []CategoryCount{}}
	if len(products) == 0 {
		return o
	}

	o.TotalProducts = len(products)
	o.MinPrice = products[0].Price
	o.MaxPrice = products[0].Price

	var priceSum, ratingSum float64
	ratedCount := 0
	categories := map[string]int{}

	for _, p := range products {
		priceSum += p.Price
		if p.Price < o.MinPrice {
			o.MinPrice = p.Price
		}
		if p.Price > o.MaxPrice {
			o.MaxPrice = p.Price
		}
		if p.Stars != nil {
			ratingSum += *p.Stars
			ratedCount++
		}
		if p.IsBestSeller {
			o.BestSellersCount++
		}
		categories[p.CategoryName]++
	}

	o.TotalCategories = len(categories)
	o.AvgPrice = round2(priceSum / float64(len(products)))
	if ratedCount > 0 {
		o.AvgRating = round2(ratingSum / float64(ratedCount))
	}
	o.TopCategories = topCategories(categories, 10)

	return o
}

// CategorySummaries computes the rollup for every category present in the
// input, ordered by product count descending with name as the tiebreak.
func CategorySummaries(products []models.Product) []CategoryStats {
	type acc struct {
		count       int
		priceSum    float64
		ratingSum   float64
		ratedCount  int
		bestSellers int
	}
	byCategory := map[string]*acc{}

	for _, p := range products {
		a := byCategory[p.CategoryName]
		if a == nil {
			a = &acc{}
			byCategory[p.CategoryName] = a
		}
		a.count++
		a.priceSum += p.Price
		if p.Stars != nil {
			a.ratingSum += *p.Stars
			a.ratedCount++
		}
		if p.IsBestSeller {
			a.bestSellers++
		}
	}

	stats := make([]CategoryStats, 0, len(byCategory))
	for name, a := range byCategory {
		cs := CategoryStats{
			CategoryName:     name,
			ProductCount:     a.count,
			AvgPrice:         round2(a.priceSum / float64(a.count)),
			BestSellersCount: a.bestSellers,
		}
		if a.ratedCount > 0 {
			cs.AvgRating = round2(a.ratingSum / float64(a.ratedCount))
		}
		stats = append(stats, cs)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].ProductCount != stats[j].ProductCount {
			return stats[i].ProductCount > stats[j].ProductCount
		}
		return stats[i].CategoryName < stats[j].CategoryName
	})

	return stats
}

// PriceDistribution partitions the observed price range into bucketCount
// equal-width buckets. A degenerate range (max == min) collapses to a single
// bucket holding every record.
func PriceDistribution(products []models.Product, bucketCount int) []Bucket {
	if len(products) == 0 || bucketCount < 1 {
		return []Bucket{}
	}

	min, max := products[0].Price, products[0].Price
	for _, p := range products {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}

	if min == max {
		return []Bucket{{
			Label: priceLabel(min, max),
			Lower: min,
			Upper: max,
			Count: len(products),
		}}
	}

	width := (max - min) / float64(bucketCount)
	buckets := make([]Bucket, bucketCount)
	for i := range buckets {
		lower := min + float64(i)*width
		upper := min + float64(i+1)*width
		if i == bucketCount-1 {
			upper = max
		}
		buckets[i] = Bucket{Label: priceLabel(lower, upper), Lower: lower, Upper: upper}
	}

	for _, p := range products {
		idx := int((p.Price - min) / width)
		if idx >= bucketCount {
			idx = bucketCount - 1
		}
		buckets[idx].Count++
	}

	return buckets
}

// RatingDistribution counts rated products into five full-star buckets.
// The top bucket is closed at 5.0; unrated products are not counted.
func RatingDistribution(products []models.Product) []Bucket {
	buckets := make([]Bucket, 5)
	for i := range buckets {
		buckets[i] = Bucket{
			Label: fmt.Sprintf("%d-%d", i, i+1),
			Lower: float64(i),
			Upper: float64(i + 1),
		}
	}

	for _, p := range products {
		if p.Stars == nil {
			continue
		}
		idx := int(*p.Stars)
		if idx > 4 {
			idx = 4
		}
		if idx < 0 {
			idx = 0
		}
		buckets[idx].Count++
	}

	return buckets
}

func topCategories(counts map[string]int, limit int) []CategoryCount {
	top := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		top = append(top, CategoryCount{Category: name, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Category < top[j].Category
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

func priceLabel(lower, upper float64) string {
	return fmt.Sprintf("%.2f-%.2f", lower, upper)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
