package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RootHandler lists the available endpoints, mirroring the service index the
// original API exposed at its root.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Amazon Products API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"/products":                      "List products with filters",
			"/products/{asin}":               "Single product by ASIN",
			"/search":                        "Search products by title",
			"/stats":                         "Overview statistics",
			"/categories":                    "Per-category rollups",
			"/categories/{category}/stats":   "Statistics for one category",
			"/analytics/price-distribution":  "Price histogram",
			"/analytics/rating-distribution": "Rating histogram",
		},
	})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetStatsHandler godoc
// @Summary Overview statistics for the whole record set
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Overview
// @Failure 500 {string} string "Internal error"
// @Router /stats [get]
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := catalogSvc.OverviewStats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetCategoriesHandler godoc
// @Summary Per-category rollups, ordered by product count
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.CategoryStats
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := catalogSvc.Categories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetCategoryStatsHandler godoc
// @Summary Statistics for one category
// @Tags analytics
// @Produce json
// @Param category path string true "Category name (exact match)"
// @Success 200 {object} analytics.CategoryStats
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /categories/{category}/stats [get]
func GetCategoryStatsHandler(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	stats, err := catalogSvc.CategoryStats(r.Context(), category)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetPriceDistributionHandler godoc
// @Summary Price histogram over the observed range
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.Bucket
// @Failure 500 {string} string "Internal error"
// @Router /analytics/price-distribution [get]
func GetPriceDistributionHandler(w http.ResponseWriter, r *http.Request) {
	buckets, err := catalogSvc.PriceDistribution(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

// GetRatingDistributionHandler godoc
// @Summary Rating histogram at full-star granularity
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.Bucket
// @Failure 500 {string} string "Internal error"
// @Router /analytics/rating-distribution [get]
func GetRatingDistributionHandler(w http.ResponseWriter, r *http.Request) {
	buckets, err := catalogSvc.RatingDistribution(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}
