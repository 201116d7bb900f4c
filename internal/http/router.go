package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SAndrade100/mvp-test/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(CORSMiddleware)

	r.Get("/", handlers.RootHandler)
	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{asin}", handlers.GetProductByASINHandler)
	r.Get("/search", handlers.SearchProductsHandler)
	r.Get("/stats", handlers.GetStatsHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/categories/{category}/stats", handlers.GetCategoryStatsHandler)
	r.Get("/analytics/price-distribution", handlers.GetPriceDistributionHandler)
	r.Get("/analytics/rating-distribution", handlers.GetRatingDistributionHandler)

	return r
}
