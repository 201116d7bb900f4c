package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SAndrade100/mvp-test/internal/catalog"
	"github.com/SAndrade100/mvp-test/internal/repo"
)

// GetProductsHandler godoc
// @Summary List products with optional filters
// @Tags products
// @Produce json
// @Param limit query int false "Page size (1-100, default 10)"
// @Param offset query int false "Records to skip"
// @Param category query string false "Exact category name"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param min_rating query number false "Inclusive lower rating bound (0-5)"
// @Param best_seller_only query bool false "Only best sellers"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {array} catalog.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	products, totalCount, err := catalogSvc.ListProducts(r.Context(), params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductsSearchResult(products, totalCount))
}

// GetProductByASINHandler godoc
// @Summary Get product by ASIN
// @Tags products
// @Produce json
// @Param asin path string true "Product ASIN"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{asin} [get]
func GetProductByASINHandler(w http.ResponseWriter, r *http.Request) {
	asin := chi.URLParam(r, "asin")

	product, err := catalogSvc.GetProduct(r.Context(), asin)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// SearchProductsHandler godoc
// @Summary Search products by title
// @Tags products
// @Produce json
// @Param q query string true "Search term (case-insensitive substring)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Param offset query int false "Records to skip"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {array} catalog.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	products, totalCount, err := catalogSvc.SearchProducts(r.Context(), r.URL.Query().Get("q"), limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductsSearchResult(products, totalCount))
}

func parseListParams(r *http.Request) (catalog.ListParams, error) {
	var params catalog.ListParams
	var err error

	if params.Limit, err = queryInt(r, "limit", 0); err != nil {
		return params, err
	}
	if params.Offset, err = queryInt(r, "offset", 0); err != nil {
		return params, err
	}
	if params.MinPrice, err = queryFloat(r, "min_price"); err != nil {
		return params, err
	}
	if params.MaxPrice, err = queryFloat(r, "max_price"); err != nil {
		return params, err
	}
	if params.MinRating, err = queryFloat(r, "min_rating"); err != nil {
		return params, err
	}
	if params.BestSellerOnly, err = queryBool(r, "best_seller_only"); err != nil {
		return params, err
	}
	params.Category = r.URL.Query().Get("category")

	return params, nil
}

// handleServiceError maps the three error kinds onto HTTP statuses:
// validation errors to 400, not-found to 404, anything else to 500.
func handleServiceError(w http.ResponseWriter, err error) {
	var ve *catalog.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationErrors(w, *ve)
	case errors.Is(err, repo.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrCategoryNotFound):
		http.Error(w, "category not found", http.StatusNotFound)
	default:
		log.Printf("internal error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
