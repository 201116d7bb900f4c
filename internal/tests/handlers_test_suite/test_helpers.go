package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"

	"github.com/SAndrade100/mvp-test/internal/catalog"
	handler "github.com/SAndrade100/mvp-test/internal/http/handlers"
	"github.com/SAndrade100/mvp-test/internal/models"
	"github.com/SAndrade100/mvp-test/internal/repo"
)

func stars(v float64) *float64 { return &v }

// fixtureProducts is the snapshot every suite runs against. Review counts
// fix the page order: B002, B001, B003, B004.
func fixtureProducts() []models.Product {
	return []models.Product{
		{ASIN: "B001", Title: "Wireless Mouse", Price: 25.50, Stars: stars(4.2), Reviews: 900, CategoryName: "Electronics", IsBestSeller: true, BoughtInLastMonth: 500},
		{ASIN: "B002", Title: "Bluetooth Speaker", Price: 49.99, Stars: stars(4.8), Reviews: 2400, CategoryName: "Electronics"},
		{ASIN: "B003", Title: "Desk Lamp", Price: 15.00, Stars: nil, Reviews: 120, CategoryName: "Home"},
		{ASIN: "B004", Title: "Garden Hose", Price: 30.00, Stars: stars(2.5), Reviews: 40, CategoryName: "Garden"},
	}
}

func init() {
	handler.SetCatalog(catalog.New(repo.NewSnapshotProductRepository(fixtureProducts())))
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
