package repo

import (
	"context"

	"github.com/SAndrade100/mvp-test/internal/models"
)

// ProductRepository defines the read-only contract over the product record
// set. Implementations must return pages in a stable order (reviews
// descending, ASIN ascending) so that repeated identical queries paginate
// identically.
type ProductRepository interface {
	// GetByASIN returns the product with the given ASIN or ErrProductNotFound.
	GetByASIN(ctx context.Context, asin string) (models.Product, error)

	// Filter returns the page selected by f together with the total number
	// of records matching f before pagination.
	Filter(ctx context.Context, f ProductFilter) ([]models.Product, int, error)

	// All returns the full record set, used by the analytics layer.
	All(ctx context.Context) ([]models.Product, error)
}
