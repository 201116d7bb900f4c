package handlers

import (
	"github.com/SAndrade100/mvp-test/internal/catalog"
)

var catalogSvc *catalog.Service

// SetCatalog injects the query service used by all handlers.
func SetCatalog(s *catalog.Service) {
	catalogSvc = s
}
