package repo

import "errors"

// ErrProductNotFound is returned when no product exists for the given ASIN.
var ErrProductNotFound = errors.New("product not found")
