package catalog

import "errors"

var (
	ErrCatalogParse   = errors.New("catalog: parse data")
	ErrCatalogInvalid = errors.New("catalog: invalid data")
)
