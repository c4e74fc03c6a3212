package product

import "time"

const (
	// DefaultTimeout is the per-call timeout for the product API.
	DefaultTimeout = 30 * time.Second
	// DefaultCatalogTTL is how long the catalog summary on disk is considered fresh.
	DefaultCatalogTTL = 24 * time.Hour
	// DefaultDetailURL is the product detail endpoint used when none is configured.
	DefaultDetailURL = "https://shop.sirichaielectric.com/services/get-product-by-name.php"
	// CatalogCacheFile is the catalog summary file name inside the cache directory.
	CatalogCacheFile = "catalog-summary-cache.md"
)
