package product

import (
	"time"

	"chatbot-srv/config"
	pkghttp "chatbot-srv/pkg/http"
	"chatbot-srv/pkg/product"
)

// Connect creates the product API client. The catalog summary is cached in cacheDir.
func Connect(cfg config.ProductConfig, cacheDir string) product.IProduct {
	timeout := product.DefaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return product.New(product.ProductConfig{
		CatalogSummaryURL: cfg.CatalogSummaryURL,
		SearchURL:         cfg.SearchURL,
		DetailURL:         cfg.DetailURL,
		QuotationURL:      cfg.QuotationURL,
		CacheDir:          cacheDir,
		HTTPClient:        pkghttp.NewClient(pkghttp.ClientConfig{Timeout: timeout}),
	})
}
