package product

import (
	"context"
	"path/filepath"
	"time"

	pkghttp "chatbot-srv/pkg/http"
)

// IProduct is the client for the Sirichai product API. Every result is raw text meant for the model.
// Implementations are safe for concurrent use.
type IProduct interface {
	// CatalogSummary returns the catalog summary, from disk when fresh. On fetch failure
	// a stale disk copy is returned; ErrUnavailable when there is none.
	CatalogSummary(ctx context.Context) (string, error)
	// RefreshCatalog fetches the summary regardless of cache age and rewrites the cache.
	RefreshCatalog(ctx context.Context) (string, error)
	// ClearCache removes the catalog cache file.
	ClearCache() error
	Search(ctx context.Context, criterias []string) (string, error)
	Detail(ctx context.Context, productName string) (string, error)
	Quotation(ctx context.Context, items []QuotationItem, priceType string) (string, error)
}

// New creates a new product API client. Returns the interface.
func New(cfg ProductConfig) IProduct {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: DefaultTimeout,
			Retries: 0,
		})
	}
	if cfg.DetailURL == "" {
		cfg.DetailURL = DefaultDetailURL
	}
	if cfg.CatalogTTL <= 0 {
		cfg.CatalogTTL = DefaultCatalogTTL
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "cache"
	}
	return &productImpl{
		catalogSummaryURL: cfg.CatalogSummaryURL,
		searchURL:         cfg.SearchURL,
		detailURL:         cfg.DetailURL,
		quotationURL:      cfg.QuotationURL,
		cachePath:         filepath.Join(cfg.CacheDir, CatalogCacheFile),
		catalogTTL:        cfg.CatalogTTL,
		httpClient:        cfg.HTTPClient,
		now:               time.Now,
	}
}
