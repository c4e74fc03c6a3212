package product

import (
	"sync"
	"time"

	pkghttp "chatbot-srv/pkg/http"
)

// ProductConfig holds configuration for the product API client.
type ProductConfig struct {
	CatalogSummaryURL string
	SearchURL         string
	DetailURL         string
	QuotationURL      string
	CacheDir          string
	CatalogTTL        time.Duration
	HTTPClient        pkghttp.IClient
}

// QuotationItem is one line of a quotation request.
type QuotationItem struct {
	ProductName string  `json:"productName"`
	Amount      float64 `json:"amount"`
}

// productImpl implements IProduct.
type productImpl struct {
	catalogSummaryURL string
	searchURL         string
	detailURL         string
	quotationURL      string
	cachePath         string
	catalogTTL        time.Duration
	httpClient        pkghttp.IClient
	mu                sync.Mutex
	now               func() time.Time
}

type searchRequest struct {
	Criterias []string `json:"criterias"`
}

type detailRequest struct {
	ProductName string `json:"productName"`
}

type quotationRequest struct {
	QuotaDetail []QuotationItem `json:"quotaDetail"`
	PriceType   string          `json:"priceType"`
}
