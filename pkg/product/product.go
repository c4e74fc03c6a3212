package product

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

func (c *productImpl) CatalogSummary(ctx context.Context) (string, error) {
	if info, err := os.Stat(c.cachePath); err == nil && c.now().Sub(info.ModTime()) < c.catalogTTL {
		if data, err := os.ReadFile(c.cachePath); err == nil && len(data) > 0 {
			return string(data), nil
		}
	}
	return c.RefreshCatalog(ctx)
}

func (c *productImpl) RefreshCatalog(ctx context.Context) (string, error) {
	if c.catalogSummaryURL == "" {
		return "", ErrNotConfigured
	}

	body, status, err := c.httpClient.Get(ctx, c.catalogSummaryURL, nil)
	if err != nil || status != http.StatusOK {
		cause := err
		if cause == nil {
			cause = fmt.Errorf("unexpected status code: %d", status)
		}
		if stale, rerr := os.ReadFile(c.cachePath); rerr == nil {
			return string(stale), nil
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, cause)
	}

	if err := c.writeCache(body); err != nil {
		return string(body), fmt.Errorf("cache catalog summary: %w", err)
	}
	return string(body), nil
}

func (c *productImpl) ClearCache() error {
	if err := os.Remove(c.cachePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (c *productImpl) Search(ctx context.Context, criterias []string) (string, error) {
	return c.post(ctx, c.searchURL, searchRequest{Criterias: criterias})
}

func (c *productImpl) Detail(ctx context.Context, productName string) (string, error) {
	return c.post(ctx, c.detailURL, detailRequest{ProductName: productName})
}

func (c *productImpl) Quotation(ctx context.Context, items []QuotationItem, priceType string) (string, error) {
	return c.post(ctx, c.quotationURL, quotationRequest{QuotaDetail: items, PriceType: priceType})
}

func (c *productImpl) post(ctx context.Context, url string, payload any) (string, error) {
	if url == "" {
		return "", ErrNotConfigured
	}
	body, status, err := c.httpClient.Post(ctx, url, payload, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status code: %d", ErrUnavailable, status)
	}
	return string(body), nil
}

func (c *productImpl) writeCache(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.cachePath), 0o755); err != nil {
		return err
	}
	tmp := c.cachePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.cachePath)
}
