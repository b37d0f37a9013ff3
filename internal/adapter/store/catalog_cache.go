package store

import (
	"context"
	"sync"

	"shopassist/internal/domain/entity"
	"shopassist/internal/domain/repository"
)

// CatalogCache memoizes the catalog for the process lifetime: the first
// successful fetch is stored with no expiry and every later call returns it
// without touching the network. The mutex is held across the fetch, so
// concurrent first callers block on a single in-flight fetch rather than
// duplicating it. A failed fetch stores nothing; the next call retries fresh.
type CatalogCache struct {
	source repository.CatalogSource

	mu        sync.Mutex
	products  []entity.Product
	populated bool
}

func NewCatalogCache(source repository.CatalogSource) *CatalogCache {
	return &CatalogCache{source: source}
}

// Products returns the cached catalog, fetching it on first use. The returned
// slice is shared; callers must not mutate it or its elements.
func (c *CatalogCache) Products(ctx context.Context) ([]entity.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.populated {
		return c.products, nil
	}

	products, err := c.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	c.products = products
	c.populated = true
	return c.products, nil
}
