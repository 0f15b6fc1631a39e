package productrepo

import (
	"context"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/core/ports"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedCatalog memoizes catalog reads for ttl. Products change rarely and
// every confirmation reads the same ones again, once per item and group
// child. Errors are not cached.
type CachedCatalog struct {
	next     ports.ProductCatalog
	products *expirable.LRU[kernel.UUID, *product.Product]
	children *expirable.LRU[kernel.UUID, []*product.Product]
}

func NewCachedCatalog(next ports.ProductCatalog, size int, ttl time.Duration) *CachedCatalog {
	if size <= 0 {
		size = 1000
	}
	return &CachedCatalog{
		next:     next,
		products: expirable.NewLRU[kernel.UUID, *product.Product](size, nil, ttl),
		children: expirable.NewLRU[kernel.UUID, []*product.Product](size, nil, ttl),
	}
}

func (c *CachedCatalog) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if p, ok := c.products.Get(id); ok {
		return p, nil
	}
	p, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.products.Add(id, p)
	return p, nil
}

func (c *CachedCatalog) Children(ctx context.Context, groupID kernel.UUID) ([]*product.Product, error) {
	if children, ok := c.children.Get(groupID); ok {
		return children, nil
	}
	children, err := c.next.Children(ctx, groupID)
	if err != nil {
		return nil, err
	}
	c.children.Add(groupID, children)
	return children, nil
}

// Invalidate drops everything, used after catalog writes.
func (c *CachedCatalog) Invalidate() {
	c.products.Purge()
	c.children.Purge()
}
