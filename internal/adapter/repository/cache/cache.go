package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

const (
	listingTTL    = 1 * time.Hour
	definitionTTL = 15 * time.Minute
)

type MarketplaceCache struct {
	client *redis.Client
}

func NewMarketplaceCache(addr string) (*MarketplaceCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &MarketplaceCache{client: client}, nil
}

// GetListing returns (nil, nil) on a cache miss.
func (c *MarketplaceCache) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	data, err := c.client.Get(ctx, "listing:"+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var listing domain.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *MarketplaceCache) SetListing(ctx context.Context, listing *domain.Listing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "listing:"+listing.ID, data, listingTTL).Err()
}

func (c *MarketplaceCache) DeleteListing(ctx context.Context, id string) error {
	return c.client.Del(ctx, "listing:"+id).Err()
}

// GetDefinitions returns (nil, nil) on a cache miss.
func (c *MarketplaceCache) GetDefinitions(ctx context.Context, categoryID string) ([]*domain.AttributeDefinition, error) {
	data, err := c.client.Get(ctx, "attrdefs:"+categoryID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var defs []*domain.AttributeDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func (c *MarketplaceCache) SetDefinitions(ctx context.Context, categoryID string, defs []*domain.AttributeDefinition) error {
	data, err := json.Marshal(defs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "attrdefs:"+categoryID, data, definitionTTL).Err()
}

func (c *MarketplaceCache) DeleteDefinitions(ctx context.Context, categoryID string) error {
	return c.client.Del(ctx, "attrdefs:"+categoryID).Err()
}

func (c *MarketplaceCache) Close() error {
	return c.client.Close()
}
