package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	websiteTTL      = 1 * time.Hour
	renderedPageTTL = 10 * time.Minute
)

// Cache wraps a Redis client. When disabled it degrades to a no-op so the
// rest of the application never has to branch on cache availability.
type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) *Cache {
	if !enable {
		return &Cache{enabled: false}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return &Cache{enabled: false}
	}

	return &Cache{
		client:  client,
		enabled: true,
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(key string, dest interface{}) error {
	if !c.Enabled() {
		return fmt.Errorf("cache disabled")
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("key not found")
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(key string) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

func (c *Cache) CacheWebsite(id uint, site interface{}) error {
	return c.Set(fmt.Sprintf("website:%d", id), site, websiteTTL)
}

func (c *Cache) GetCachedWebsite(id uint, dest interface{}) error {
	return c.Get(fmt.Sprintf("website:%d", id), dest)
}

func (c *Cache) CacheWebsiteByDomain(domain string, site interface{}) error {
	return c.Set("website:domain:"+domain, site, websiteTTL)
}

func (c *Cache) GetCachedWebsiteByDomain(domain string, dest interface{}) error {
	return c.Get("website:domain:"+domain, dest)
}

// CacheRenderedPage stores the public HTML for a domain. Rendering is
// deterministic, so the entry stays valid until the document mutates.
func (c *Cache) CacheRenderedPage(domain string, html string) error {
	return c.Set("render:"+domain, html, renderedPageTTL)
}

func (c *Cache) GetCachedRenderedPage(domain string) (string, error) {
	var html string
	if err := c.Get("render:"+domain, &html); err != nil {
		return "", err
	}
	return html, nil
}

// InvalidateWebsite drops every cached view of a website: by id, by domain
// and the rendered public page.
func (c *Cache) InvalidateWebsite(id uint, domain string) error {
	if err := c.Delete(fmt.Sprintf("website:%d", id)); err != nil {
		return err
	}
	if domain != "" {
		if err := c.Delete("website:domain:" + domain); err != nil {
			return err
		}
		if err := c.Delete("render:" + domain); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) CacheUserWebsites(userID uint, sites interface{}) error {
	return c.Set(fmt.Sprintf("websites:user:%d", userID), sites, websiteTTL)
}

func (c *Cache) GetCachedUserWebsites(userID uint, dest interface{}) error {
	return c.Get(fmt.Sprintf("websites:user:%d", userID), dest)
}

func (c *Cache) InvalidateUserWebsites(userID uint) error {
	return c.Delete(fmt.Sprintf("websites:user:%d", userID))
}
