package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitManager keeps a token-bucket limiter per client IP and evicts
// idle ones in the background.
type RateLimitManager struct {
	visitors   map[string]*visitor
	visitorsMu sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

func NewRateLimitManager(ctx context.Context) *RateLimitManager {
	managerCtx, cancel := context.WithCancel(ctx)

	m := &RateLimitManager{
		visitors: make(map[string]*visitor),
		ctx:      managerCtx,
		cancel:   cancel,
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// GetVisitor retrieves or creates the limiter for an IP.
func (m *RateLimitManager) GetVisitor(ip string, requestsPerWindow, windowSeconds, burst int) *rate.Limiter {
	if requestsPerWindow <= 0 {
		return nil
	}

	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()

	v, exists := m.visitors[ip]
	if !exists {
		if windowSeconds <= 0 {
			windowSeconds = 60
		}

		limit := rate.Limit(float64(requestsPerWindow) / float64(windowSeconds))
		if burst <= 0 {
			burst = requestsPerWindow
		}

		limiter := rate.NewLimiter(limit, burst)
		m.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (m *RateLimitManager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *RateLimitManager) cleanup() {
	cutoff := time.Now().Add(-10 * time.Minute)

	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()
	for ip, v := range m.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(m.visitors, ip)
		}
	}
}

// Shutdown stops the cleanup loop and waits for it to exit.
func (m *RateLimitManager) Shutdown() {
	m.cancel()
	m.wg.Wait()
}

// RateLimit limits requests per client IP using the manager's buckets.
func RateLimit(manager *RateLimitManager, requestsPerWindow, windowSeconds, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager == nil {
			c.Next()
			return
		}

		limiter := manager.GetVisitor(c.ClientIP(), requestsPerWindow, windowSeconds, burst)
		if limiter == nil {
			c.Next()
			return
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
