package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	cooldownMaxKeys = 1000
	cooldownTTL     = 5 * time.Minute
)

// cooldown throttles repeated triggers of the same target. Limiters for
// targets that go quiet expire with the LRU entry.
type cooldown struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
}

func newCooldown(perMin int) *cooldown {
	return &cooldown{
		limiters: expirable.NewLRU[string, *rate.Limiter](cooldownMaxKeys, nil, cooldownTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
	}
}

// Allow reports whether key may be triggered now and consumes the token.
func (c *cooldown) Allow(key string) bool {
	limiter, ok := c.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(c.rate, 1)
		c.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
