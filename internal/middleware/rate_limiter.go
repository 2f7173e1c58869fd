package middleware

import (
	"sync"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/errors"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipThrottle hands one token bucket to each caller IP. Buckets idle longer
// than staleAfter are dropped by a background sweep so the map stays bounded
// even when callers churn addresses.
type ipThrottle struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket

	rps        rate.Limit
	burst      int
	staleAfter time.Duration
}

func newIPThrottle(rps, burst int) *ipThrottle {
	t := &ipThrottle{
		buckets:    make(map[string]*clientBucket),
		rps:        rate.Limit(rps),
		burst:      burst,
		staleAfter: 3 * time.Minute,
	}
	go t.sweep()
	return t
}

func (t *ipThrottle) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	bucket, ok := t.buckets[ip]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(t.rps, t.burst)}
		t.buckets[ip] = bucket
	}
	bucket.lastSeen = time.Now()

	return bucket.limiter.Allow()
}

func (t *ipThrottle) sweep() {
	for range time.Tick(time.Minute) {
		t.mu.Lock()
		for ip, bucket := range t.buckets {
			if time.Since(bucket.lastSeen) > t.staleAfter {
				delete(t.buckets, ip)
			}
		}
		t.mu.Unlock()
	}
}

// RateLimiter throttles each caller IP to rps sustained requests with the
// given burst. The ledger and dashboard reads are cheap, so the limit mostly
// exists to blunt credential stuffing against the auth endpoints; defaults
// come from RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST.
func RateLimiter(rps, burst int) echo.MiddlewareFunc {
	throttle := newIPThrottle(rps, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !throttle.allow(c.RealIP()) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}
