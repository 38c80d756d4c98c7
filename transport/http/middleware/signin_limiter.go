package middleware

import (
	"eyeslot/transport/http/response"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	signInSweepInterval = time.Minute
	signInIdleTimeout   = 3 * time.Minute
)

type signInClient struct {
	lim  *rate.Limiter
	seen time.Time
}

// signInLimiter is a per-IP token bucket held in memory. Sign-in bursts are short and
// only need to hold for one instance, unlike the shared Redis window of RateLimit.
type signInLimiter struct {
	mu        sync.Mutex
	clients   map[string]*signInClient
	r         rate.Limit
	burst     int
	lastSweep time.Time
}

func newSignInLimiter(rps float64, burst int) *signInLimiter {
	if burst < 1 {
		burst = 1
	}

	return &signInLimiter{
		clients:   make(map[string]*signInClient),
		r:         rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (l *signInLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	if now.Sub(l.lastSweep) > signInSweepInterval {
		for key, c := range l.clients {
			if now.Sub(c.seen) > signInIdleTimeout {
				delete(l.clients, key)
			}
		}

		l.lastSweep = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &signInClient{lim: rate.NewLimiter(l.r, l.burst)}
		l.clients[ip] = c
	}

	c.seen = now

	return c.lim.Allow()
}

func (a *appMiddleware) SignInLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := a.getClientIP(r)

			if !a.signIns.allow(ip) {
				log.Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("sign-in rate limit exceeded")

				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
