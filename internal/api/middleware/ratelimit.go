package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/sp1r1tt/dashboard2025/internal/api/response"
)

// limiterIdleTTL is how long a client may go unseen before its limiter is
// evicted. Dropping an idle entry resets that client's budget, which is
// acceptable: after this long without an attempt the bucket is full anyway.
const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter throttles login attempts per client address to slow down
// credential stuffing. State is in-process only; a restart resets it. Idle
// clients are swept from the map so long-running processes do not accumulate
// an entry per address ever seen.
type LoginLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	perMinute int
	lastSweep time.Time
	now       func() time.Time
}

// NewLoginLimiter creates a limiter allowing perMinute attempts per client,
// with a burst of the same size.
func NewLoginLimiter(perMinute int) *LoginLimiter {
	return &LoginLimiter{
		clients:   make(map[string]*clientLimiter),
		perMinute: perMinute,
		now:       time.Now,
	}
}

func (l *LoginLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterIdleTTL {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) >= limiterIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.perMinute)/60, l.perMinute)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// Middleware rejects requests over the per-client budget with a 429.
func (l *LoginLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		if !l.limiter(host).Allow() {
			response.Message(w, http.StatusTooManyRequests, "Too many login attempts")
			return
		}

		next.ServeHTTP(w, r)
	})
}
