package http

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/levelup/internal/app"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/metrics"
	"github.com/MKhiriev/levelup/internal/utils"
	"golang.org/x/time/rate"
)

// clientLimiter keeps one token bucket per client address. A non-positive
// rate disables limiting.
type clientLimiter struct {
	rps   rate.Limit
	burst int
	now   func() time.Time

	buckets sync.Map // map[string]*clientBucket
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanoseconds
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{rps: rate.Limit(rps), burst: burst, now: time.Now}
}

func (l *clientLimiter) allow(key string) bool {
	if l == nil || l.rps <= 0 {
		return true
	}

	v, ok := l.buckets.Load(key)
	if !ok {
		v, _ = l.buckets.LoadOrStore(key, &clientBucket{limiter: rate.NewLimiter(l.rps, l.burst)})
	}

	b := v.(*clientBucket)
	b.lastSeen.Store(l.now().UnixNano())
	return b.limiter.Allow()
}

// sweep drops buckets not used for longer than idle and returns their count.
func (l *clientLimiter) sweep(idle time.Duration) int {
	if l == nil {
		return 0
	}

	cutoff := l.now().Add(-idle).UnixNano()
	removed := 0
	l.buckets.Range(func(key, v any) bool {
		if v.(*clientBucket).lastSeen.Load() < cutoff {
			l.buckets.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// SweepIdleClients forgets the rate-limit state of clients idle for longer
// than idle. It is run periodically by a background worker.
func (h *Handler) SweepIdleClients(idle time.Duration) int {
	removed := h.aiLimiter.sweep(idle)
	if removed > 0 {
		h.logger.Debug().Str("func", "*Handler.SweepIdleClients").Int("removed", removed).Msg("idle rate-limit buckets removed")
	}
	return removed
}

// withRateLimit rejects requests of clients that exhausted their bucket
// with 429.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !h.aiLimiter.allow(key) {
			logger.FromRequest(r).Warn().Str("func", "*Handler.withRateLimit").Str("client", key).Msg(app.MsgRateLimitExceeded)
			metrics.RateLimitRejected.Inc()

			w.Header().Set("Retry-After", "1")
			utils.WriteError(w, app.MsgRateLimitExceeded, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return r.RemoteAddr
	}
	return host
}
