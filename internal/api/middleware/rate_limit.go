package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Beenod004/Networkfault/internal/pkg/metrics"
)

// Per-IP token bucket. Pointer events arrive at pointer-move frequency, so
// GET and pointer calls share a higher budget than other writes.
const (
	DefaultRateLimitPerMin = 600
	pointerMultiplier      = 10
)

type rateLimitTier int

const (
	tierStandard rateLimitTier = iota
	tierInteractive
)

// RateLimiter holds per-IP limiters per tier.
type RateLimiter struct {
	perMin      int
	mu          sync.Mutex
	standard    map[string]*rate.Limiter
	interactive map[string]*rate.Limiter
}

// NewRateLimiter returns a limiter allowing perMin writes per minute per IP.
// perMin <= 0 uses DefaultRateLimitPerMin.
func NewRateLimiter(perMin int) *RateLimiter {
	if perMin <= 0 {
		perMin = DefaultRateLimitPerMin
	}
	return &RateLimiter{
		perMin:      perMin,
		standard:    make(map[string]*rate.Limiter),
		interactive: make(map[string]*rate.Limiter),
	}
}

func (l *RateLimiter) limitFor(t rateLimitTier) int {
	if t == tierInteractive {
		return l.perMin * pointerMultiplier
	}
	return l.perMin
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx > 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx >= 0 {
		addr = addr[:idx]
	}
	return addr
}

func tierForRequest(r *http.Request) rateLimitTier {
	if r.Method == http.MethodGet || r.Method == http.MethodHead ||
		strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), "/diagram/pointer") {
		return tierInteractive
	}
	return tierStandard
}

func (l *RateLimiter) getLimiter(ip string, t rateLimitTier) *rate.Limiter {
	n := l.limitFor(t)
	m := l.standard
	if t == tierInteractive {
		m = l.interactive
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := m[ip]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(float64(n)/60.0), n)
	m[ip] = lim
	return lim
}

// Middleware limits requests per IP. /health, /metrics and /ws are exempt.
// Returns 429 with Retry-After and sets X-RateLimit-* headers.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health", "/metrics", "/ws":
			next.ServeHTTP(w, r)
			return
		}
		tier := tierForRequest(r)
		limit := l.limitFor(tier)
		limiter := l.getLimiter(getClientIP(r), tier)
		reservation := limiter.Reserve()
		if delay := reservation.Delay(); !reservation.OK() || delay > 0 {
			reservation.Cancel()
			retryAfter := int(delay.Seconds()) + 1
			if retryAfter > 60 || !reservation.OK() {
				retryAfter = 60
			}
			metrics.RateLimitRejectionsTotal.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Duration(retryAfter)*time.Second).Unix(), 10))
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests. Please retry later.","code":"RATE_LIMIT_EXCEEDED","message":"Too many requests. Please retry later."}`))
			return
		}
		tokens := int(limiter.Tokens())
		if tokens < 0 {
			tokens = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(tokens))
		next.ServeHTTP(w, r)
	})
}
