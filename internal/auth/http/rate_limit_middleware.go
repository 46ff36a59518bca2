package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	authDomain "github.com/septer/septer/internal/auth/domain"
	"github.com/septer/septer/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = time.Hour
)

// limiterStore holds one token-bucket limiter per key with periodic cleanup.
type limiterStore struct {
	limiters sync.Map // map[string]*limiterEntry
	rps      float64
	burst    int
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

func newLimiterStore(ctx context.Context, rps float64, burst int) *limiterStore {
	s := &limiterStore{rps: rps, burst: burst}
	go s.cleanupStale(ctx, limiterCleanupInterval, limiterIdleTimeout)
	return s
}

// getLimiter retrieves or creates the limiter for key.
func (s *limiterStore) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	val, loaded := s.limiters.LoadOrStore(key, &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	})
	entry := val.(*limiterEntry)
	if loaded {
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
	}
	return entry.limiter
}

// cleanupStale removes limiters idle for longer than idle until ctx is done.
func (s *limiterStore) cleanupStale(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(time.Now().Add(-idle))
		}
	}
}

func (s *limiterStore) evictIdle(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}

// rejectIfLimited writes a 429 with Retry-After and reports true when the
// limiter has no token available.
func rejectIfLimited(c *gin.Context, limiter *rate.Limiter, message string, logger *slog.Logger, attrs ...any) bool {
	if limiter.Allow() {
		return false
	}

	reservation := limiter.Reserve()
	retryAfter := int(reservation.Delay().Seconds())
	reservation.Cancel()
	if retryAfter < 1 {
		retryAfter = 1
	}

	logger.Debug("rate limit exceeded", append(attrs, slog.Int("retry_after", retryAfter))...)

	c.Header("Retry-After", strconv.Itoa(retryAfter))
	c.JSON(http.StatusTooManyRequests, httputil.ErrorResponse{
		Error:   "rate_limit_exceeded",
		Message: message,
	})
	c.Abort()
	return true
}

// LoginRateLimitMiddleware enforces per-IP rate limiting on the unauthenticated
// login endpoints to slow down credential stuffing.
//
// c.ClientIP() honors X-Forwarded-For and X-Real-IP according to gin's trusted
// proxy settings. The cleanup goroutine stops when ctx is done.
func LoginRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if rejectIfLimited(c, store.getLimiter(clientIP),
			"Too many login attempts from this IP. Please retry after the specified delay.",
			logger, slog.String("client_ip", clientIP)) {
			return
		}
		c.Next()
	}
}

// UserRateLimitMiddleware enforces per-user rate limiting on authenticated requests.
//
// It MUST run after AuthenticationMiddleware. The cleanup goroutine stops when ctx is done.
func UserRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no authenticated identity in context")
			httputil.HandleErrorGin(c, authDomain.ErrAuthenticationFailed, logger)
			c.Abort()
			return
		}

		userID := identity.UserID.String()
		if rejectIfLimited(c, store.getLimiter(userID),
			"Too many requests. Please retry after the specified delay.",
			logger, slog.String("user_id", userID)) {
			return
		}
		c.Next()
	}
}
