package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"

	"portfoliochat/internal/metrics"
	"portfoliochat/internal/models"
	"portfoliochat/internal/ratelimit"
)

// UnknownClient buckets requests whose origin cannot be determined.
const UnknownClient = "unknown"

// ClientID resolves the rate-limit bucket of a request: the first entry of
// X-Forwarded-For, else the remote address.
func ClientID(c fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return UnknownClient
}

// RateLimitConfig configures the chat rate limiter.
type RateLimitConfig struct {
	Max    int
	Window time.Duration

	// Limiter admits requests with an exact sliding log. Used when Storage
	// is nil; defaults to an in-memory ratelimit.SlidingWindow.
	Limiter ratelimit.Limiter

	// Storage, when set, shares counters between replicas through Fiber's
	// sliding-window limiter.
	Storage fiber.Storage

	// Now is the clock of the sliding log. Defaults to time.Now.
	Now func() time.Time
}

// NewRateLimiter returns the Fiber limiter middleware keyed by ClientID.
// Rejections render 429 rate_limited.
func NewRateLimiter(cfg RateLimitConfig) fiber.Handler {
	var strategy limiter.Handler = limiter.SlidingWindow{}
	if cfg.Storage == nil {
		lim := cfg.Limiter
		if lim == nil {
			lim = ratelimit.NewSlidingWindow(ratelimit.Policy{Max: cfg.Max, Window: cfg.Window})
		}
		now := cfg.Now
		if now == nil {
			now = time.Now
		}
		strategy = &SlidingLog{limiter: lim, retryAfter: retryAfterSeconds(cfg.Window), now: now}
	}

	return limiter.New(limiter.Config{
		Max:               cfg.Max,
		Expiration:        cfg.Window,
		Storage:           cfg.Storage,
		KeyGenerator:      ClientID,
		LimitReached:      rateLimited,
		LimiterMiddleware: strategy,
	})
}

// SlidingLog is a limiter.Handler that delegates admission to a
// ratelimit.Limiter.
type SlidingLog struct {
	limiter    ratelimit.Limiter
	retryAfter string
	now        func() time.Time
}

// New implements limiter.Handler.
func (s *SlidingLog) New(cfg *limiter.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}
		if s.limiter.Allow(cfg.KeyGenerator(c), s.now()) {
			return c.Next()
		}
		if !cfg.DisableHeaders {
			c.Set(fiber.HeaderRetryAfter, s.retryAfter)
		}
		return cfg.LimitReached(c)
	}
}

func rateLimited(c fiber.Ctx) error {
	metrics.RecordError(models.ErrCodeRateLimited)
	return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
		Error: models.ErrCodeRateLimited,
	})
}

// retryAfterSeconds is the window in whole seconds, at least 1.
func retryAfterSeconds(window time.Duration) string {
	secs := int(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
