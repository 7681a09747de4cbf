package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/config"
)

type rateLimiters struct {
	auth  *rateLimiter
	write *rateLimiter
}

func newRateLimiters(rdb *redis.Client, cfg *config.Config) *rateLimiters {
	return &rateLimiters{
		auth:  newRateLimiter(rdb, "ratelimit:auth", cfg.AuthRateLimit.MaxRequests, cfg.AuthRateLimit.Window),
		write: newRateLimiter(rdb, "ratelimit:write", cfg.WriteRateLimit.MaxRequests, cfg.WriteRateLimit.Window),
	}
}

// rateLimiter is a fixed-window counter backed by redis. Counters are
// per client address; the first request in a window sets the expiry.
type rateLimiter struct {
	logger zerolog.Logger
	rdb    *redis.Client
	prefix string
	max    int
	window time.Duration
}

func newRateLimiter(rdb *redis.Client, prefix string, max int, window time.Duration) *rateLimiter {
	logger := log.With().Str("handlerName", "rateLimiter").Str("prefix", prefix).Logger()

	return &rateLimiter{
		logger: logger,
		rdb:    rdb,
		prefix: prefix,
		max:    max,
		window: window,
	}
}

func (l *rateLimiter) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.rdb == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := fmt.Sprintf("%s:%s", l.prefix, clientAddr(r))
		ctx := r.Context()

		count, err := l.rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down must not take the API with it.
			l.logger.Warn().Err(err).Msg("rate limit check failed, allowing request")
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			l.rdb.Expire(ctx, key, l.window)
		}

		if count > int64(l.max) {
			retryAfter := l.window
			if ttl, err := l.rdb.TTL(ctx, key).Result(); err == nil && ttl > 0 {
				retryAfter = ttl
			}

			l.logger.Warn().Str("key", key).Int64("count", count).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			responder.WriteJSON(w, map[string]any{
				"error":  "too many requests",
				"status": "error",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
