package http

import (
	"net"
	"net/http"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/snackhub/catalog-backend/internal/cfg"
	"github.com/snackhub/catalog-backend/pkg/e"
	"github.com/snackhub/catalog-backend/pkg/logger"
)

// RateLimiter ограничивает количество запросов с одного IP за фиксированное окно.
// Счетчики живут в redis; при недоступности redis запросы пропускаются.
type RateLimiter struct {
	client *redis.Client
	cfg    *cfg.RateLimitConfig
	logger logger.Logger
}

func NewRateLimiter(client *redis.Client, cfg *cfg.RateLimitConfig, logger logger.Logger) *RateLimiter {
	return &RateLimiter{client: client, cfg: cfg, logger: logger}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		key := "rate-limit:" + ip

		count, err := rl.client.Incr(r.Context(), key).Result()
		if err != nil {
			rl.logger.Warnf("rate limiter unavailable: %s", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			rl.client.Expire(r.Context(), key, rl.cfg.Window)
		}

		if count > int64(rl.cfg.Limit) {
			WriteError(w, e.ErrRateLimitExceeded)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(rl.cfg.Limit)-count, 10))
		next.ServeHTTP(w, r)
	})
}
