package middlewares

import (
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter guards the login routes with a token bucket per client IP. An IP
// that drains its bucket is blocked for blockTime. Idle buckets expire from
// the cache on their own.
type RateLimiter struct {
	log       *zap.Logger
	limiters  *cache.Cache
	blocked   *cache.Cache
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func NewRateLimiter(log *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &RateLimiter{
		log:       log,
		limiters:  cache.New(per*time.Duration(requests+1), per*10),
		blocked:   cache.New(blockTime, blockTime),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
	}
}

func clientIP(req *http.Request) string {
	if realIP := req.Header.Get(constvars.HeaderXRealIP); realIP != "" {
		return realIP
	}
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return ip
}

func (r *RateLimiter) limiterFor(ip string) *rate.Limiter {
	if existing, found := r.limiters.Get(ip); found {
		return existing.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)
	if err := r.limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		if existing, found := r.limiters.Get(ip); found {
			return existing.(*rate.Limiter)
		}
	}
	return limiter
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := clientIP(req)

		if _, blockedUntil, found := r.blocked.GetWithExpiration(ip); found {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(time.Until(blockedUntil).Seconds())+1))
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyLoginAttempts(nil, ip))
			return
		}

		if !r.limiterFor(ip).Allow() {
			r.blocked.Set(ip, true, r.blockTime)
			utils.LogSecurityEvent(r.log, "login_rate_limited", utils.GetRequestID(req.Context()),
				zap.String(constvars.LoggingRemoteIPKey, ip),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(r.blockTime.Seconds())))
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyLoginAttempts(nil, ip))
			return
		}

		next.ServeHTTP(w, req)
	})
}
