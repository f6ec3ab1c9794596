package middleware

import (
	"net"
	"net/http"
	"strconv"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/ratelimit"

	"github.com/rs/zerolog"
)

// clientIP returns the host part of RemoteAddr. The router only installs
// chi's RealIP, which rewrites RemoteAddr, when the proxy is trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit counts every request per client IP and answers 429 once the
// limiter denies it. Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			res, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.Error().Err(err).Str("ip", ip).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}

			if !res.Allowed {
				logger.Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Dur("retry_after", res.RetryAfter).
					Msg("rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(ratelimit.RetryAfterSeconds(res.RetryAfter)))
				writeDomainError(w, r, http.StatusTooManyRequests, model.ErrTooManyAttempts)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
