package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
)

// limitRegistrations throttles account creation per client IP. It relies on
// chi's RealIP middleware having normalised RemoteAddr.
func (h *Handler) limitRegistrations(next http.Handler) http.Handler {
	if !h.registerLimiter.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !h.registerLimiter.Allow(ip) {
			logger.FromRequest(r).Warn().Str("client_ip", ip).Msg("registration rate limit exceeded")
			h.metrics.ObserveRateLimited()
			w.Header().Set("Retry-After", "60")
			writeError(w, r, ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
