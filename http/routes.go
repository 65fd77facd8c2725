package http

import "net/http"

// NewRouter mounts the commission endpoints behind the rate limiter and
// request logging.
func NewRouter(h *CommissionHandler, limiter *RateLimiter) http.Handler {
	limited := func(fn http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, fn)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", Health)
	mux.Handle("/commission/compare", limited(h.Compare))
	mux.Handle("/commission/splits", limited(h.SplitOptions))
	mux.Handle("/commission/fee", limited(h.TransactionFee))
	mux.Handle("/commission/history", limited(h.History))

	return LogMiddleware(mux)
}
