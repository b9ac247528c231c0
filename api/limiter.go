package api

import "net/http"

// Limiter bounds the number of requests handled at once to n. n < 1 means no limit.
func Limiter(n int) func(http.Handler) http.Handler {
	counter := make(chan struct{}, max(n, 0))
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if n < 1 {
				h.ServeHTTP(w, r)
				return
			}
			counter <- struct{}{}
			defer func() { <-counter }()

			h.ServeHTTP(w, r)
		})
	}
}
