// Package redis provides Redis client initialization, health checking, and a
// Redis-backed menu cache.
//
// Connect validates the connection URL, retries transient failures, and
// verifies connectivity with a ping before returning the client:
//
//	cfg := redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//		RetryAttempts: 3,
//		RetryInterval: 5 * time.Second,
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// NewCache adapts the client to the menu cache interface so menu pools share
// their node lists across processes:
//
//	pool := menu.NewPool(menu.WithCache(redis.NewCache(client), 5*time.Minute))
//
// Healthcheck returns a ping function for readiness probes:
//
//	check := redis.Healthcheck(client)
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := check(r.Context()); err != nil {
//			http.Error(w, "redis unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
//
// The package defines sentinel errors (ErrFailedToParseRedisConnString,
// ErrRedisNotReady, ErrEmptyConnectionURL, ErrHealthcheckFailed) that wrap
// the underlying client errors and can be checked with errors.Is().
package redis
