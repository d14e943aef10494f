package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache stores loaded configurations keyed by their reflect.Type.
	cache sync.Map

	// loadDotEnv loads .env files once per process. A missing .env file is
	// not an error; explicit environment variables always win.
	loadDotEnv = sync.OnceFunc(func() {
		_ = godotenv.Load()
	})
)

// Load populates cfg from environment variables using `env` struct tags.
// Each configuration type is parsed once per process and cached; subsequent
// calls for the same type receive the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	loadDotEnv()

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup where
// a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
