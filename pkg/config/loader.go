package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every variable name of the struct,
// e.g. WithPrefix("UACLASS_") reads UACLASS_HTTP_ADDR for `env:"HTTP_ADDR"`.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFile loads the given files before parsing. Unlike the default .env,
// a missing file is an error.
func WithEnvFile(paths ...string) Option {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, paths...) }
}

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = map[string]any{}
)

// Load parses environment variables into a new T. Successful results are
// cached per type, prefix and env file list.
func Load[T any](opts ...Option) (T, error) {
	var zero T

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	dotenvOnce.Do(func() {
		// A missing default .env file is fine.
		_ = godotenv.Load()
	})

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return zero, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	key := cacheKey[T](o)

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		return cached.(T), nil
	}

	var v T
	if err := env.ParseWithOptions(&v, env.Options{Prefix: o.prefix}); err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}
	cache[key] = v
	return v, nil
}

// MustLoad is like Load but panics on error. Use it for configuration the
// process cannot start without.
func MustLoad[T any](opts ...Option) T {
	v, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return v
}

// Reset drops all cached configurations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func cacheKey[T any](o *loadOptions) string {
	return reflect.TypeFor[T]().String() + "|" + o.prefix + "|" + strings.Join(o.envFiles, ",")
}
