// Package config loads typed configuration from the environment.
//
// A .env file in the working directory is read once on first use (a missing
// file is fine), then caarlos0/env fills the tagged struct. Each struct type
// is parsed once and cached:
//
//	var cfg config.App
//	config.MustLoad(&cfg)
package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cacheMu    sync.Mutex
	cache      = map[reflect.Type]any{}
)

// Load parses the environment into cfg. Later calls with the same type copy
// the cached value.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cache[typ] = *cfg
	return nil
}

// MustLoad is Load that panics on error. Use it at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the given variables only, bypassing the process
// environment, .env and the cache.
func Parse[T any](cfg *T, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
