package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cached struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache        sync.Map // reflect.Type -> *cached
	dotenvLoaded sync.Once
)

// Load fills v from the environment. Each struct type is parsed once; later
// calls for the same type receive a copy of the first result, including its
// error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()

	key := reflect.TypeFor[T]()
	entry, _ := cache.LoadOrStore(key, &cached{})
	c := entry.(*cached)

	c.once.Do(func() {
		var fresh T
		if err := Parse(&fresh); err != nil {
			c.err = err
			return
		}
		c.value = fresh
	})

	if c.err != nil {
		return c.err
	}
	*v = c.value.(T)
	return nil
}

// MustLoad works like Load but panics on failure. Intended for main.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse fills v from the current environment without caching.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// loadDotenv reads .env once. A missing file is not an error.
func loadDotenv() {
	dotenvLoaded.Do(func() {
		_ = godotenv.Load()
	})
}
