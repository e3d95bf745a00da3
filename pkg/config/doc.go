// Package config loads typed configuration structs from environment
// variables.
//
// Structs describe their variables with github.com/caarlos0/env tags. The
// first call to Load reads a .env file from the working directory (when one
// exists) with github.com/joho/godotenv; each struct type is then parsed once
// and cached, so every component asking for the same type sees the same
// values.
//
//	type Config struct {
//		EndpointPath string   `env:"COLLECT_ENDPOINT_PATH" envDefault:"/api/collect-email"`
//		Sinks        []string `env:"COLLECT_SINKS" envSeparator:"," envDefault:"log"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Use Parse for values that must not be cached, for example in tests.
package config
