// Package config loads typed configuration structs from environment variables.
//
// Fields are described with github.com/caarlos0/env tags. A .env file in the
// working directory, if present, is read once through github.com/joho/godotenv
// before the first parse; variables already set in the process win.
//
//	type Config struct {
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Each (type, prefix) pair is parsed once and cached for the life of the
// process; Reset clears the cache in tests.
package config
