package config

import "runtime"

type Config struct {
	// UseStringDescriptions reads descriptions from string literals preceding a definition.
	// When false, `#` comments are used instead.
	UseStringDescriptions bool

	// MaxParallelism bounds the number of documents analyzed at once by batch analysis.
	MaxParallelism int
}

func Default() *Config {
	return &Config{
		UseStringDescriptions: false,
		MaxParallelism:        runtime.GOMAXPROCS(0),
	}
}
