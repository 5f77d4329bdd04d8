package teal

import (
	"tealc/env"
	"tealc/errors"
	"tealc/protocol/vm"
)

// Config configures a Compiler.
type Config struct {
	// CacheSize is the number of compiled programs to keep.
	// Zero disables the cache.
	CacheSize int

	// Debug logs the tree of every program compiled.
	Debug bool

	// DefaultVersion is the version of programs made
	// with Compiler.NewProgram.
	DefaultVersion uint64
}

const defaultCacheSize = 1000

// DefaultConfig returns the configuration used when no
// environment variables are set.
func DefaultConfig() Config {
	return Config{
		CacheSize:      defaultCacheSize,
		DefaultVersion: vm.MaxVersion,
	}
}

// LoadConfig reads the configuration from the variables
// TEALC_CACHE_SIZE, TEALC_DEBUG and TEALC_VERSION in set.
// Unset variables keep their DefaultConfig values.
func LoadConfig(set *env.Set) (Config, error) {
	def := DefaultConfig()
	var cfg Config
	set.IntVar(&cfg.CacheSize, "TEALC_CACHE_SIZE", def.CacheSize)
	set.BoolVar(&cfg.Debug, "TEALC_DEBUG", def.Debug)
	set.Uint64Var(&cfg.DefaultVersion, "TEALC_VERSION", def.DefaultVersion)
	if err := set.Parse(); err != nil {
		return Config{}, err
	}
	if cfg.DefaultVersion == 0 || cfg.DefaultVersion > vm.MaxVersion {
		return Config{}, errors.WithDetailf(ErrBadVersion, "TEALC_VERSION=%d (max %d)", cfg.DefaultVersion, vm.MaxVersion)
	}
	if cfg.CacheSize < 0 {
		return Config{}, errors.WithDetailf(env.ErrBadValue, "TEALC_CACHE_SIZE=%d", cfg.CacheSize)
	}
	return cfg, nil
}
