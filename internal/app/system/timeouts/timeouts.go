// internal/app/system/timeouts/timeouts.go
//
// Package timeouts centralizes the context deadlines this app puts on
// backend REST calls, so callers never hard-code durations and operators
// can tune them per deployment through environment variables.
//
// Two tiers cover what this app actually does:
//
//	Ping  - the health endpoint's backend reachability check. Kept tight so
//	        a stalled backend fails the check instead of hanging it.
//	Read  - a single page-sized backend read outside the request path,
//	        such as the startup profile warm-up. In-request reads ride
//	        the request's own context and the client's HTTP timeout.
package timeouts

import (
	"os"
	"sync"
	"time"
)

const (
	DefaultPing = 2 * time.Second
	DefaultRead = 5 * time.Second
)

// Config holds the tier durations. Zero values keep the current setting.
type Config struct {
	Ping time.Duration
	Read time.Duration
}

var (
	mu      sync.RWMutex
	current = Config{Ping: DefaultPing, Read: DefaultRead}
)

// Ping returns the health-check deadline.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return current.Ping
}

// Read returns the out-of-request backend read deadline.
func Read() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return current.Read
}

// Configure overrides tier durations. Zero fields are left alone.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		current.Ping = cfg.Ping
	}
	if cfg.Read > 0 {
		current.Read = cfg.Read
	}
}

// ConfigureFromEnv applies TIMEOUT_PING and TIMEOUT_READ (Go duration
// strings, e.g. "3s") and reports how many overrides took effect.
// Unparsable values are ignored.
func ConfigureFromEnv() int {
	n := 0
	var cfg Config
	if d, ok := envDuration("TIMEOUT_PING"); ok {
		cfg.Ping = d
		n++
	}
	if d, ok := envDuration("TIMEOUT_READ"); ok {
		cfg.Read = d
		n++
	}
	if n > 0 {
		Configure(cfg)
	}
	return n
}

// Reset restores the defaults. Tests use it to undo Configure.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = Config{Ping: DefaultPing, Read: DefaultRead}
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
