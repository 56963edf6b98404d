// Package environment abstracts where the launcher reads its variables from.
//
// The container environment is computed from a read-only snapshot supplied by
// the caller; Provider is that snapshot. Implementations may read the process
// environment, a .env file, or launcher config defaults.
package environment

import (
	"context"
	"os"
)

// Provider is a read-only view of an environment. Get reports whether the
// variable is set at all; a set-but-empty variable returns ("", true).
type Provider interface {
	Get(ctx context.Context, name string) (string, bool)
}

// Map is an in-memory Provider, mostly useful for tests and config defaults.
type Map map[string]string

func (m Map) Get(_ context.Context, name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type osProvider struct{}

func (osProvider) Get(_ context.Context, name string) (string, bool) {
	return os.LookupEnv(name)
}

// OS returns a Provider backed by the process environment.
func OS() Provider {
	return osProvider{}
}

type multi []Provider

func (m multi) Get(ctx context.Context, name string) (string, bool) {
	for _, p := range m {
		if p == nil {
			continue
		}
		if v, ok := p.Get(ctx, name); ok {
			return v, true
		}
	}
	return "", false
}

// Multi layers providers; the first one that has the variable wins. Nil
// entries are skipped so callers can pass optional sources unconditionally.
func Multi(providers ...Provider) Provider {
	return multi(providers)
}
