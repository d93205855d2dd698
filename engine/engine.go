// Package engine defines the extraction engine capability shared by every
// backend, plus decorators that add retries and result caching.
package engine

import (
	"context"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
)

// Engine is an opaque description extraction capability.
// Implementations must be safe for concurrent use.
type Engine interface {
	// Name returns the registry name of the engine.
	Name() string

	// Extract returns the descriptions found in text. An empty result
	// with a nil error means the engine found nothing.
	Extract(ctx context.Context, text string) ([]core.RawDescription, error)

	// Available reports whether the engine can currently serve requests.
	Available(ctx context.Context) bool
}

// Factory constructs an engine from its processor configuration and the
// global settings.
type Factory func(ctx context.Context, cfg config.ProcessorConfig, settings *config.Settings) (Engine, error)

// Closer is implemented by engines holding resources.
type Closer interface {
	Close() error
}

// Close closes e, or the innermost engine it decorates, when it holds
// resources.
func Close(e Engine) error {
	for e != nil {
		if c, ok := e.(Closer); ok {
			return c.Close()
		}
		u, ok := e.(interface{ Unwrap() Engine })
		if !ok {
			return nil
		}
		e = u.Unwrap()
	}
	return nil
}

// Fingerprinter is implemented by engines whose output depends on
// configuration beyond their name.
type Fingerprinter interface {
	Fingerprint() string
}

// FingerprintOf returns the configuration fingerprint of e or of the first
// engine it wraps that reports one, or "" when none does.
func FingerprintOf(e Engine) string {
	for e != nil {
		if f, ok := e.(Fingerprinter); ok {
			return f.Fingerprint()
		}
		u, ok := e.(interface{ Unwrap() Engine })
		if !ok {
			return ""
		}
		e = u.Unwrap()
	}
	return ""
}
