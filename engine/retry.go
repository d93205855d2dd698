// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
)

// ProcessorConfig.Settings keys read by RetryDecorator.
const (
	SettingMaxRetries = "max_retries"
	SettingRetryDelay = "retry_delay"

	DefaultRetryDelay = 500 * time.Millisecond
)

// RetryWithBackoff retries an operation with exponential backoff.
// maxAttempts: maximum number of attempts (must be > 0)
// baseDelay: base delay between retries (doubles on each retry)
// Returns the error from the last attempt if all attempts fail.
func RetryWithBackoff(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	delay := baseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("engine call succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		slog.Debug("engine call failed", "attempt", attempt, "maxAttempts", maxAttempts, "error", lastErr)

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}

	return lastErr
}

// Retrying wraps an engine so that failed Extract calls are retried with
// exponential backoff.
type Retrying struct {
	Engine
	maxAttempts int
	baseDelay   time.Duration
}

// WithRetry decorates e with retries.
func WithRetry(e Engine, maxAttempts int, baseDelay time.Duration) (*Retrying, error) {
	if e == nil {
		return nil, ErrEngineRequired
	}
	if maxAttempts <= 0 {
		return nil, ErrInvalidMaxAttempts
	}
	return &Retrying{Engine: e, maxAttempts: maxAttempts, baseDelay: baseDelay}, nil
}

// Extract calls the wrapped engine until it succeeds or attempts run out.
func (r *Retrying) Extract(ctx context.Context, text string) ([]core.RawDescription, error) {
	var out []core.RawDescription
	err := RetryWithBackoff(ctx, func() error {
		var err error
		out, err = r.Engine.Extract(ctx, text)
		return err
	}, r.maxAttempts, r.baseDelay)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unwrap returns the decorated engine.
func (r *Retrying) Unwrap() Engine {
	return r.Engine
}

// RetryDecorator wraps e with WithRetry when its configuration sets
// max_retries above 1, waiting retry_delay (a Go duration) before the first
// retry. Other engines are returned unchanged. It has the shape of a
// registry decorator.
func RetryDecorator(e Engine, cfg config.ProcessorConfig) (Engine, error) {
	raw := cfg.Setting(SettingMaxRetries, "")
	if raw == "" {
		return e, nil
	}
	attempts, err := strconv.Atoi(raw)
	if err != nil || attempts < 1 {
		return nil, fmt.Errorf("%w: %s must be a positive integer, got %q", config.ErrInvalidProcessor, SettingMaxRetries, raw)
	}
	if attempts == 1 {
		return e, nil
	}
	delay, err := time.ParseDuration(cfg.Setting(SettingRetryDelay, DefaultRetryDelay.String()))
	if err != nil || delay < 0 {
		return nil, fmt.Errorf("%w: invalid %s %q", config.ErrInvalidProcessor, SettingRetryDelay, cfg.Setting(SettingRetryDelay, ""))
	}
	r, err := WithRetry(e, attempts, delay)
	if err != nil {
		return nil, err
	}
	return r, nil
}
