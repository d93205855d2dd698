package strategy

import "errors"

var (
	// ErrUnknownStrategy is returned for a mode with no strategy.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrEngineNotFound is returned when a named engine is not initialized.
	ErrEngineNotFound = errors.New("engine not found")

	// ErrNoEngines is returned when a strategy is given no engines.
	ErrNoEngines = errors.New("no engines available")

	// ErrEnginePanic wraps a panic raised inside an engine.
	ErrEnginePanic = errors.New("engine panicked")
)
