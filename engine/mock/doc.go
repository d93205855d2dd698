// Package mock provides a configurable engine for tests.
//
// Usage:
//
//	e := mock.NewEngine("fast", core.RawDescription{Content: "A red door."})
//	e.ExtractFunc = func(ctx context.Context, text string) ([]core.RawDescription, error) {
//	    return nil, errors.New("backend down")
//	}
//
//	// Check call counts
//	count := e.CallCount()
//
// # Default Behavior
//
// Extract returns a copy of the descriptions the engine was created with,
// and Available reports true. Engines are safe for concurrent use.
package mock
