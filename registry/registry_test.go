package registry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/engine"
	"github.com/poiesic/scenic/engine/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsFor(lite bool, names ...string) *config.Settings {
	s := config.NewSettings(config.WithLiteMode(lite))
	s.Processors = map[string]config.ProcessorConfig{}
	for _, n := range names {
		s.Processors[n] = config.ProcessorConfig{Enabled: true, Weight: 1.0}
	}
	return s
}

func TestRegister(t *testing.T) {
	r := New(settingsFor(false, "a"))

	require.NoError(t, r.Register("a", mock.Factory(mock.NewEngine("a"))))
	assert.ErrorIs(t, r.Register("a", mock.Factory(mock.NewEngine("a"))), ErrDuplicateEngine)
	assert.ErrorIs(t, r.Register("", mock.Factory(mock.NewEngine("x"))), ErrInvalidName)
	assert.ErrorIs(t, r.Register("b", nil), ErrInvalidName)
	assert.Equal(t, []string{"a"}, r.Registered())
}

func TestInitialize_RegistrationOrder(t *testing.T) {
	r := New(settingsFor(false, "c", "a", "b"))
	for _, n := range []string{"c", "a", "b"} {
		require.NoError(t, r.Register(n, mock.Factory(mock.NewEngine(n))))
	}
	assert.Nil(t, r.Entries())

	require.NoError(t, r.Initialize(context.Background()))
	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].Name)
	assert.Equal(t, "a", entries[1].Name)
	assert.Equal(t, "b", entries[2].Name)

	e, ok := r.Entry("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, e.Weight())
	_, ok = r.Entry("missing")
	assert.False(t, ok)

	assert.ErrorIs(t, r.Register("d", mock.Factory(mock.NewEngine("d"))), ErrAlreadyInitialized)
}

func TestInitialize_OmitsBrokenEngines(t *testing.T) {
	s := settingsFor(false, "ok1", "ok2", "broken", "offline", "disabled")
	s.Processors["disabled"] = config.ProcessorConfig{Enabled: false, Weight: 1}

	offline := mock.NewEngine("offline")
	offline.AvailableFunc = func(context.Context) bool { return false }

	r := New(s)
	require.NoError(t, r.Register("ok1", mock.Factory(mock.NewEngine("ok1"))))
	require.NoError(t, r.Register("broken", mock.FailingFactory(errors.New("no model"))))
	require.NoError(t, r.Register("offline", mock.Factory(offline)))
	require.NoError(t, r.Register("disabled", mock.Factory(mock.NewEngine("disabled"))))
	require.NoError(t, r.Register("unconfigured", mock.Factory(mock.NewEngine("unconfigured"))))
	require.NoError(t, r.Register("ok2", mock.Factory(mock.NewEngine("ok2"))))

	require.NoError(t, r.Initialize(context.Background()))
	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "ok1", entries[0].Name)
	assert.Equal(t, "ok2", entries[1].Name)
}

func TestInitialize_MinimumViable(t *testing.T) {
	ctx := context.Background()

	t.Run("one engine without lite mode", func(t *testing.T) {
		a := &closingEngine{Engine: mock.NewEngine("a")}
		r := New(settingsFor(false, "a"))
		require.NoError(t, r.Register("a", func(context.Context, config.ProcessorConfig, *config.Settings) (engine.Engine, error) {
			return a, nil
		}))
		assert.ErrorIs(t, r.Initialize(ctx), ErrInsufficientEngines)
		// The failure is sticky.
		assert.ErrorIs(t, r.Initialize(ctx), ErrInsufficientEngines)
		assert.ErrorIs(t, r.Err(), ErrInsufficientEngines)

		// No engine survives a failed build.
		assert.True(t, r.Initialized())
		assert.Empty(t, r.Entries())
		_, ok := r.Entry("a")
		assert.False(t, ok)
		assert.Equal(t, 1, a.closed)
	})

	t.Run("one engine in lite mode", func(t *testing.T) {
		r := New(settingsFor(true, "a"))
		require.NoError(t, r.Register("a", mock.Factory(mock.NewEngine("a"))))
		assert.NoError(t, r.Initialize(ctx))
	})

	t.Run("no engines in lite mode", func(t *testing.T) {
		r := New(settingsFor(true))
		assert.ErrorIs(t, r.Initialize(ctx), ErrInsufficientEngines)
	})
}

func TestInitialize_Once(t *testing.T) {
	var mu sync.Mutex
	builds := 0
	factory := func(name string) engine.Factory {
		return func(ctx context.Context, cfg config.ProcessorConfig, s *config.Settings) (engine.Engine, error) {
			mu.Lock()
			builds++
			mu.Unlock()
			return mock.NewEngine(name), nil
		}
	}

	r := New(settingsFor(false, "a", "b"))
	require.NoError(t, r.Register("a", factory("a")))
	require.NoError(t, r.Register("b", factory("b")))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Initialize(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, builds)
	assert.True(t, r.Initialized())
	assert.Len(t, r.Entries(), 2)
}

func TestInitialize_Decorators(t *testing.T) {
	wrapped := map[string]bool{}
	decorator := func(e engine.Engine, cfg config.ProcessorConfig) (engine.Engine, error) {
		wrapped[e.Name()] = true
		if e.Name() == "b" {
			return nil, errors.New("cannot wrap")
		}
		return e, nil
	}

	r := New(settingsFor(true, "a", "b"), WithDecorator(decorator))
	require.NoError(t, r.Register("a", mock.Factory(mock.NewEngine("a"))))
	require.NoError(t, r.Register("b", mock.Factory(mock.NewEngine("b"))))
	require.NoError(t, r.Initialize(context.Background()))

	assert.True(t, wrapped["a"])
	assert.True(t, wrapped["b"])
	entries := r.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Name)
	assert.NoError(t, r.Close())
}

func TestInitialize_Cancelled(t *testing.T) {
	r := New(settingsFor(false, "a", "b"))
	require.NoError(t, r.Register("a", mock.Factory(mock.NewEngine("a"))))
	require.NoError(t, r.Register("b", mock.Factory(mock.NewEngine("b"))))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Initialize(ctx), context.Canceled)
	assert.False(t, r.Initialized())
	assert.NoError(t, r.Err())
	assert.Empty(t, r.Entries())

	// A cancelled build is not recorded.
	require.NoError(t, r.Initialize(context.Background()))
	assert.Len(t, r.Entries(), 2)
}

func TestInitialize_CancelledMidBuild(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(settingsFor(false, "a", "b"))
	require.NoError(t, r.Register("a", func(context.Context, config.ProcessorConfig, *config.Settings) (engine.Engine, error) {
		cancel()
		return mock.NewEngine("a"), nil
	}))
	require.NoError(t, r.Register("b", mock.Factory(mock.NewEngine("b"))))

	assert.ErrorIs(t, r.Initialize(ctx), context.Canceled)
	assert.False(t, r.Initialized())
	require.NoError(t, r.Initialize(context.Background()))
	assert.Len(t, r.Entries(), 2)
}

type closingEngine struct {
	*mock.Engine
	closed int
}

func (e *closingEngine) Close() error {
	e.closed++
	return nil
}
