package lexical

import (
	"context"
	"testing"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/engine"
	"github.com/poiesic/scenic/internal/testtext"
	"github.com/poiesic/scenic/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, minDescr float64) *Engine {
	t.Helper()
	lexicons, err := engine.NewLexicons(lexicon.LanguageEnglish)
	require.NoError(t, err)
	e, err := New(lexicons, minDescr, nil)
	require.NoError(t, err)
	return e
}

func TestNew_InvalidDescriptiveness(t *testing.T) {
	lexicons, err := engine.NewLexicons(lexicon.LanguageEnglish)
	require.NoError(t, err)
	_, err = New(lexicons, 1.5, nil)
	assert.ErrorIs(t, err, config.ErrInvalidProcessor)
}

func TestExtract_Chapter(t *testing.T) {
	e := newEngine(t, DefaultMinDescriptiveness)
	assert.Equal(t, config.EngineLexical, e.Name())

	descs, err := e.Extract(context.Background(), testtext.Chapter)
	require.NoError(t, err)
	require.Len(t, descs, 4)

	assert.Equal(t, testtext.Portrait, descs[0].Content)
	assert.Equal(t, core.DescriptionTypeCharacter, descs[0].Type)
	assert.Equal(t, testtext.Castle, descs[1].Content)
	assert.Equal(t, core.DescriptionTypeLocation, descs[1].Type)
	assert.Equal(t, testtext.Hall, descs[2].Content)
	assert.Equal(t, testtext.Gallery, descs[3].Content)

	for _, d := range descs {
		require.NoError(t, core.ValidateRawDescription(&d))
		assert.Equal(t, config.EngineLexical, d.SourceEngine)
		assert.Equal(t, "DESCRIPTION", d.Metadata.Attributes["paragraph_type"])
		assert.Equal(t, d.Position+lexicon.RuneLen(d.Content), d.EndPosition)
	}
}

func TestExtract_NoDescriptiveParagraphs(t *testing.T) {
	e := newEngine(t, DefaultMinDescriptiveness)

	text := testtext.Warning + "\n\n" + testtext.Gossip
	descs, err := e.Extract(context.Background(), text)
	require.NoError(t, err)
	assert.Empty(t, descs)
}

func TestExtract_Cancelled(t *testing.T) {
	e := newEngine(t, DefaultMinDescriptiveness)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, testtext.Chapter)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFactory(t *testing.T) {
	ctx := context.Background()
	settings := config.DefaultSettings()

	cfg := config.ProcessorConfig{Weight: 1, Settings: map[string]string{SettingMinDescriptiveness: "0.8"}}
	e, err := Factory(nil)(ctx, cfg, settings)
	require.NoError(t, err)
	assert.Equal(t, "en:0.8", engine.FingerprintOf(e))

	cfg.Settings[SettingMinDescriptiveness] = "most"
	_, err = Factory(nil)(ctx, cfg, settings)
	assert.ErrorIs(t, err, config.ErrInvalidProcessor)
}
