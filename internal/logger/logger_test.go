package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()

	require.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.Info().Str("k", "v").Msg("discarded")
	})
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()

	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_WithoutLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.Debug().Msg("global logger fallback")
	})
}

func TestFromContext_WithLoggerAttached(t *testing.T) {
	nop := zerolog.Nop()
	ctx := nop.WithContext(context.Background())

	l := FromContext(ctx)

	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
