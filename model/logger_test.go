package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetLogger_Nil(t *testing.T) {
	previous := Logger()
	t.Cleanup(func() { SetLogger(previous) })

	SetLogger(nil)
	require.NotNil(t, Logger())

	assert.NotPanics(t, func() {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		assert.Error(t, g.Toggle(5, 5))
	})
}

func TestSetLogger_Replaces(t *testing.T) {
	previous := Logger()
	t.Cleanup(func() { SetLogger(previous) })

	l := zap.NewExample()
	SetLogger(l)
	assert.Same(t, l, Logger())
}
