package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetWithoutInitFallsBackToDevelopmentLogger(t *testing.T) {
	mu.Lock()
	root = nil
	children = make(map[Category]*zap.SugaredLogger)
	mu.Unlock()

	l := Get(CategoryWorld)
	require.NotNil(t, l)
	assert.Same(t, l, Get(CategoryWorld), "repeated Get for the same category returns the memoized child")
}

func TestInitResetsChildrenAndRaisesLevel(t *testing.T) {
	require.NoError(t, Init(false))
	quiet := Get(CategorySearch)
	require.NotNil(t, quiet)

	require.NoError(t, Init(true))
	verbose := Get(CategorySearch)
	require.NotNil(t, verbose)
	assert.NotSame(t, quiet, verbose, "Init rebuilds the child logger cache")
}

func TestGetReturnsDistinctLoggersPerCategory(t *testing.T) {
	require.NoError(t, Init(false))
	a := Get(CategoryPDDL)
	b := Get(CategoryWatch)
	assert.NotSame(t, a, b)
}

func TestSyncDoesNotPanicWithoutInit(t *testing.T) {
	mu.Lock()
	root = nil
	children = make(map[Category]*zap.SugaredLogger)
	mu.Unlock()

	assert.NotPanics(t, func() { Sync() })
}
