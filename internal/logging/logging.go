// Package logging provides categorized structured loggers for the
// planner: one named child logger per subsystem instead of one
// undifferentiated root logger.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem's logger.
type Category string

const (
	CategoryOntology Category = "ontology"
	CategoryUnify    Category = "unify"
	CategoryWorld    Category = "world"
	CategoryEvents   Category = "events"
	CategorySearch   Category = "search"
	CategoryDerive   Category = "derive"
	CategoryPDDL     Category = "pddl"
	CategoryCLI      Category = "cli"
	CategoryWatch    Category = "watch"
)

var (
	mu       sync.RWMutex
	root     *zap.Logger
	children = make(map[Category]*zap.SugaredLogger)
)

// Init builds the root logger. verbose raises the level to debug, matching
// main.go's `if verbose { config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel) }`.
func Init(verbose bool) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	root = l
	children = make(map[Category]*zap.SugaredLogger)
	mu.Unlock()
	return nil
}

// Get returns (or lazily creates) the named-child logger for category. If
// Init has not been called, it falls back to a development logger so
// packages can log during tests without a CLI entry point.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := children[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := children[category]; ok {
		return l
	}
	if root == nil {
		root, _ = zap.NewDevelopment()
		if root == nil {
			root = zap.NewNop()
		}
	}
	l := root.Named(string(category)).Sugar()
	children[category] = l
	return l
}

// Sync flushes every logger's buffered output, mirroring main.go's
// PersistentPostRun `logger.Sync()`. Sync errors on stderr-backed loggers
// are expected on some platforms and intentionally ignored, as main.go
// does with `_ = logger.Sync()`.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if root != nil {
		_ = root.Sync()
	}
	for _, l := range children {
		_ = l.Sync()
	}
}
