package bitgraph

import "runtime"

// widthMode selects between the fixed and dynamic matrix representations.
type widthMode int

const (
	widthAuto widthMode = iota
	widthFixed
	widthDynamic
)

// engineMode selects between the sequential and parallel gossip engines.
type engineMode int

const (
	engineAuto engineMode = iota
	engineSequential
	engineParallel
)

// config holds resolved Option values for a single Build call.
type config struct {
	engine  engineMode
	width   widthMode
	workers int
}

// defaultConfig returns the size-based-auto-selection configuration used
// when the caller supplies no options.
func defaultConfig() config {
	return config{
		engine:  engineAuto,
		width:   widthAuto,
		workers: runtime.GOMAXPROCS(0),
	}
}

// Option configures a single Builder.Build call.
type Option func(*config)

// WithParallel forces the parallel gossip engine regardless of node count.
func WithParallel() Option {
	return func(c *config) { c.engine = engineParallel }
}

// WithSequential forces the sequential gossip engine regardless of node count.
func WithSequential() Option {
	return func(c *config) { c.engine = engineSequential }
}

// WithWorkers caps the number of goroutines the parallel engine forks. A
// value ≤0 is ignored (falls back to runtime.GOMAXPROCS(0)).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithFixedWidth forces the fixed-width matrix representation. Build returns
// ErrInvalidArgument if the node count exceeds 128.
func WithFixedWidth() Option {
	return func(c *config) { c.width = widthFixed }
}

// WithDynamicWidth forces the word-array-backed matrix representation even
// for small node counts.
func WithDynamicWidth() Option {
	return func(c *config) { c.width = widthDynamic }
}

// autoParallelThreshold is the node count at or above which the auto-selected
// engine switches from sequential to parallel; below it the fork/join and
// barrier overhead outweighs the saved work.
const autoParallelThreshold = 2048
