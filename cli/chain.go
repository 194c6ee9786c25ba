package cli

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// StageFunc is a stage of a Chain.
// A stage must eventually call either Through or Pass on the chain,
// typically from the completion callback of an asynchronous operation.
type StageFunc[T any] func(c *Chain[T])

// Chain is a linear chain of named asynchronous stages that resolves
// exactly once to a value or an error.
//
// Execution begins with the first stage. Control moves between stages
// with Through and ends with Pass. A stage can only be visited once.
type Chain[T any] struct {
	name   string
	first  StageFunc[T]
	stages map[string]StageFunc[T]

	mu      sync.Mutex
	visited map[string]bool
	started bool

	once  sync.Once
	done  chan struct{}
	value T
	err   error

	log *logrus.Entry
}

// NewChain creates a new chain.
func NewChain[T any](name string) *Chain[T] {
	return &Chain[T]{
		name:    name,
		stages:  map[string]StageFunc[T]{},
		visited: map[string]bool{},
		done:    make(chan struct{}),
		log:     logrus.WithField("context", name),
	}
}

// Resolved returns a chain that is already resolved with v and err.
func Resolved[T any](name string, v T, err error) *Chain[T] {
	c := NewChain[T](name)
	c.started = true
	c.Pass(err, v)
	return c
}

// First sets the initial stage.
func (c *Chain[T]) First(f StageFunc[T]) *Chain[T] {
	c.first = f
	return c
}

// Stage adds a named stage to the chain.
func (c *Chain[T]) Stage(name string, f StageFunc[T]) *Chain[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stages[name] = f
	return c
}

// Exec starts the chain without blocking.
// It is a no-op if the chain has been started already.
func (c *Chain[T]) Exec() *Chain[T] {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return c
	}
	c.started = true
	c.mu.Unlock()

	if c.first == nil {
		var zero T
		c.Pass(fmt.Errorf("chain '%s' has no initial stage", c.name), zero)
		return c
	}

	go c.first(c)
	return c
}

// Through transfers control to the named stage.
// An unknown or previously visited stage resolves the chain with an error.
func (c *Chain[T]) Through(stage string) {
	if c.resolved() {
		return
	}

	c.mu.Lock()
	f, ok := c.stages[stage]
	seen := c.visited[stage]
	if ok && !seen {
		c.visited[stage] = true
	}
	c.mu.Unlock()

	var zero T
	switch {
	case !ok:
		c.Pass(fmt.Errorf("chain '%s' has no stage '%s'", c.name, stage), zero)
		return
	case seen:
		c.Pass(fmt.Errorf("chain '%s' cannot revisit stage '%s'", c.name, stage), zero)
		return
	}

	c.log.Traceln("stage", stage, "...")
	f(c)
}

// Pass resolves the chain with err and v.
// Only the first call has an effect.
func (c *Chain[T]) Pass(err error, v T) {
	c.once.Do(func() {
		c.value = v
		c.err = err
		close(c.done)
	})
}

// Done returns a channel that is closed when the chain resolves.
func (c *Chain[T]) Done() <-chan struct{} { return c.done }

// Wait blocks until the chain resolves and returns the resolution.
func (c *Chain[T]) Wait() (T, error) {
	<-c.done
	return c.value, c.err
}

// Then calls f with the resolution in a new goroutine once the chain resolves.
func (c *Chain[T]) Then(f func(err error, v T)) {
	go func() {
		v, err := c.Wait()
		f(err, v)
	}()
}

func (c *Chain[T]) resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
