// Package core implements the hierarchical UI component abstraction the
// page builder is built on: component creation and composition, deferred
// first render, attribute/style/event binding, and destruction.
//
// All registries live on an explicit Context constructed once at process
// start and injected into the factory; there are no package-level
// singletons, so multiple independent trees (and isolated test instances)
// can coexist.
package core

import (
	"math/rand"

	"github.com/go-loom/loom/pkg/bus"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/scheduler"
	"github.com/go-loom/loom/pkg/surface"
)

// ContextConfig configures a Context. Zero fields get working defaults:
// a wall-clock scheduler, in-memory surfaces, and stderr error logging.
type ContextConfig struct {
	Scheduler *scheduler.Scheduler
	Surfaces  surface.Factory
	Errors    errors.Handler
}

// Context owns the process-wide state of one component tree: the component
// registry (key to component), the indexed lookup registry (assigned name
// to component, with queued resolution), the hook registry, the scheduler,
// and the surface factory.
type Context struct {
	sched      *scheduler.Scheduler
	surfaces   surface.Factory
	errs       errors.Handler
	hooks      *Hooks
	components map[string]*Component
	index      *bus.Bus

	// indexOwners maps each assigned index name to the key of the component
	// currently holding it, so a destroyed component that lost its name to a
	// later claimant does not tear down the claimant's resolver.
	indexOwners map[string]string
}

// NewContext creates a Context from cfg.
func NewContext(cfg ContextConfig) *Context {
	sched := cfg.Scheduler
	if sched == nil {
		sched = scheduler.New()
	}
	factory := cfg.Surfaces
	if factory == nil {
		factory = surface.MemoryFactory
	}
	errs := cfg.Errors
	if errs == nil {
		errs = &errors.LogHandler{}
	}
	return &Context{
		sched:       sched,
		surfaces:    factory,
		errs:        errs,
		hooks:       NewHooks(),
		components:  make(map[string]*Component),
		index:       bus.New(sched),
		indexOwners: make(map[string]string),
	}
}

// Scheduler returns the context's task scheduler.
func (ctx *Context) Scheduler() *scheduler.Scheduler { return ctx.sched }

// Hooks returns the context's hook registry.
func (ctx *Context) Hooks() *Hooks { return ctx.hooks }

// Index returns the indexed lookup registry: a shared bus whose channels
// resolve assigned index names to components.
func (ctx *Context) Index() *bus.Bus { return ctx.index }

// Errors returns the context's error handler.
func (ctx *Context) Errors() errors.Handler { return ctx.errs }

// Lookup returns the live component with the given key.
func (ctx *Context) Lookup(key string) (*Component, bool) {
	c, ok := ctx.components[key]
	return c, ok
}

// Len returns the number of live components.
func (ctx *Context) Len() int { return len(ctx.components) }

// Resolve calls fn with the component assigned the given index name. If no
// component carries that name yet, resolution is queued and fn fires once
// one registers; either way fn runs on a later scheduler task.
func (ctx *Context) Resolve(name string, fn func(*Component)) error {
	return ctx.index.Invoke(name, func(v any, ok bool) {
		if !ok || fn == nil {
			return
		}
		if c, isComponent := v.(*Component); isComponent {
			fn(c)
		}
	})
}

func (ctx *Context) register(c *Component) {
	ctx.components[c.key] = c
}

func (ctx *Context) deregister(key string) {
	delete(ctx.components, key)
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newKey returns a random alphanumeric component key. Uniqueness is
// probabilistic, not guaranteed.
func newKey() string {
	b := make([]byte, 12)
	for i := range b {
		b[i] = keyAlphabet[rand.Intn(len(keyAlphabet))]
	}
	return string(b)
}
