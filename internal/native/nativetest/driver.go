package nativetest

import (
	"sync"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// Driver opens nativetest engines and remembers them for inspection.
type Driver struct {
	// Setup, if set, is called on every new engine before it is returned.
	Setup func(*Engine)

	mu     sync.Mutex
	opened []*Engine
}

var _ native.Driver = (*Driver)(nil)

// Open returns a new Engine.
func (d *Driver) Open() (native.Engine, native.Retcode) {
	e := New()
	if d.Setup != nil {
		d.Setup(e)
	}
	d.mu.Lock()
	d.opened = append(d.opened, e)
	d.mu.Unlock()
	return e, native.RetcodeOkay
}

// Last returns the most recently opened engine, or nil.
func (d *Driver) Last() *Engine {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.opened) == 0 {
		return nil
	}
	return d.opened[len(d.opened)-1]
}

// Opened returns every engine opened so far.
func (d *Driver) Opened() []*Engine {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*Engine(nil), d.opened...)
}
