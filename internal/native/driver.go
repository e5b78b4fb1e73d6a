package native

import (
	"sort"
	"sync"
)

// Driver creates engine contexts.
type Driver interface {
	Open() (Engine, Retcode)
}

// DriverFunc adapts a function to Driver.
type DriverFunc func() (Engine, Retcode)

// Open calls f.
func (f DriverFunc) Open() (Engine, Retcode) {
	return f()
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes a driver available under name. It panics if name is
// already taken or d is nil.
func Register(name string, d Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if d == nil {
		panic("native: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("native: Register called twice for driver " + name)
	}
	drivers[name] = d
}

// Lookup returns the driver registered under name.
func Lookup(name string) (Driver, bool) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	d, ok := drivers[name]
	return d, ok
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
