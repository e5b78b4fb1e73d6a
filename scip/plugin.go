package scip

import (
	"fmt"
	"sync"
	"weak"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// plugins maps the opaque values stored in SCIP plugin data to the Go
// implementations behind them. SCIP only ever sees the key.
var plugins = struct {
	sync.Mutex
	next native.PluginData
	m    map[native.PluginData]any
}{m: make(map[native.PluginData]any)}

// pluginBox is what a key resolves to. The instance is held weakly so a
// registered plugin does not keep an unclosed model alive; the engine frees
// the plugin when the instance's finalizer frees the engine. By then the
// weak pointer is cleared, so the box keeps its own metrics and logger.
type pluginBox[T any] struct {
	impl    T
	inst    weak.Pointer[instance]
	metrics *Metrics
	log     *zap.Logger
}

func newPluginBox[T any](impl T, inst *instance) *pluginBox[T] {
	box := &pluginBox[T]{impl: impl, inst: weak.Make(inst), log: Logger()}
	if inst != nil {
		box.metrics = inst.metrics
		box.log = inst.log
	}
	return box
}

func registerPlugin(box any) native.PluginData {
	plugins.Lock()
	defer plugins.Unlock()
	plugins.next++
	data := plugins.next
	plugins.m[data] = box
	return data
}

// recoverPlugin turns plugin data handed back by SCIP into the box that
// was registered for it.
//
// This is the one place the binding trusts SCIP blindly: nothing local can
// prove that data is the value given at inclusion time. A missing key or a
// box of another plugin type means that trust was broken, and it panics.
func recoverPlugin[T any](data native.PluginData) *pluginBox[T] {
	if data == 0 {
		panic("scip: plugin callback received nil plugin data")
	}
	plugins.Lock()
	v, ok := plugins.m[data]
	plugins.Unlock()
	if !ok {
		panic(fmt.Sprintf("scip: plugin callback received unknown plugin data %d", data))
	}
	box, ok := v.(*pluginBox[T])
	if !ok {
		panic(fmt.Sprintf("scip: plugin data %d holds %T, not a %T", data, v, box))
	}
	return box
}

// unregisterPlugin drops the box for data. It reports false if data was
// already gone.
func unregisterPlugin(data native.PluginData) bool {
	plugins.Lock()
	defer plugins.Unlock()
	if _, ok := plugins.m[data]; !ok {
		return false
	}
	delete(plugins.m, data)
	return true
}

// registeredPlugins returns the number of live plugin boxes.
func registeredPlugins() int {
	plugins.Lock()
	defer plugins.Unlock()
	return len(plugins.m)
}

// pluginName returns name, or a unique generated one when name is empty.
// SCIP refuses two plugins of the same type with equal names.
func pluginName(prefix, name string) string {
	if name != "" {
		return name
	}
	return prefix + "-" + uuid.NewString()
}

// freePlugin is the shared free callback: SCIP calls it exactly once per
// included plugin when it discards the plugin.
func freePlugin[T any](kind string) native.PluginFreeFunc {
	return func(_ native.Engine, data native.PluginData) native.Retcode {
		box := recoverPlugin[T](data)
		unregisterPlugin(data)
		box.metrics.pluginFreed()
		box.metrics.invoked(kind, "free")
		box.log.Debug("freed plugin", zap.String("kind", kind))
		return native.RetcodeOkay
	}
}
