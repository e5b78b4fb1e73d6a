package scip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/goscip/internal/native"
	"github.com/bartolsthoorn/goscip/internal/native/nativetest"
)

func TestRecoverPlugin(t *testing.T) {
	rule := &recordingRule{}
	data := registerPlugin(newPluginBox[BranchRule](rule, nil))
	t.Cleanup(func() { unregisterPlugin(data) })

	box := recoverPlugin[BranchRule](data)
	assert.Same(t, rule, box.impl)
	assert.Nil(t, box.inst.Value())

	assert.PanicsWithValue(t, "scip: plugin callback received nil plugin data", func() {
		recoverPlugin[BranchRule](0)
	})
	assert.Panics(t, func() { recoverPlugin[BranchRule](data + 1000) })
	assert.Panics(t, func() { recoverPlugin[Pricer](data) }, "plugin type mismatch")
}

func TestUnregisterPlugin(t *testing.T) {
	before := registeredPlugins()
	data := registerPlugin(newPluginBox[Pricer](pricerFunc(func(bool) PricerResult { return PricerResult{} }), nil))
	assert.Equal(t, before+1, registeredPlugins())

	assert.True(t, unregisterPlugin(data))
	assert.False(t, unregisterPlugin(data))
	assert.Equal(t, before, registeredPlugins())
}

func TestPluginName(t *testing.T) {
	assert.Equal(t, "mine", pluginName("pricer", "mine"))

	a, b := pluginName("pricer", ""), pluginName("pricer", "")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "pricer-"))
	assert.Len(t, a, len("pricer-")+36)
}

func TestFreePluginRunsOnce(t *testing.T) {
	data := registerPlugin(newPluginBox[BranchRule](&recordingRule{}, nil))
	free := freePlugin[BranchRule]("branchrule")

	assert.Equal(t, native.RetcodeOkay, free(nil, data))
	assert.Panics(t, func() { free(nil, data) }, "a second free finds no box")
}

func TestPluginBoxDroppedOnClose(t *testing.T) {
	e := nativetest.New()
	model := newModel(t, e)

	var data native.PluginData
	model.IncludeBranchRule("r", "", 0, -1, 1, &recordingRule{result: BranchingResult{Kind: BranchCutOff}})
	for d, v := range snapshotPlugins() {
		if box, ok := v.(*pluginBox[BranchRule]); ok && box.inst.Value() == model.inst {
			data = d
		}
	}
	require.NotZero(t, data)

	model.Close()
	_, ok := snapshotPlugins()[data]
	assert.False(t, ok, "plugin box dropped when SCIP freed the rule")
}

func snapshotPlugins() map[native.PluginData]any {
	plugins.Lock()
	defer plugins.Unlock()
	out := make(map[native.PluginData]any, len(plugins.m))
	for k, v := range plugins.m {
		out[k] = v
	}
	return out
}
