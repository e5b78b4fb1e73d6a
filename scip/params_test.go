package scip

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/bartolsthoorn/goscip/internal/native"
	"github.com/bartolsthoorn/goscip/internal/native/nativetest"
)

func TestLoadParams(t *testing.T) {
	ps, err := LoadParams(filepath.Join("testdata", "params.yaml"))
	require.NoError(t, err)

	require.NotNil(t, ps.Presolving)
	assert.Equal(t, ParamFast, *ps.Presolving)
	require.NotNil(t, ps.Heuristics)
	assert.Equal(t, ParamOff, *ps.Heuristics)
	assert.Nil(t, ps.Separating)
	assert.Equal(t, 90*time.Second, ps.TimeLimit)
	assert.True(t, ps.HideOutput)
	assert.Equal(t, map[string]int64{"limits/nodes": 1000}, ps.Longints)
	assert.Equal(t, map[string]float64{"limits/gap": 0.01}, ps.Reals)
	assert.Equal(t, map[string]bool{"misc/catchctrlc": false}, ps.Bools)
	assert.Equal(t, map[string]string{"lp/initalgorithm": "d"}, ps.Strings)
	assert.Equal(t, 8, ps.len())
}

func TestLoadParamsErrors(t *testing.T) {
	_, err := LoadParams(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presolving: extreme\n"), 0o644))
	_, err = LoadParams(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "extreme")
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty document", input: ""},
		{name: "comment only", input: "# nothing\n"},
		{name: "unknown key", input: "threads: 4\n", wantErr: "field threads not found"},
		{name: "unknown setting", input: "separating: maximal\n", wantErr: "line 1"},
		{name: "wrong value type", input: "ints:\n  display/verblevel: loud\n", wantErr: "cannot unmarshal"},
		{name: "negative time limit", input: "time_limit: -5s\n", wantErr: "negative time_limit"},
		{name: "bad duration", input: "time_limit: soon\n", wantErr: "cannot unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := ParseParams([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, ps.len())
		})
	}
}

func TestParamSettingYAML(t *testing.T) {
	aggressive := ParamAggressive
	out, err := yaml.Marshal(&ParamSet{Separating: &aggressive, TimeLimit: 2 * time.Minute})
	require.NoError(t, err)
	assert.Equal(t, "separating: aggressive\ntime_limit: 2m0s\n", string(out))

	ps, err := ParseParams(out)
	require.NoError(t, err)
	require.NotNil(t, ps.Separating)
	assert.Equal(t, ParamAggressive, *ps.Separating)
	assert.Equal(t, 2*time.Minute, ps.TimeLimit)
}

func TestApplyParams(t *testing.T) {
	e := nativetest.New()
	ps, err := LoadParams(filepath.Join("testdata", "params.yaml"))
	require.NoError(t, err)

	m, err := New(WithEngine(e)).ApplyParams(ps)
	require.NoError(t, err)
	defer m.Close()

	fast, _ := e.Emphasis("presolving")
	assert.Equal(t, native.ParamSettingFast, fast)
	off, _ := e.Emphasis("heuristics")
	assert.Equal(t, native.ParamSettingOff, off)
	_, ok := e.Emphasis("separating")
	assert.False(t, ok)

	assert.Equal(t, 90.0, e.Param("limits/time"))
	assert.Equal(t, 0, e.Param("display/verblevel"))
	assert.Equal(t, int64(1000), e.Param("limits/nodes"))
	assert.Equal(t, 0.01, e.Param("limits/gap"))
	assert.Equal(t, false, e.Param("misc/catchctrlc"))
	assert.Equal(t, "d", e.Param("lp/initalgorithm"))
}

func TestApplyParamsCollectsEveryFailure(t *testing.T) {
	e := nativetest.New()
	m := New(WithEngine(e))
	defer m.Close()

	_, err := m.ApplyParams(&ParamSet{
		Ints:  map[string]int{"display/verblevel": 9, "display/freq": 10},
		Reals: map[string]float64{"limits/time": -1, "limits/gap": 0.5},
		Bools: map[string]bool{"no/such/param": true},
	})
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.EqualError(t, errs[0], `scip: SetIntParam failed: parameter "display/verblevel" rejected with retcode ParameterWrongVal`)
	assert.EqualError(t, errs[1], `scip: SetRealParam failed: parameter "limits/time" rejected with retcode ParameterWrongVal`)
	assert.ErrorIs(t, errs[2], &Error{Op: "SetBoolParam", Retcode: RetcodeParameterUnknown})

	// Valid parameters in the same set still apply.
	assert.Equal(t, 10, e.Param("display/freq"))
	assert.Equal(t, 0.5, e.Param("limits/gap"))
}

func TestApplyNilParams(t *testing.T) {
	m := New(WithEngine(nativetest.New()))
	defer m.Close()
	got, err := m.ApplyParams(nil)
	require.NoError(t, err)
	assert.Same(t, m, got)
}
