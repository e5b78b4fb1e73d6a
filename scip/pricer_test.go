package scip

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/goscip/internal/native"
	"github.com/bartolsthoorn/goscip/internal/native/nativetest"
)

// columnPricer adds one column per round until it has added limit columns.
type columnPricer struct {
	model ModelRef[ProblemModel]
	limit int

	columns []*Variable
	farkas  int
}

func (p *columnPricer) GenerateColumns(farkas bool) PricerResult {
	if farkas {
		p.farkas++
	}
	if len(p.columns) == p.limit {
		return PricerResult{State: PricerDidNotRun}
	}
	name := fmt.Sprintf("col%d", len(p.columns)+1)
	v := p.model.Get().AddPricedVar(0, 1, 1, name, Continuous, 1)
	p.columns = append(p.columns, v)
	return PricerResult{State: PricerFoundColumns}
}

type pricerFunc func(farkas bool) PricerResult

func (f pricerFunc) GenerateColumns(farkas bool) PricerResult { return f(farkas) }

func TestPricerColumnGeneration(t *testing.T) {
	e := nativetest.New()
	e.Script = nativetest.Script{
		PricingRounds: 5,
		Solution:      map[string]float64{"x": 1, "col1": 1, "col2": 0.5},
	}
	model := newModel(t, e)
	x := model.AddVar(0, 1, 2, "x", Continuous)

	pricer := &columnPricer{model: NewModelRef(model), limit: 2}
	model.IncludePricer("columns", "adds two columns", 0, false, pricer)
	assert.Equal(t, []string{"columns"}, e.Pricers())

	solved := model.Solve()
	require.Len(t, pricer.columns, 2)

	calls := e.Records().PricerCalls
	require.Len(t, calls, 3)
	assert.Equal(t, native.ResultSuccess, calls[0].Result)
	assert.Equal(t, native.ResultSuccess, calls[1].Result)
	assert.Equal(t, native.ResultDidNotRun, calls[2].Result)
	assert.Equal(t, 3, calls[2].VarsBefore)

	vars := solved.Vars()
	require.Len(t, vars, 3)
	assert.Same(t, x, vars[0])
	assert.Same(t, pricer.columns[0], vars[1])
	assert.Same(t, pricer.columns[1], solved.Var(pricer.columns[1].Index()))
	assert.Equal(t, 3, solved.NVars())

	sol := solved.BestSol()
	require.NotNil(t, sol)
	assert.Equal(t, 1.0, sol.Val(pricer.columns[0]))
	assert.Equal(t, 3.5, solved.ObjVal())

	solved.Close()
	assert.Equal(t, 1, e.VarReleases("col1"))
	assert.Equal(t, 1, e.VarReleases("col2"))
	requireClean(t, e)
}

func TestPricerLowerBoundAndStopEarly(t *testing.T) {
	e := nativetest.New()
	e.Script = nativetest.Script{PricingRounds: 3}
	model := newModel(t, e)

	bound := 12.5
	model.IncludePricer("", "", 0, true, pricerFunc(func(bool) PricerResult {
		return PricerResult{State: PricerStopEarly, LowerBound: &bound}
	}))

	solved := model.Solve()
	defer solved.Close()

	calls := e.Records().PricerCalls
	require.Len(t, calls, 1)
	assert.True(t, calls[0].StopEarly)
	assert.Equal(t, 12.5, calls[0].LowerBound)
	assert.Equal(t, native.ResultSuccess, calls[0].Result)
}

func TestPricerFarkas(t *testing.T) {
	e := nativetest.New()
	e.Script = nativetest.Script{Farkas: true}
	model := newModel(t, e)
	pricer := &columnPricer{model: NewModelRef(model), limit: 1}
	model.IncludePricer("", "", 0, false, pricer)

	solved := model.Solve()
	defer solved.Close()

	assert.Equal(t, 1, pricer.farkas)
	calls := e.Records().PricerCalls
	require.Len(t, calls, 2)
	assert.True(t, calls[0].Farkas)
	assert.Equal(t, 1, calls[0].VarsAfter)
	assert.False(t, calls[1].Farkas)
	assert.Equal(t, native.ResultDidNotRun, calls[1].Result)
}

func TestPricerContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		farkas bool
		result PricerResult
		want   string
	}{
		{
			name:   "found columns without adding any",
			result: PricerResult{State: PricerFoundColumns},
			want:   "scip: pricer reported new columns but the number of variables did not increase",
		},
		{
			name:   "stop early in farkas pricing",
			farkas: true,
			result: PricerResult{State: PricerStopEarly},
			want:   "scip: pricer requested to stop early during Farkas pricing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := nativetest.New()
			e.Script = nativetest.Script{Farkas: tt.farkas}
			model := newModel(t, e)
			model.AddVar(0, 1, 1, "x", Binary)
			model.IncludePricer("", "", 0, false, pricerFunc(func(bool) PricerResult {
				return tt.result
			}))

			assert.PanicsWithValue(t, tt.want, func() { model.Solve() })

			model.Close()
			requireClean(t, e)
		})
	}
}

func TestAddPricedVarOutsidePricing(t *testing.T) {
	e := nativetest.New()
	model := newModel(t, e)
	defer model.Close()

	_, err := model.TryAddPricedVar(0, 1, 1, "late", Continuous, 1)
	assert.ErrorIs(t, err, &Error{Op: "AddPricedVar", Retcode: RetcodeInvalidCall})
	assert.Empty(t, model.Vars())
	assert.Equal(t, 1, e.VarReleases("late"))
}

func TestIncludePricerFailure(t *testing.T) {
	e := nativetest.New()
	model := newModel(t, e)
	defer model.Close()
	before := registeredPlugins()

	assert.Error(t, model.TryIncludePricer("p", "", 0, false, nil))

	model.IncludePricer("p", "", 0, false, pricerFunc(func(bool) PricerResult { return PricerResult{} }))
	err := model.TryIncludePricer("p", "", 0, false, pricerFunc(func(bool) PricerResult { return PricerResult{} }))
	assert.ErrorIs(t, err, &Error{Op: "IncludePricer", Retcode: RetcodeKeyAlreadyExisting})
	assert.Equal(t, before+1, registeredPlugins())
}

func TestPricerResultState(t *testing.T) {
	assert.Equal(t, "DidNotRun", PricerDidNotRun.String())
	assert.Equal(t, "FoundColumns", PricerFoundColumns.String())
	assert.Equal(t, "StopEarly", PricerStopEarly.String())
	assert.Equal(t, native.ResultDidNotRun, PricerDidNotRun.toNative())
	assert.Equal(t, native.ResultSuccess, PricerFoundColumns.toNative())
	assert.Equal(t, native.ResultSuccess, PricerStopEarly.toNative())
	assert.Panics(t, func() { PricerResultState(7).toNative() })
}
