//go:build scip

package scipc_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/goscip/internal/native/scipc"
	"github.com/bartolsthoorn/goscip/scip"
)

func newModel(t *testing.T) *scip.ProblemModel {
	t.Helper()
	m, err := scip.TryNew(scip.WithDriver(scipc.DriverName))
	require.NoError(t, err)
	return m.HideOutput().IncludeDefaultPlugins().CreateProb("test")
}

func TestSolveIntegerProgram(t *testing.T) {
	model := newModel(t).SetObjSense(scip.Maximize)
	x1 := model.AddVar(0, scip.Inf(), 3, "x1", scip.Integer)
	x2 := model.AddVar(0, scip.Inf(), 4, "x2", scip.Integer)
	model.AddCons([]*scip.Variable{x1, x2}, []float64{2, 1}, scip.NegInf(), 100, "c1")
	model.AddCons([]*scip.Variable{x1, x2}, []float64{1, 2}, scip.NegInf(), 80, "c2")

	solved := model.Solve()
	defer solved.Close()

	require.Equal(t, scip.StatusOptimal, solved.Status())
	assert.InDelta(t, 200, solved.ObjVal(), 1e-6)
	sol := solved.BestSol()
	assert.InDelta(t, 40, sol.Val(x1), 1e-6)
	assert.InDelta(t, 20, sol.Val(x2), 1e-6)
	assert.Len(t, solved.Vars(), solved.NVars())
}

type firstCandidate struct {
	calls int
}

func (r *firstCandidate) Execute(cands []scip.BranchingCandidate) scip.BranchingResult {
	r.calls++
	return scip.BranchOn(cands[0])
}

// bareModel returns a problem model with presolving, separation and
// primal heuristics off, so plugins see the LP relaxation as built.
func bareModel(t *testing.T, name string, opts ...scip.Option) *scip.ProblemModel {
	t.Helper()
	unsolved, err := scip.TryNew(append([]scip.Option{scip.WithDriver(scipc.DriverName)}, opts...)...)
	require.NoError(t, err)
	return unsolved.
		HideOutput().
		SetPresolving(scip.ParamOff).
		SetSeparating(scip.ParamOff).
		SetHeuristics(scip.ParamOff).
		IncludeDefaultPlugins().
		CreateProb(name).
		SetObjSense(scip.Maximize)
}

// addKnapsack adds binary items and a capacity constraint.
func addKnapsack(model *scip.ProblemModel, weights, values []float64, capacity float64) []*scip.Variable {
	vars := make([]*scip.Variable, len(weights))
	for i := range weights {
		vars[i] = model.AddVar(0, 1, values[i], "", scip.Binary)
	}
	model.AddCons(vars, weights, scip.NegInf(), capacity, "capacity")
	return vars
}

func smallKnapsack(model *scip.ProblemModel) []*scip.Variable {
	return addKnapsack(model,
		[]float64{12, 7, 11, 8, 9},
		[]float64{24, 13, 23, 15, 16},
		26)
}

// TestBranchRule solves a knapsack whose LP relaxation is fractional.
func TestBranchRule(t *testing.T) {
	model := bareModel(t, "knapsack")
	smallKnapsack(model)

	rule := &firstCandidate{}
	model.IncludeBranchRule("first", "branches on the first candidate", 1000000, -1, 1, rule)

	solved := model.Solve()
	defer solved.Close()

	require.Equal(t, scip.StatusOptimal, solved.Status())
	assert.InDelta(t, 51, solved.ObjVal(), 1e-6)
	assert.Positive(t, rule.calls)
}

type cutOffRule struct {
	calls int
}

func (r *cutOffRule) Execute([]scip.BranchingCandidate) scip.BranchingResult {
	r.calls++
	return scip.BranchingResult{Kind: scip.BranchCutOff}
}

func TestBranchCutOff(t *testing.T) {
	metrics := scip.NewMetrics(prometheus.NewRegistry())
	model := bareModel(t, "cutoff", scip.WithMetrics(metrics))
	smallKnapsack(model)

	rule := &cutOffRule{}
	model.IncludeBranchRule("cutoff", "cuts off every node", 1000000, -1, 1, rule)

	solved := model.Solve()
	assert.Equal(t, int64(1), solved.NNodes())
	assert.Equal(t, 1, rule.calls)

	solved.Close()
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PluginsRegistered), "SCIPfree ran the free callback")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PluginInvocations.WithLabelValues("branchrule", "free")))
}

type limitedRule struct {
	model scip.ModelRef[scip.ProblemModel]

	calls   int
	maxCand int
	maxVars int
}

func (r *limitedRule) Execute(cands []scip.BranchingCandidate) scip.BranchingResult {
	r.calls++
	r.maxCand = max(r.maxCand, len(cands))
	r.maxVars = max(r.maxVars, r.model.Get().NVars())
	for _, c := range cands {
		if c.Frac <= 0 || c.Frac >= 1 {
			panic("candidate with integral LP value")
		}
	}
	return scip.BranchOn(cands[0])
}

func TestBranchRuleUnderNodeLimit(t *testing.T) {
	unsolved, err := scip.TryNew(scip.WithDriver(scipc.DriverName))
	require.NoError(t, err)
	model := unsolved.
		HideOutput().
		SetLongintParam("limits/nodes", 2).
		SetPresolving(scip.ParamOff).
		SetSeparating(scip.ParamOff).
		SetHeuristics(scip.ParamOff).
		IncludeDefaultPlugins().
		CreateProb("limited").
		SetObjSense(scip.Maximize)
	// Every LP vertex packs four and a half items, so no node of the first
	// few is integral and no incumbent exists when the limit hits.
	weights := make([]float64, 10)
	for i := range weights {
		weights[i] = 2
	}
	addKnapsack(model, weights, weights, 9)

	rule := &limitedRule{model: scip.NewModelRef(model)}
	model.IncludeBranchRule("limited", "", 1000000, -1, 1, rule)

	solved := model.Solve()
	defer solved.Close()

	assert.Equal(t, scip.StatusNodeLimit, solved.Status())
	assert.LessOrEqual(t, solved.NNodes(), int64(2))
	assert.Positive(t, rule.calls)
	assert.LessOrEqual(t, rule.maxCand, rule.maxVars)
}

func TestSolveInfeasible(t *testing.T) {
	model := newModel(t)
	x := model.AddVar(0, 1, 1, "x", scip.Binary)
	model.AddCons([]*scip.Variable{x}, []float64{1}, 2, 2, "impossible")

	solved := model.Solve()
	defer solved.Close()

	assert.Equal(t, scip.StatusInfeasible, solved.Status())
	assert.Nil(t, solved.BestSol())
	assert.Zero(t, solved.NSols())
}

type panickingRule struct{}

func (panickingRule) Execute([]scip.BranchingCandidate) scip.BranchingResult {
	panic("branching rule failed")
}

// A panic inside a callback crosses SCIP as SCIP_ERROR and is raised again
// once SCIPsolve returns.
func TestPanickingBranchRule(t *testing.T) {
	model := bareModel(t, "panicking")
	smallKnapsack(model)
	model.IncludeBranchRule("panicking", "", 1000000, -1, 1, panickingRule{})

	assert.PanicsWithValue(t, "branching rule failed", func() { model.Solve() })
	assert.NotPanics(t, model.Close)
}

type lyingPricer struct {
	calls int
}

func (p *lyingPricer) GenerateColumns(bool) scip.PricerResult {
	p.calls++
	return scip.PricerResult{State: scip.PricerFoundColumns}
}

func TestLyingPricerAbortsSolve(t *testing.T) {
	model := bareModel(t, "lying")
	x1 := model.AddVar(0, scip.Inf(), 1, "x1", scip.Continuous)
	x2 := model.AddVar(0, scip.Inf(), 1, "x2", scip.Continuous)
	model.AddCons([]*scip.Variable{x1, x2}, []float64{1, 1}, scip.NegInf(), 10, "cap")

	pricer := &lyingPricer{}
	model.IncludePricer("lying", "claims columns it never adds", 0, false, pricer)

	assert.PanicsWithValue(t,
		"scip: pricer reported new columns but the number of variables did not increase",
		func() { model.Solve() })
	assert.Equal(t, 1, pricer.calls)
	assert.NotPanics(t, model.Close)
}
