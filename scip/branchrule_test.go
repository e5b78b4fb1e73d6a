package scip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/goscip/internal/native"
	"github.com/bartolsthoorn/goscip/internal/native/nativetest"
)

// recordingRule answers every call with result, or with BranchOn of the
// first candidate when branch is set.
type recordingRule struct {
	model  ModelRef[ProblemModel]
	branch bool
	result BranchingResult

	calls      int
	candidates [][]BranchingCandidate
	maxVars    int
}

func (r *recordingRule) Execute(candidates []BranchingCandidate) BranchingResult {
	r.calls++
	r.candidates = append(r.candidates, candidates)
	if r.model.inner != nil {
		r.maxVars = max(r.maxVars, r.model.Get().NVars())
	}
	if r.branch {
		return BranchOn(candidates[0])
	}
	return r.result
}

func fractionalScript(nodes int) nativetest.Script {
	s := nativetest.Script{Solution: map[string]float64{"x1": 40, "x2": 20}}
	for range nodes {
		s.Nodes = append(s.Nodes, nativetest.Node{Candidates: []nativetest.Candidate{
			{Var: "x1", Val: 40.5},
			{Var: "x2", Val: 19.25},
		}})
	}
	return s
}

func integerProgram(t *testing.T, e *nativetest.Engine, opts ...Option) (*ProblemModel, *Variable, *Variable) {
	t.Helper()
	model := newModel(t, e, opts...).SetObjSense(Maximize)
	x1 := model.AddVar(0, Inf(), 3, "x1", Integer)
	x2 := model.AddVar(0, Inf(), 4, "x2", Integer)
	model.AddCons([]*Variable{x1, x2}, []float64{2, 1}, NegInf(), 100, "c1")
	model.AddCons([]*Variable{x1, x2}, []float64{1, 2}, NegInf(), 80, "c2")
	return model, x1, x2
}

func TestBranchRuleCandidates(t *testing.T) {
	e := nativetest.New()
	e.Script = fractionalScript(1)
	model, x1, x2 := integerProgram(t, e)

	rule := &recordingRule{result: BranchingResult{Kind: BranchDidNotRun}}
	model.IncludeBranchRule("", "records candidates", 100000, -1, 1, rule)

	solved := model.Solve()
	defer solved.Close()

	require.Equal(t, 1, rule.calls)
	cands := rule.candidates[0]
	require.Len(t, cands, 2)
	for _, c := range cands {
		assert.Greater(t, c.Frac, 0.0)
		assert.Less(t, c.Frac, 1.0)
		assert.False(t, c.Var.Borrowed(), "model variables are shared, not borrowed")
	}
	assert.Same(t, x1, cands[0].Var)
	assert.Same(t, x2, cands[1].Var)
	assert.InDelta(t, 0.5, cands[0].Frac, 1e-12)
	assert.InDelta(t, 0.25, cands[1].Frac, 1e-12)
	assert.Equal(t, 40.5, cands[0].LPSolVal)

	assert.Equal(t, int64(3), solved.NNodes(), "SCIP branched after DidNotRun")
}

func TestBranchOnCandidate(t *testing.T) {
	e := nativetest.New()
	e.Script = fractionalScript(1)
	model, _, _ := integerProgram(t, e)

	rule := &recordingRule{branch: true}
	model.IncludeBranchRule("first", "branches on the first candidate", 100000, -1, 1, rule)

	solved := model.Solve()
	defer solved.Close()

	assert.Equal(t, []nativetest.Branching{{Var: "x1", Val: 40.5}}, e.Records().Branchings)
	assert.Greater(t, solved.NNodes(), int64(1))
	require.Len(t, e.Records().BranchCalls, 1)
	assert.Equal(t, native.ResultBranched, e.Records().BranchCalls[0].Result)
	assert.Equal(t, StatusOptimal, solved.Status())
}

func TestBranchCutOff(t *testing.T) {
	e := nativetest.New()
	e.Script = fractionalScript(1)
	model, _, _ := integerProgram(t, e)

	rule := &recordingRule{result: BranchingResult{Kind: BranchCutOff}}
	model.IncludeBranchRule("cutoff", "", 100000, -1, 1, rule)

	solved := model.Solve()
	defer solved.Close()

	assert.Equal(t, 1, rule.calls)
	assert.Equal(t, int64(1), solved.NNodes())
	assert.Empty(t, e.Records().Branchings)
}

func TestBranchRuleUnderNodeLimit(t *testing.T) {
	e := nativetest.New()
	e.Script = fractionalScript(3)

	model := New(WithEngine(e)).
		SetLongintParam("limits/nodes", 2).
		IncludeDefaultPlugins().CreateProb("limited").SetObjSense(Maximize)
	x1 := model.AddVar(0, Inf(), 3, "x1", Integer)
	x2 := model.AddVar(0, Inf(), 4, "x2", Integer)
	model.AddCons([]*Variable{x1, x2}, []float64{2, 1}, NegInf(), 100, "c1")

	rule := &recordingRule{model: NewModelRef(model), branch: true}
	model.IncludeBranchRule("", "", 100000, -1, 1, rule)

	solved := model.Solve()
	defer solved.Close()

	assert.Equal(t, StatusNodeLimit, solved.Status())
	assert.Equal(t, 2, rule.calls)
	for _, cands := range rule.candidates {
		assert.LessOrEqual(t, len(cands), rule.maxVars)
	}
	assert.Equal(t, 2, rule.maxVars)
}

func TestBranchRulePriority(t *testing.T) {
	e := nativetest.New()
	e.Script = fractionalScript(1)
	model, _, _ := integerProgram(t, e)

	low := &recordingRule{branch: true}
	high := &recordingRule{result: BranchingResult{Kind: BranchDidNotRun}}
	model.IncludeBranchRule("low", "", 10, -1, 1, low).
		IncludeBranchRule("high", "", 20, -1, 1, high)

	solved := model.Solve()
	defer solved.Close()

	assert.Equal(t, []string{"high", "low"}, e.BranchRules())
	assert.Equal(t, 1, high.calls)
	assert.Equal(t, 1, low.calls)
}

func TestBranchRuleBorrowedCandidate(t *testing.T) {
	e := nativetest.New()
	e.Script = nativetest.Script{Nodes: []nativetest.Node{
		{Candidates: []nativetest.Candidate{{Var: "hidden", Val: 0.5}}},
	}}
	model := newModel(t, e)
	model.AddVar(0, 1, 1, "x", Binary)

	// A variable SCIP holds that the model never captured.
	ptr, rc := e.CreateVarBasic("hidden", 0, 1, 0, native.VarTypeBinary)
	require.Equal(t, native.RetcodeOkay, rc)
	require.Equal(t, native.RetcodeOkay, e.AddVar(ptr))
	require.Equal(t, native.RetcodeOkay, e.ReleaseVar(ptr))

	var seen *Variable
	model.IncludeBranchRule("", "", 0, -1, 1, ruleFunc(func(c []BranchingCandidate) BranchingResult {
		seen = c[0].Var
		return BranchingResult{Kind: BranchCutOff}
	}))

	solved := model.Solve()
	require.NotNil(t, seen)
	assert.True(t, seen.Borrowed())
	assert.Equal(t, "hidden", seen.Name())
	assert.Len(t, solved.Vars(), 1, "borrowed views are not added to the model")

	solved.Close()
	assert.Equal(t, 1, e.VarReleases("hidden"), "the model must not release what it never captured")
	requireClean(t, e)
}

type ruleFunc func([]BranchingCandidate) BranchingResult

func (f ruleFunc) Execute(c []BranchingCandidate) BranchingResult { return f(c) }

func TestBranchOnWithoutVariablePanics(t *testing.T) {
	e := nativetest.New()
	e.Script = fractionalScript(1)
	model, _, _ := integerProgram(t, e)
	model.IncludeBranchRule("", "", 0, -1, 1, ruleFunc(func([]BranchingCandidate) BranchingResult {
		return BranchOn(BranchingCandidate{LPSolVal: 1.5})
	}))

	assert.PanicsWithValue(t, "scip: branching rule selected a candidate without a variable", func() {
		model.Solve()
	})
	model.Close()
	requireClean(t, e)
}

func TestBranchOnForeignVariablePanics(t *testing.T) {
	other := nativetest.New()
	otherModel, foreign, _ := integerProgram(t, other)

	e := nativetest.New()
	e.Script = fractionalScript(1)
	model, _, _ := integerProgram(t, e)
	model.IncludeBranchRule("", "", 0, -1, 1, ruleFunc(func([]BranchingCandidate) BranchingResult {
		return BranchOn(BranchingCandidate{Var: foreign, LPSolVal: 40.5, Frac: 0.5})
	}))

	assert.PanicsWithValue(t, "scip: branching rule selected a variable of another model", func() {
		model.Solve()
	})
	assert.Empty(t, e.Records().Branchings)
	model.Close()
	requireClean(t, e)

	otherModel.Close()
	requireClean(t, other)
}

func TestIncludeBranchRuleFailure(t *testing.T) {
	e := nativetest.New()
	model := newModel(t, e)
	defer model.Close()
	before := registeredPlugins()

	assert.Error(t, model.TryIncludeBranchRule("r", "", 0, -1, 1, nil))

	require.NoError(t, model.TryIncludeBranchRule("r", "", 0, -1, 1, &recordingRule{}))
	err := model.TryIncludeBranchRule("r", "", 0, -1, 1, &recordingRule{})
	assert.ErrorIs(t, err, &Error{Op: "IncludeBranchRule", Retcode: RetcodeKeyAlreadyExisting})
	assert.Equal(t, before+1, registeredPlugins(), "rejected rule must not stay registered")

	e.FailOn = map[string]native.Retcode{"IncludeBranchRule": native.RetcodeNoMemory}
	assert.Panics(t, func() { model.IncludeBranchRule("s", "", 0, -1, 1, &recordingRule{}) })
	assert.Equal(t, before+1, registeredPlugins())
}

func TestBranchRuleGeneratedName(t *testing.T) {
	e := nativetest.New()
	model := newModel(t, e)
	defer model.Close()

	model.IncludeBranchRule("", "", 0, -1, 1, &recordingRule{}).
		IncludeBranchRule("", "", 0, -1, 1, &recordingRule{})

	names := e.BranchRules()
	require.Len(t, names, 2)
	assert.NotEqual(t, names[0], names[1])
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "branchrule-"), name)
	}
}

func TestBranchRuleFreedOnClose(t *testing.T) {
	e := nativetest.New()
	before := registeredPlugins()
	model := newModel(t, e)
	model.IncludeBranchRule("r", "", 0, -1, 1, &recordingRule{})
	assert.Equal(t, before+1, registeredPlugins())

	model.Close()
	assert.Equal(t, before, registeredPlugins())
	assert.Equal(t, []string{"r"}, e.Records().FreedPlugins)
	assert.Zero(t, e.FreeErrors())
}

func TestBranchingResultToNative(t *testing.T) {
	tests := []struct {
		kind BranchingKind
		want native.Result
	}{
		{BranchDidNotRun, native.ResultDidNotRun},
		{BranchOnCandidate, native.ResultBranched},
		{BranchCutOff, native.ResultCutoff},
		{BranchCustom, native.ResultBranched},
		{BranchSeparated, native.ResultSeparated},
		{BranchReduceDom, native.ResultReducedDom},
		{BranchConsAdded, native.ResultConsAdded},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, BranchingResult{Kind: tt.kind}.toNative())
		})
	}
	assert.Panics(t, func() { BranchingResult{Kind: BranchingKind(99)}.toNative() })
}
