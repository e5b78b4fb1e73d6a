package scip

import (
	"math"

	"go.uber.org/zap"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// BranchRule is a custom branching rule. SCIP calls Execute whenever the
// LP relaxation of the current node has fractional integer variables and
// the rule has the highest priority among the applicable ones.
type BranchRule interface {
	Execute(candidates []BranchingCandidate) BranchingResult
}

// BranchingCandidate is an integer variable with a fractional value in the
// current LP relaxation. Candidates are rebuilt on every call and must not
// be kept after Execute returns.
type BranchingCandidate struct {
	Var      *Variable
	LPSolVal float64
	// Frac is the fractional part of LPSolVal, strictly between 0 and 1.
	Frac float64
}

// BranchingKind is the outcome of a branching call.
type BranchingKind int

const (
	// BranchDidNotRun leaves the decision to the next branching rule.
	BranchDidNotRun BranchingKind = iota
	// BranchOnCandidate branches on the candidate in BranchingResult.
	BranchOnCandidate
	// BranchCutOff declares the current node infeasible.
	BranchCutOff
	// BranchCustom reports that the rule created the child nodes itself.
	BranchCustom
	// BranchSeparated reports that a cutting plane was added.
	BranchSeparated
	// BranchReduceDom reports that a domain was reduced so the current LP
	// solution became infeasible.
	BranchReduceDom
	// BranchConsAdded reports that a constraint was added.
	BranchConsAdded
)

// String returns a human-readable representation of the kind.
func (k BranchingKind) String() string {
	names := []string{
		"DidNotRun", "BranchOn", "CutOff", "CustomBranching",
		"Separated", "ReduceDom", "ConsAdded",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// BranchingResult is returned by BranchRule.Execute. Candidate is only
// read for BranchOnCandidate.
type BranchingResult struct {
	Kind      BranchingKind
	Candidate BranchingCandidate
}

// BranchOn selects c. Returning it makes SCIP split the node on c.Var at
// c.LPSolVal before Execute's caller returns to SCIP.
func BranchOn(c BranchingCandidate) BranchingResult {
	return BranchingResult{Kind: BranchOnCandidate, Candidate: c}
}

func (r BranchingResult) toNative() native.Result {
	switch r.Kind {
	case BranchDidNotRun:
		return native.ResultDidNotRun
	case BranchOnCandidate, BranchCustom:
		return native.ResultBranched
	case BranchCutOff:
		return native.ResultCutoff
	case BranchSeparated:
		return native.ResultSeparated
	case BranchReduceDom:
		return native.ResultReducedDom
	case BranchConsAdded:
		return native.ResultConsAdded
	default:
		panic("scip: unknown branching result " + r.Kind.String())
	}
}

// IncludeBranchRule adds rule to the model. See TryIncludeBranchRule.
func (m *ProblemModel) IncludeBranchRule(name, desc string, priority, maxDepth int, maxBoundDist float64, rule BranchRule) *ProblemModel {
	must(m.TryIncludeBranchRule(name, desc, priority, maxDepth, maxBoundDist, rule))
	return m
}

// TryIncludeBranchRule adds rule to the model.
//
// priority orders the rule among SCIP's own branching rules (higher runs
// first), maxDepth limits the tree depth it is used at (-1 for no limit)
// and maxBoundDist limits it to nodes whose dual bound is close to the best
// one (1.0 for all nodes). An empty name gets a generated unique one.
//
// The model keeps rule reachable until SCIP frees the plugin on Close.
func (m *ProblemModel) TryIncludeBranchRule(name, desc string, priority, maxDepth int, maxBoundDist float64, rule BranchRule) error {
	inst := checkLive(m.inst, "problem")
	if rule == nil {
		return newErrorMsg("IncludeBranchRule", "nil branch rule")
	}

	name = pluginName("branchrule", name)
	data := registerPlugin(newPluginBox(rule, inst))
	rc := inst.eng.IncludeBranchRule(native.BranchRuleDef{
		Name:         name,
		Desc:         desc,
		Priority:     priority,
		MaxDepth:     maxDepth,
		MaxBoundDist: maxBoundDist,
		Data:         data,
		ExecLP:       branchExecLP,
		Free:         freePlugin[BranchRule]("branchrule"),
	})
	if err := newError("IncludeBranchRule", rc); err != nil {
		// SCIP never saw the plugin, so its free callback will not run.
		unregisterPlugin(data)
		return err
	}
	inst.metrics.pluginAdded()
	inst.log.Debug("included branching rule", zap.String("name", name), zap.Int("priority", priority))
	return nil
}

// branchExecLP is the branching trampoline SCIP calls for every node with
// a fractional LP solution.
func branchExecLP(e native.Engine, data native.PluginData, _ bool, result *native.Result) native.Retcode {
	box := recoverPlugin[BranchRule](data)
	inst := box.inst.Value()
	box.metrics.invoked("branchrule", "execlp")

	candidates := lpBranchingCandidates(e, inst)
	res := box.impl.Execute(candidates)

	// SCIP expects the children to exist once the callback reports BRANCHED.
	if res.Kind == BranchOnCandidate {
		cand := res.Candidate
		if cand.Var == nil {
			panic("scip: branching rule selected a candidate without a variable")
		}
		if cand.Var.eng != e {
			panic("scip: branching rule selected a variable of another model")
		}
		must(newError("BranchVarVal", e.BranchVarVal(cand.Var.ptr, cand.LPSolVal)))
	}

	box.log.Debug("branching rule executed",
		zap.Int("candidates", len(candidates)),
		zap.Stringer("result", res.Kind),
	)
	*result = res.toNative()
	return native.RetcodeOkay
}

func lpBranchingCandidates(e native.Engine, inst *instance) []BranchingCandidate {
	vars, vals, rc := e.LPBranchCands()
	must(newError("LPBranchCands", rc))
	cands := make([]BranchingCandidate, len(vars))
	for i, ptr := range vars {
		val := vals[i]
		cands[i] = BranchingCandidate{
			Var:      inst.viewVar(e, ptr),
			LPSolVal: val,
			Frac:     val - math.Floor(val),
		}
	}
	return cands
}
