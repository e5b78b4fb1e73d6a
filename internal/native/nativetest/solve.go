package nativetest

import (
	"fmt"
	"math"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// Script replaces SCIP's search. Solve processes nodes depth-first from a
// counter; node i sees the candidates of Nodes[i], and nodes past the end
// of Nodes have an integral LP solution.
type Script struct {
	Nodes []Node `yaml:"nodes,omitempty"`
	// Status is reported once the tree is exhausted. Empty means optimal,
	// or infeasible when Solution is nil and the status is not a limit.
	Status string `yaml:"status,omitempty"`
	// Solution is the best solution by variable name. Variables not listed
	// are zero.
	Solution map[string]float64 `yaml:"solution,omitempty"`
	// PricingRounds bounds the reduced cost pricing rounds at the root.
	// Zero means one round.
	PricingRounds int `yaml:"pricing_rounds,omitempty"`
	// Farkas calls the Farkas pricing callback once before reduced cost
	// pricing, as if the initial LP were infeasible.
	Farkas bool `yaml:"farkas,omitempty"`
	// SolvingTime is reported in seconds.
	SolvingTime float64 `yaml:"solving_time,omitempty"`
}

// Node is the LP state of one scripted node.
type Node struct {
	Candidates []Candidate `yaml:"candidates,omitempty"`
}

// Candidate is a fractional variable at a node.
type Candidate struct {
	Var string  `yaml:"var"`
	Val float64 `yaml:"val"`
}

var statusNames = map[string]native.Status{
	"unknown":        native.StatusUnknown,
	"userinterrupt":  native.StatusUserInterrupt,
	"nodelimit":      native.StatusNodeLimit,
	"totalnodelimit": native.StatusTotalNodeLimit,
	"stallnodelimit": native.StatusStallNodeLimit,
	"timelimit":      native.StatusTimeLimit,
	"memlimit":       native.StatusMemLimit,
	"gaplimit":       native.StatusGapLimit,
	"sollimit":       native.StatusSolLimit,
	"bestsollimit":   native.StatusBestSolLimit,
	"restartlimit":   native.StatusRestartLimit,
	"optimal":        native.StatusOptimal,
	"infeasible":     native.StatusInfeasible,
	"unbounded":      native.StatusUnbounded,
	"inforunbd":      native.StatusInfOrUnbd,
	"terminate":      native.StatusTerminate,
}

// Solve plays back the script. Plugins run in SCIP's order: pricers at
// the root, then branching rules by priority at every node with
// candidates.
func (e *Engine) Solve() native.Retcode {
	if rc, ok := e.fail("Solve"); ok {
		return rc
	}
	if e.stage != native.StageProblem {
		return native.RetcodeInvalidCall
	}
	e.stage = native.StageSolving

	if e.params["limits/time"].(float64) == 0 {
		e.status = native.StatusTimeLimit
		e.stage = native.StageSolved
		return native.RetcodeOkay
	}

	if rc := e.price(); rc != native.RetcodeOkay {
		return rc
	}

	status, rc := e.search()
	if rc != native.RetcodeOkay {
		return rc
	}
	if status == native.StatusUnknown {
		status = e.finalStatus()
	}
	e.status = status
	if e.Script.Solution != nil && status != native.StatusInfeasible {
		e.storeSolution()
	}
	e.stage = native.StageSolved
	return native.RetcodeOkay
}

func (e *Engine) finalStatus() native.Status {
	if e.Script.Status != "" {
		s, ok := statusNames[e.Script.Status]
		if !ok {
			panic("nativetest: unknown scripted status " + e.Script.Status)
		}
		return s
	}
	if e.Script.Solution == nil {
		return native.StatusInfeasible
	}
	return native.StatusOptimal
}

func (e *Engine) storeSolution() {
	sol := make(map[native.VarPtr]float64, len(e.Script.Solution))
	for name, val := range e.Script.Solution {
		ptr, ok := e.VarByName(name)
		if !ok {
			panic("nativetest: script solution names unknown variable " + name)
		}
		sol[ptr] = val
	}
	e.sols = append(e.sols, sol)
}

func (e *Engine) price() native.Retcode {
	if len(e.pricers) == 0 {
		return native.RetcodeOkay
	}
	e.inPricing = true
	defer func() { e.inPricing = false }()

	for _, p := range e.pricers {
		if e.Script.Farkas && p.Farkas != nil {
			var result native.Result
			before := e.NVars()
			if rc := p.Farkas(e, p.Data, &result); rc != native.RetcodeOkay {
				return rc
			}
			e.records.PricerCalls = append(e.records.PricerCalls, PricerCall{
				Pricer: p.Name, Farkas: true, Result: result,
				VarsBefore: before, VarsAfter: e.NVars(),
			})
		}

		rounds := max(e.Script.PricingRounds, 1)
		for range rounds {
			var (
				result    native.Result
				stopEarly bool
			)
			lowerBound := math.Inf(-1)
			before := e.NVars()
			if rc := p.RedCost(e, p.Data, &lowerBound, &stopEarly, &result); rc != native.RetcodeOkay {
				return rc
			}
			e.records.PricerCalls = append(e.records.PricerCalls, PricerCall{
				Pricer: p.Name, Result: result, LowerBound: lowerBound, StopEarly: stopEarly,
				VarsBefore: before, VarsAfter: e.NVars(),
			})
			if result != native.ResultSuccess || stopEarly || e.NVars() == before {
				break
			}
		}
	}
	return native.RetcodeOkay
}

// search runs the node loop. It returns StatusUnknown when the tree was
// exhausted.
func (e *Engine) search() (native.Status, native.Retcode) {
	limit := e.params["limits/nodes"].(int64)
	open := 1
	for open > 0 {
		if limit >= 0 && e.nnodes >= limit {
			return native.StatusNodeLimit, native.RetcodeOkay
		}
		open--
		node := e.nnodes
		e.nnodes++

		var cands []Candidate
		if int(node) < len(e.Script.Nodes) {
			cands = e.Script.Nodes[node].Candidates
		}
		e.lpIters += int64(len(cands) + 1)
		if len(cands) == 0 {
			continue
		}

		children, rc := e.branch(node, cands)
		if rc != native.RetcodeOkay {
			return native.StatusUnknown, rc
		}
		open += children
	}
	return native.StatusUnknown, native.RetcodeOkay
}

// branch calls the branching rules for one node and returns the number of
// children created.
func (e *Engine) branch(node int64, cands []Candidate) (int, native.Retcode) {
	for _, c := range cands {
		if c.Val == math.Floor(c.Val) {
			panic(fmt.Sprintf("nativetest: scripted candidate %s has integral value %g", c.Var, c.Val))
		}
	}

	e.inBranch = true
	e.candidates = cands
	defer func() {
		e.inBranch = false
		e.candidates = nil
	}()

	for _, r := range e.rules {
		var result native.Result
		e.branched = 0
		rc := r.ExecLP(e, r.Data, true, &result)
		e.records.BranchCalls = append(e.records.BranchCalls, BranchCall{
			Rule: r.Name, Node: node, Candidates: len(cands), Result: result,
		})
		if rc != native.RetcodeOkay {
			return 0, rc
		}

		switch result {
		case native.ResultDidNotRun:
			continue
		case native.ResultBranched:
			if e.branched == 0 {
				return 0, native.RetcodeInvalidResult
			}
			return 2 * e.branched, native.RetcodeOkay
		case native.ResultCutoff, native.ResultSeparated, native.ResultReducedDom, native.ResultConsAdded:
			return 0, native.RetcodeOkay
		default:
			return 0, native.RetcodeInvalidResult
		}
	}

	// SCIP's own branching takes over.
	return 2, native.RetcodeOkay
}
