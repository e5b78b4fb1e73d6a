package native

// PluginFreeFunc is called once when the engine discards a plugin.
type PluginFreeFunc func(e Engine, data PluginData) Retcode

// BranchExecLPFunc is the branching callback for fractional LP solutions.
// The callee writes its outcome to result.
type BranchExecLPFunc func(e Engine, data PluginData, allowAddCons bool, result *Result) Retcode

// PricerRedCostFunc is the reduced cost pricing callback. lowerBound and
// stopEarly are output locations owned by the engine.
type PricerRedCostFunc func(e Engine, data PluginData, lowerBound *float64, stopEarly *bool, result *Result) Retcode

// PricerFarkasFunc is the Farkas pricing callback, called when the LP
// relaxation is infeasible.
type PricerFarkasFunc func(e Engine, data PluginData, result *Result) Retcode

// BranchRuleDef is everything SCIPincludeBranchrule needs for a branching
// rule that only implements the LP execution callback.
type BranchRuleDef struct {
	Name         string
	Desc         string
	Priority     int
	MaxDepth     int
	MaxBoundDist float64
	Data         PluginData
	ExecLP       BranchExecLPFunc
	Free         PluginFreeFunc
}

// PricerDef is everything SCIPincludePricer needs. Backends activate the
// pricer right after including it.
type PricerDef struct {
	Name     string
	Desc     string
	Priority int
	Delay    bool
	Data     PluginData
	RedCost  PricerRedCostFunc
	Farkas   PricerFarkasFunc
	Free     PluginFreeFunc
}
