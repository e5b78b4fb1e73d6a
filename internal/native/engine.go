package native

// Engine is one engine context. The scip package owns exactly one per
// model and calls Free exactly once.
//
// Methods mirror the SCIP C API one to one; preconditions on the stage are
// the engine's and are not rechecked here.
type Engine interface {
	// Free releases the context. Included plugins get their free callback.
	Free()

	Stage() Stage
	Version() string

	SetStringParam(name, value string) Retcode
	SetIntParam(name string, value int) Retcode
	SetLongintParam(name string, value int64) Retcode
	SetRealParam(name string, value float64) Retcode
	SetBoolParam(name string, value bool) Retcode
	SetPresolving(setting ParamSetting) Retcode
	SetSeparating(setting ParamSetting) Retcode
	SetHeuristics(setting ParamSetting) Retcode

	IncludeDefaultPlugins() Retcode
	CreateProbBasic(name string) Retcode
	ReadProb(filename string) Retcode
	WriteOrigProblem(filename, extension string) Retcode
	SetObjSense(sense ObjSense) Retcode

	// Vars and Conss list the active problem; OrigVars and OrigConss the
	// original one. The returned slices are copies.
	Vars() []VarPtr
	Conss() []ConsPtr
	OrigVars() []VarPtr
	OrigConss() []ConsPtr
	NVars() int
	NConss() int

	// CreateVarBasic returns a variable holding one engine reference owned
	// by the caller.
	CreateVarBasic(name string, lb, ub, obj float64, vartype VarType) (VarPtr, Retcode)
	AddVar(v VarPtr) Retcode
	AddPricedVar(v VarPtr, score float64) Retcode
	CaptureVar(v VarPtr) Retcode
	ReleaseVar(v VarPtr) Retcode

	VarName(v VarPtr) string
	VarIndex(v VarPtr) int
	VarObj(v VarPtr) float64
	VarLB(v VarPtr) float64
	VarUB(v VarPtr) float64
	VarType(v VarPtr) VarType

	// CreateConsBasicLinear and CreateConsBasicSetppc return a constraint
	// holding one engine reference owned by the caller.
	CreateConsBasicLinear(name string, vars []VarPtr, coefs []float64, lhs, rhs float64) (ConsPtr, Retcode)
	CreateConsBasicSetppc(kind SetppcType, name string, vars []VarPtr) (ConsPtr, Retcode)
	AddCoefLinear(c ConsPtr, v VarPtr, coef float64) Retcode
	AddCoefSetppc(c ConsPtr, v VarPtr) Retcode
	AddCons(c ConsPtr) Retcode
	CaptureCons(c ConsPtr) Retcode
	ReleaseCons(c ConsPtr) Retcode
	ConsName(c ConsPtr) string

	IncludeBranchRule(def BranchRuleDef) Retcode
	IncludePricer(def PricerDef) Retcode

	// LPBranchCands returns the fractional LP candidates of the current
	// node and their LP solution values. Only valid inside a branching
	// callback.
	LPBranchCands() ([]VarPtr, []float64, Retcode)
	BranchVarVal(v VarPtr, val float64) Retcode

	Solve() Retcode
	Status() Status
	PrimalBound() float64
	NNodes() int64
	NLPIterations() int64
	SolvingTime() float64

	NSols() int
	BestSol() SolPtr
	SolVal(sol SolPtr, v VarPtr) float64
	SolOrigObj(sol SolPtr) float64
}
