// Package nativetest provides an in-memory native.Engine for tests.
//
// The engine does not optimize anything. It keeps SCIP's object and
// reference bookkeeping, its stage machine and its plugin calling
// conventions, and plays back a Script in place of the branch-and-bound
// search. Every capture and release is recorded so tests can check the
// binding's ownership discipline.
package nativetest

import (
	"fmt"
	"math"
	"sort"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// Version is reported by Engine.Version.
const Version = "8.0.3 (nativetest)"

const (
	varBase  = 0x1000
	consBase = 0x100000
	solBase  = 0x10000000
)

type variable struct {
	ptr     native.VarPtr
	name    string
	index   int
	lb, ub  float64
	obj     float64
	vartype native.VarType

	captured  int
	releases  int
	inProblem bool
	priced    bool
}

type constraint struct {
	ptr    native.ConsPtr
	name   string
	linear bool
	setppc native.SetppcType
	vars   []native.VarPtr
	coefs  []float64
	lhs    float64
	rhs    float64

	captured  int
	releases  int
	inProblem bool
}

type branchRule struct {
	native.BranchRuleDef
	freed bool
}

type pricer struct {
	native.PricerDef
	freed bool
}

// Engine is a scripted stand-in for one SCIP context.
type Engine struct {
	// Script drives Solve. The zero value solves to optimality at the root
	// without a solution.
	Script Script
	// FailOn makes the named Engine method return the given retcode
	// instead of doing its work.
	FailOn map[string]native.Retcode
	// OnFree runs at the end of Free, possibly on a finalizer goroutine.
	OnFree func()

	stage    native.Stage
	plugins  bool
	freed    bool
	probName string
	sense    native.ObjSense

	params   map[string]any
	emphasis map[string]native.ParamSetting

	vars      []*variable
	varByPtr  map[native.VarPtr]*variable
	conss     []*constraint
	consByPtr map[native.ConsPtr]*constraint

	rules   []*branchRule
	pricers []*pricer

	// Valid while a branching callback runs.
	inBranch   bool
	candidates []Candidate
	branched   int

	inPricing bool

	status   native.Status
	nnodes   int64
	lpIters  int64
	sols     []map[native.VarPtr]float64
	records  Records
	badFrees int
}

// Records is what the engine observed during solving.
type Records struct {
	BranchCalls []BranchCall
	Branchings  []Branching
	PricerCalls []PricerCall
	// FreedPlugins lists plugin names in the order their free callback ran.
	FreedPlugins []string
}

// BranchCall is one invocation of a branching rule.
type BranchCall struct {
	Rule       string
	Node       int64
	Candidates int
	Result     native.Result
}

// Branching is one BranchVarVal call.
type Branching struct {
	Var string
	Val float64
}

// PricerCall is one invocation of a pricer.
type PricerCall struct {
	Pricer     string
	Farkas     bool
	Result     native.Result
	LowerBound float64
	StopEarly  bool
	VarsBefore int
	VarsAfter  int
}

// New returns an engine in the INIT stage with SCIP's default limits.
func New() *Engine {
	return &Engine{
		stage: native.StageInit,
		sense: native.ObjSenseMinimize,
		params: map[string]any{
			"display/verblevel":             4,
			"display/freq":                  100,
			"randomization/randomseedshift": 0,
			"limits/time":                   1e20,
			"limits/gap":                    0.0,
			"limits/nodes":                  int64(-1),
			"limits/solutions":              int64(-1),
			"misc/catchctrlc":               true,
			"lp/initalgorithm":              "s",
			"visual/vbcfilename":            "-",
		},
		emphasis:  make(map[string]native.ParamSetting),
		varByPtr:  make(map[native.VarPtr]*variable),
		consByPtr: make(map[native.ConsPtr]*constraint),
	}
}

var _ native.Engine = (*Engine)(nil)

func (e *Engine) fail(method string) (native.Retcode, bool) {
	rc, ok := e.FailOn[method]
	return rc, ok
}

// ----------------------------------------------------------------------------
// Lifecycle
// ----------------------------------------------------------------------------

// Free frees the problem and calls the free callback of every plugin. It
// panics when called twice.
func (e *Engine) Free() {
	if e.freed {
		panic("nativetest: engine freed twice")
	}
	for _, r := range e.rules {
		if !r.freed && r.Free != nil {
			r.freed = true
			if rc := r.Free(e, r.Data); rc != native.RetcodeOkay {
				e.badFrees++
			}
			e.records.FreedPlugins = append(e.records.FreedPlugins, r.Name)
		}
	}
	for _, p := range e.pricers {
		if !p.freed && p.Free != nil {
			p.freed = true
			if rc := p.Free(e, p.Data); rc != native.RetcodeOkay {
				e.badFrees++
			}
			e.records.FreedPlugins = append(e.records.FreedPlugins, p.Name)
		}
	}
	e.freed = true
	e.stage = native.StageFree
	if e.OnFree != nil {
		e.OnFree()
	}
}

// Stage returns the current stage.
func (e *Engine) Stage() native.Stage {
	return e.stage
}

// Version returns Version.
func (e *Engine) Version() string {
	return Version
}

// ----------------------------------------------------------------------------
// Parameters
// ----------------------------------------------------------------------------

func setParam[T any](e *Engine, method, name string, value T) native.Retcode {
	if rc, ok := e.fail(method); ok {
		return rc
	}
	cur, ok := e.params[name]
	if !ok {
		return native.RetcodeParameterUnknown
	}
	if _, ok := cur.(T); !ok {
		return native.RetcodeParameterWrongType
	}
	e.params[name] = value
	return native.RetcodeOkay
}

func (e *Engine) SetStringParam(name, value string) native.Retcode {
	return setParam(e, "SetStringParam", name, value)
}

func (e *Engine) SetIntParam(name string, value int) native.Retcode {
	if name == "display/verblevel" && (value < 0 || value > 5) {
		return native.RetcodeParameterWrongVal
	}
	return setParam(e, "SetIntParam", name, value)
}

func (e *Engine) SetLongintParam(name string, value int64) native.Retcode {
	return setParam(e, "SetLongintParam", name, value)
}

func (e *Engine) SetRealParam(name string, value float64) native.Retcode {
	if name == "limits/time" && value < 0 {
		return native.RetcodeParameterWrongVal
	}
	return setParam(e, "SetRealParam", name, value)
}

func (e *Engine) SetBoolParam(name string, value bool) native.Retcode {
	return setParam(e, "SetBoolParam", name, value)
}

func (e *Engine) setEmphasis(method, group string, s native.ParamSetting) native.Retcode {
	if rc, ok := e.fail(method); ok {
		return rc
	}
	if s < native.ParamSettingDefault || s > native.ParamSettingOff {
		return native.RetcodeParameterWrongVal
	}
	e.emphasis[group] = s
	return native.RetcodeOkay
}

func (e *Engine) SetPresolving(s native.ParamSetting) native.Retcode {
	return e.setEmphasis("SetPresolving", "presolving", s)
}

func (e *Engine) SetSeparating(s native.ParamSetting) native.Retcode {
	return e.setEmphasis("SetSeparating", "separating", s)
}

func (e *Engine) SetHeuristics(s native.ParamSetting) native.Retcode {
	return e.setEmphasis("SetHeuristics", "heuristics", s)
}

// Param returns the current value of a parameter, or nil if unknown.
func (e *Engine) Param(name string) any {
	return e.params[name]
}

// Emphasis returns the setting applied to group ("presolving",
// "separating" or "heuristics").
func (e *Engine) Emphasis(group string) (native.ParamSetting, bool) {
	s, ok := e.emphasis[group]
	return s, ok
}

// ----------------------------------------------------------------------------
// Problem
// ----------------------------------------------------------------------------

func (e *Engine) IncludeDefaultPlugins() native.Retcode {
	if rc, ok := e.fail("IncludeDefaultPlugins"); ok {
		return rc
	}
	if e.stage != native.StageInit {
		return native.RetcodeInvalidCall
	}
	e.plugins = true
	return native.RetcodeOkay
}

// PluginsIncluded reports whether IncludeDefaultPlugins ran.
func (e *Engine) PluginsIncluded() bool {
	return e.plugins
}

func (e *Engine) CreateProbBasic(name string) native.Retcode {
	if rc, ok := e.fail("CreateProbBasic"); ok {
		return rc
	}
	if e.stage != native.StageInit {
		return native.RetcodeInvalidCall
	}
	e.probName = name
	e.stage = native.StageProblem
	return native.RetcodeOkay
}

// ProbName returns the name given to CreateProbBasic or read from a file.
func (e *Engine) ProbName() string {
	return e.probName
}

func (e *Engine) SetObjSense(sense native.ObjSense) native.Retcode {
	if rc, ok := e.fail("SetObjSense"); ok {
		return rc
	}
	if e.stage != native.StageProblem {
		return native.RetcodeInvalidCall
	}
	if sense != native.ObjSenseMaximize && sense != native.ObjSenseMinimize {
		return native.RetcodeInvalidData
	}
	e.sense = sense
	return native.RetcodeOkay
}

// ObjSense returns the objective sense.
func (e *Engine) ObjSense() native.ObjSense {
	return e.sense
}

func (e *Engine) Vars() []native.VarPtr {
	var out []native.VarPtr
	for _, v := range e.vars {
		if v.inProblem {
			out = append(out, v.ptr)
		}
	}
	return out
}

func (e *Engine) OrigVars() []native.VarPtr {
	var out []native.VarPtr
	for _, v := range e.vars {
		if v.inProblem && !v.priced {
			out = append(out, v.ptr)
		}
	}
	return out
}

func (e *Engine) Conss() []native.ConsPtr {
	var out []native.ConsPtr
	for _, c := range e.conss {
		if c.inProblem {
			out = append(out, c.ptr)
		}
	}
	return out
}

func (e *Engine) OrigConss() []native.ConsPtr {
	return e.Conss()
}

func (e *Engine) NVars() int {
	return len(e.Vars())
}

func (e *Engine) NConss() int {
	return len(e.Conss())
}

// ----------------------------------------------------------------------------
// Variables
// ----------------------------------------------------------------------------

func (e *Engine) newVar(name string, lb, ub, obj float64, vartype native.VarType) *variable {
	v := &variable{
		ptr:     native.VarPtr(varBase + len(e.vars)),
		name:    name,
		index:   len(e.vars),
		lb:      lb,
		ub:      ub,
		obj:     obj,
		vartype: vartype,
	}
	if vartype == native.VarTypeBinary {
		v.lb = math.Max(lb, 0)
		v.ub = math.Min(ub, 1)
	}
	e.vars = append(e.vars, v)
	e.varByPtr[v.ptr] = v
	return v
}

func (e *Engine) CreateVarBasic(name string, lb, ub, obj float64, vartype native.VarType) (native.VarPtr, native.Retcode) {
	if rc, ok := e.fail("CreateVarBasic"); ok {
		return 0, rc
	}
	if e.stage != native.StageProblem && e.stage != native.StageSolving {
		return 0, native.RetcodeInvalidCall
	}
	if lb > ub {
		return 0, native.RetcodeInvalidData
	}
	v := e.newVar(name, lb, ub, obj, vartype)
	v.captured = 1
	return v.ptr, native.RetcodeOkay
}

func (e *Engine) AddVar(ptr native.VarPtr) native.Retcode {
	if rc, ok := e.fail("AddVar"); ok {
		return rc
	}
	if e.stage != native.StageProblem {
		return native.RetcodeInvalidCall
	}
	v, ok := e.varByPtr[ptr]
	if !ok || v.inProblem {
		return native.RetcodeInvalidData
	}
	v.inProblem = true
	return native.RetcodeOkay
}

func (e *Engine) AddPricedVar(ptr native.VarPtr, score float64) native.Retcode {
	if rc, ok := e.fail("AddPricedVar"); ok {
		return rc
	}
	if !e.inPricing {
		return native.RetcodeInvalidCall
	}
	v, ok := e.varByPtr[ptr]
	if !ok || v.inProblem {
		return native.RetcodeInvalidData
	}
	v.inProblem = true
	v.priced = true
	return native.RetcodeOkay
}

func (e *Engine) CaptureVar(ptr native.VarPtr) native.Retcode {
	if rc, ok := e.fail("CaptureVar"); ok {
		return rc
	}
	v, ok := e.varByPtr[ptr]
	if !ok {
		return native.RetcodeInvalidData
	}
	v.captured++
	return native.RetcodeOkay
}

func (e *Engine) ReleaseVar(ptr native.VarPtr) native.Retcode {
	if rc, ok := e.fail("ReleaseVar"); ok {
		return rc
	}
	v, ok := e.varByPtr[ptr]
	if !ok {
		return native.RetcodeInvalidData
	}
	v.releases++
	if v.releases > v.captured {
		return native.RetcodeInvalidData
	}
	return native.RetcodeOkay
}

func (e *Engine) mustVar(ptr native.VarPtr) *variable {
	v, ok := e.varByPtr[ptr]
	if !ok {
		panic(fmt.Sprintf("nativetest: unknown variable pointer %#x", uintptr(ptr)))
	}
	return v
}

func (e *Engine) VarName(ptr native.VarPtr) string { return e.mustVar(ptr).name }
func (e *Engine) VarIndex(ptr native.VarPtr) int { return e.mustVar(ptr).index }
func (e *Engine) VarObj(ptr native.VarPtr) float64 { return e.mustVar(ptr).obj }
func (e *Engine) VarLB(ptr native.VarPtr) float64 { return e.mustVar(ptr).lb }
func (e *Engine) VarUB(ptr native.VarPtr) float64 { return e.mustVar(ptr).ub }
func (e *Engine) VarType(ptr native.VarPtr) native.VarType { return e.mustVar(ptr).vartype }

// VarByName returns the first variable called name.
func (e *Engine) VarByName(name string) (native.VarPtr, bool) {
	for _, v := range e.vars {
		if v.name == name {
			return v.ptr, true
		}
	}
	return 0, false
}

// ----------------------------------------------------------------------------
// Constraints
// ----------------------------------------------------------------------------

func (e *Engine) newCons(name string) *constraint {
	c := &constraint{
		ptr:  native.ConsPtr(consBase + len(e.conss)),
		name: name,
	}
	e.conss = append(e.conss, c)
	e.consByPtr[c.ptr] = c
	return c
}

func (e *Engine) checkVars(vars []native.VarPtr) bool {
	for _, ptr := range vars {
		if _, ok := e.varByPtr[ptr]; !ok {
			return false
		}
	}
	return true
}

func (e *Engine) CreateConsBasicLinear(name string, vars []native.VarPtr, coefs []float64, lhs, rhs float64) (native.ConsPtr, native.Retcode) {
	if rc, ok := e.fail("CreateConsBasicLinear"); ok {
		return 0, rc
	}
	if e.stage != native.StageProblem {
		return 0, native.RetcodeInvalidCall
	}
	if len(vars) != len(coefs) || lhs > rhs || !e.checkVars(vars) {
		return 0, native.RetcodeInvalidData
	}
	c := e.newCons(name)
	c.linear = true
	c.vars = append([]native.VarPtr(nil), vars...)
	c.coefs = append([]float64(nil), coefs...)
	c.lhs, c.rhs = lhs, rhs
	c.captured = 1
	return c.ptr, native.RetcodeOkay
}

func (e *Engine) CreateConsBasicSetppc(kind native.SetppcType, name string, vars []native.VarPtr) (native.ConsPtr, native.Retcode) {
	if rc, ok := e.fail("CreateConsBasicSetppc"); ok {
		return 0, rc
	}
	if e.stage != native.StageProblem {
		return 0, native.RetcodeInvalidCall
	}
	if !e.checkVars(vars) {
		return 0, native.RetcodeInvalidData
	}
	for _, ptr := range vars {
		if e.varByPtr[ptr].vartype != native.VarTypeBinary {
			return 0, native.RetcodeInvalidData
		}
	}
	c := e.newCons(name)
	c.setppc = kind
	c.vars = append([]native.VarPtr(nil), vars...)
	c.captured = 1
	return c.ptr, native.RetcodeOkay
}

func (e *Engine) AddCoefLinear(ptr native.ConsPtr, v native.VarPtr, coef float64) native.Retcode {
	if rc, ok := e.fail("AddCoefLinear"); ok {
		return rc
	}
	c, ok := e.consByPtr[ptr]
	if !ok || !c.linear || !e.checkVars([]native.VarPtr{v}) {
		return native.RetcodeInvalidData
	}
	c.vars = append(c.vars, v)
	c.coefs = append(c.coefs, coef)
	return native.RetcodeOkay
}

func (e *Engine) AddCoefSetppc(ptr native.ConsPtr, v native.VarPtr) native.Retcode {
	if rc, ok := e.fail("AddCoefSetppc"); ok {
		return rc
	}
	c, ok := e.consByPtr[ptr]
	if !ok || c.linear || !e.checkVars([]native.VarPtr{v}) {
		return native.RetcodeInvalidData
	}
	c.vars = append(c.vars, v)
	return native.RetcodeOkay
}

func (e *Engine) AddCons(ptr native.ConsPtr) native.Retcode {
	if rc, ok := e.fail("AddCons"); ok {
		return rc
	}
	if e.stage != native.StageProblem {
		return native.RetcodeInvalidCall
	}
	c, ok := e.consByPtr[ptr]
	if !ok || c.inProblem {
		return native.RetcodeInvalidData
	}
	c.inProblem = true
	return native.RetcodeOkay
}

func (e *Engine) CaptureCons(ptr native.ConsPtr) native.Retcode {
	if rc, ok := e.fail("CaptureCons"); ok {
		return rc
	}
	c, ok := e.consByPtr[ptr]
	if !ok {
		return native.RetcodeInvalidData
	}
	c.captured++
	return native.RetcodeOkay
}

func (e *Engine) ReleaseCons(ptr native.ConsPtr) native.Retcode {
	if rc, ok := e.fail("ReleaseCons"); ok {
		return rc
	}
	c, ok := e.consByPtr[ptr]
	if !ok {
		return native.RetcodeInvalidData
	}
	c.releases++
	if c.releases > c.captured {
		return native.RetcodeInvalidData
	}
	return native.RetcodeOkay
}

func (e *Engine) ConsName(ptr native.ConsPtr) string {
	c, ok := e.consByPtr[ptr]
	if !ok {
		panic(fmt.Sprintf("nativetest: unknown constraint pointer %#x", uintptr(ptr)))
	}
	return c.name
}

// ConsVars returns the names of the variables in the constraint called
// name, in insertion order.
func (e *Engine) ConsVars(name string) []string {
	for _, c := range e.conss {
		if c.name == name {
			names := make([]string, len(c.vars))
			for i, ptr := range c.vars {
				names[i] = e.varByPtr[ptr].name
			}
			return names
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Plugins
// ----------------------------------------------------------------------------

func (e *Engine) IncludeBranchRule(def native.BranchRuleDef) native.Retcode {
	if rc, ok := e.fail("IncludeBranchRule"); ok {
		return rc
	}
	if e.stage != native.StageInit && e.stage != native.StageProblem {
		return native.RetcodeInvalidCall
	}
	for _, r := range e.rules {
		if r.Name == def.Name {
			return native.RetcodeKeyAlreadyExisting
		}
	}
	e.rules = append(e.rules, &branchRule{BranchRuleDef: def})
	sort.SliceStable(e.rules, func(i, j int) bool {
		return e.rules[i].Priority > e.rules[j].Priority
	})
	return native.RetcodeOkay
}

func (e *Engine) IncludePricer(def native.PricerDef) native.Retcode {
	if rc, ok := e.fail("IncludePricer"); ok {
		return rc
	}
	if e.stage != native.StageInit && e.stage != native.StageProblem {
		return native.RetcodeInvalidCall
	}
	for _, p := range e.pricers {
		if p.Name == def.Name {
			return native.RetcodeKeyAlreadyExisting
		}
	}
	e.pricers = append(e.pricers, &pricer{PricerDef: def})
	sort.SliceStable(e.pricers, func(i, j int) bool {
		return e.pricers[i].Priority > e.pricers[j].Priority
	})
	return native.RetcodeOkay
}

// BranchRules returns the names of the included branching rules by
// descending priority.
func (e *Engine) BranchRules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// Pricers returns the names of the included pricers by descending
// priority.
func (e *Engine) Pricers() []string {
	names := make([]string, len(e.pricers))
	for i, p := range e.pricers {
		names[i] = p.Name
	}
	return names
}

func (e *Engine) LPBranchCands() ([]native.VarPtr, []float64, native.Retcode) {
	if rc, ok := e.fail("LPBranchCands"); ok {
		return nil, nil, rc
	}
	if !e.inBranch {
		return nil, nil, native.RetcodeInvalidCall
	}
	vars := make([]native.VarPtr, len(e.candidates))
	vals := make([]float64, len(e.candidates))
	for i, c := range e.candidates {
		ptr, ok := e.VarByName(c.Var)
		if !ok {
			panic("nativetest: script names unknown candidate variable " + c.Var)
		}
		vars[i] = ptr
		vals[i] = c.Val
	}
	return vars, vals, native.RetcodeOkay
}

func (e *Engine) BranchVarVal(ptr native.VarPtr, val float64) native.Retcode {
	if rc, ok := e.fail("BranchVarVal"); ok {
		return rc
	}
	if !e.inBranch {
		return native.RetcodeInvalidCall
	}
	v, ok := e.varByPtr[ptr]
	if !ok {
		return native.RetcodeInvalidData
	}
	if val == math.Floor(val) {
		return native.RetcodeBranchError
	}
	e.branched++
	e.records.Branchings = append(e.records.Branchings, Branching{Var: v.name, Val: val})
	return native.RetcodeOkay
}

// ----------------------------------------------------------------------------
// Results
// ----------------------------------------------------------------------------

func (e *Engine) Status() native.Status {
	return e.status
}

func (e *Engine) PrimalBound() float64 {
	if len(e.sols) == 0 {
		if e.sense == native.ObjSenseMaximize {
			return -1e20
		}
		return 1e20
	}
	return e.SolOrigObj(solBase)
}

func (e *Engine) NNodes() int64 { return e.nnodes }
func (e *Engine) NLPIterations() int64 { return e.lpIters }
func (e *Engine) SolvingTime() float64 { return e.Script.SolvingTime }
func (e *Engine) NSols() int { return len(e.sols) }

func (e *Engine) BestSol() native.SolPtr {
	if len(e.sols) == 0 {
		return 0
	}
	return solBase
}

func (e *Engine) sol(ptr native.SolPtr) map[native.VarPtr]float64 {
	i := int(ptr) - solBase
	if i < 0 || i >= len(e.sols) {
		panic(fmt.Sprintf("nativetest: unknown solution pointer %#x", uintptr(ptr)))
	}
	return e.sols[i]
}

func (e *Engine) SolVal(ptr native.SolPtr, v native.VarPtr) float64 {
	e.mustVar(v)
	return e.sol(ptr)[v]
}

func (e *Engine) SolOrigObj(ptr native.SolPtr) float64 {
	var obj float64
	for v, val := range e.sol(ptr) {
		obj += e.varByPtr[v].obj * val
	}
	return obj
}

// ----------------------------------------------------------------------------
// Ledger
// ----------------------------------------------------------------------------

// Records returns what the engine observed during solving.
func (e *Engine) Records() Records {
	return e.records
}

// Freed reports whether Free was called.
func (e *Engine) Freed() bool {
	return e.freed
}

// VarReleases returns how often ReleaseVar was called for the variable
// called name.
func (e *Engine) VarReleases(name string) int {
	n := 0
	for _, v := range e.vars {
		if v.name == name {
			n += v.releases
		}
	}
	return n
}

// ConsReleases returns how often ReleaseCons was called for the
// constraint called name.
func (e *Engine) ConsReleases(name string) int {
	n := 0
	for _, c := range e.conss {
		if c.name == name {
			n += c.releases
		}
	}
	return n
}

// Leaks lists objects the host still holds references to, as "var:<name>"
// and "cons:<name>".
func (e *Engine) Leaks() []string {
	var out []string
	for _, v := range e.vars {
		if v.captured > v.releases {
			out = append(out, "var:"+v.name)
		}
	}
	for _, c := range e.conss {
		if c.captured > c.releases {
			out = append(out, "cons:"+c.name)
		}
	}
	return out
}

// OverReleases lists objects released more often than they were
// captured, in the same format as Leaks.
func (e *Engine) OverReleases() []string {
	var out []string
	for _, v := range e.vars {
		if v.releases > v.captured {
			out = append(out, "var:"+v.name)
		}
	}
	for _, c := range e.conss {
		if c.releases > c.captured {
			out = append(out, "cons:"+c.name)
		}
	}
	return out
}

// FreeErrors returns how many plugin free callbacks returned a retcode
// other than okay.
func (e *Engine) FreeErrors() int {
	return e.badFrees
}
