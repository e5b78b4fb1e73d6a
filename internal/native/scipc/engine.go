//go:build scip

package scipc

/*
#cgo LDFLAGS: -lscip

#include "shim.h"

static inline SCIP_VAR* goscip_var(uintptr_t p) { return (SCIP_VAR*)p; }
static inline SCIP_CONS* goscip_cons(uintptr_t p) { return (SCIP_CONS*)p; }
static inline SCIP_SOL* goscip_sol(uintptr_t p) { return (SCIP_SOL*)p; }
*/
import "C"
import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// DriverName is the name the backend registers under.
const DriverName = "scip"

func init() {
	native.Register(DriverName, native.DriverFunc(Open))
}

// engines maps SCIP contexts to their Engine so callbacks can find it.
var engines = struct {
	sync.RWMutex
	m map[*C.SCIP]*Engine
}{m: make(map[*C.SCIP]*Engine)}

func lookup(scip *C.SCIP) *Engine {
	engines.RLock()
	defer engines.RUnlock()
	e, ok := engines.m[scip]
	if !ok {
		panic(fmt.Sprintf("scipc: callback for unknown SCIP context %p", scip))
	}
	return e
}

// Engine is one SCIP context.
type Engine struct {
	scip *C.SCIP

	branchRules map[native.PluginData]native.BranchRuleDef
	pricers     map[native.PluginData]native.PricerDef

	// panicked holds the first panic recovered at the C boundary until it
	// can be raised again from Go.
	panicked any
}

var _ native.Engine = (*Engine)(nil)

// Open creates a SCIP context.
func Open() (native.Engine, native.Retcode) {
	var scip *C.SCIP
	if rc := native.Retcode(C.SCIPcreate(&scip)); rc != native.RetcodeOkay {
		return nil, rc
	}
	e := &Engine{
		scip:        scip,
		branchRules: make(map[native.PluginData]native.BranchRuleDef),
		pricers:     make(map[native.PluginData]native.PricerDef),
	}
	engines.Lock()
	engines.m[scip] = e
	engines.Unlock()
	return e, native.RetcodeOkay
}

// rethrow raises a panic recovered during the last C call.
func (e *Engine) rethrow() {
	if p := e.panicked; p != nil {
		e.panicked = nil
		panic(p)
	}
}

func cBool(b bool) C.SCIP_Bool {
	if b {
		return 1
	}
	return 0
}

func varPtr(v *C.SCIP_VAR) native.VarPtr {
	return native.VarPtr(uintptr(unsafe.Pointer(v)))
}

func consPtr(c *C.SCIP_CONS) native.ConsPtr {
	return native.ConsPtr(uintptr(unsafe.Pointer(c)))
}

func cVar(p native.VarPtr) *C.SCIP_VAR {
	return C.goscip_var(C.uintptr_t(p))
}

func cCons(p native.ConsPtr) *C.SCIP_CONS {
	return C.goscip_cons(C.uintptr_t(p))
}

func cVars(vars []native.VarPtr) []*C.SCIP_VAR {
	out := make([]*C.SCIP_VAR, len(vars))
	for i, v := range vars {
		out[i] = cVar(v)
	}
	return out
}

func goVars(vars **C.SCIP_VAR, n C.int) []native.VarPtr {
	if n == 0 || vars == nil {
		return nil
	}
	src := unsafe.Slice(vars, int(n))
	out := make([]native.VarPtr, len(src))
	for i, v := range src {
		out[i] = varPtr(v)
	}
	return out
}

func goConss(conss **C.SCIP_CONS, n C.int) []native.ConsPtr {
	if n == 0 || conss == nil {
		return nil
	}
	src := unsafe.Slice(conss, int(n))
	out := make([]native.ConsPtr, len(src))
	for i, c := range src {
		out[i] = consPtr(c)
	}
	return out
}

// ----------------------------------------------------------------------------
// Lifecycle
// ----------------------------------------------------------------------------

// Free frees the context. SCIP calls the free callback of every plugin.
func (e *Engine) Free() {
	rc := native.Retcode(C.SCIPfree(&e.scip))
	engines.Lock()
	for scip, other := range engines.m {
		if other == e {
			delete(engines.m, scip)
		}
	}
	engines.Unlock()
	e.rethrow()
	if rc != native.RetcodeOkay {
		panic(fmt.Sprintf("scipc: SCIPfree failed with retcode %d", rc))
	}
}

func (e *Engine) Stage() native.Stage {
	return native.Stage(C.SCIPgetStage(e.scip))
}

func (e *Engine) Version() string {
	return fmt.Sprintf("%d.%d.%d", int(C.SCIPmajorVersion()), int(C.SCIPminorVersion()), int(C.SCIPtechVersion()))
}

// ----------------------------------------------------------------------------
// Parameters
// ----------------------------------------------------------------------------

func (e *Engine) SetStringParam(name, value string) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(value)
	defer C.free(unsafe.Pointer(cVal))
	return native.Retcode(C.SCIPsetStringParam(e.scip, cName, cVal))
}

func (e *Engine) SetIntParam(name string, value int) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return native.Retcode(C.SCIPsetIntParam(e.scip, cName, C.int(value)))
}

func (e *Engine) SetLongintParam(name string, value int64) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return native.Retcode(C.SCIPsetLongintParam(e.scip, cName, C.SCIP_Longint(value)))
}

func (e *Engine) SetRealParam(name string, value float64) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return native.Retcode(C.SCIPsetRealParam(e.scip, cName, C.SCIP_Real(value)))
}

func (e *Engine) SetBoolParam(name string, value bool) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return native.Retcode(C.SCIPsetBoolParam(e.scip, cName, cBool(value)))
}

func (e *Engine) SetPresolving(s native.ParamSetting) native.Retcode {
	return native.Retcode(C.SCIPsetPresolving(e.scip, C.SCIP_PARAMSETTING(s), 1))
}

func (e *Engine) SetSeparating(s native.ParamSetting) native.Retcode {
	return native.Retcode(C.SCIPsetSeparating(e.scip, C.SCIP_PARAMSETTING(s), 1))
}

func (e *Engine) SetHeuristics(s native.ParamSetting) native.Retcode {
	return native.Retcode(C.SCIPsetHeuristics(e.scip, C.SCIP_PARAMSETTING(s), 1))
}

// ----------------------------------------------------------------------------
// Problem
// ----------------------------------------------------------------------------

func (e *Engine) IncludeDefaultPlugins() native.Retcode {
	return native.Retcode(C.SCIPincludeDefaultPlugins(e.scip))
}

func (e *Engine) CreateProbBasic(name string) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return native.Retcode(C.SCIPcreateProbBasic(e.scip, cName))
}

func (e *Engine) ReadProb(filename string) native.Retcode {
	cName := C.CString(filename)
	defer C.free(unsafe.Pointer(cName))
	return native.Retcode(C.SCIPreadProb(e.scip, cName, nil))
}

func (e *Engine) WriteOrigProblem(filename, extension string) native.Retcode {
	cName := C.CString(filename)
	defer C.free(unsafe.Pointer(cName))
	var cExt *C.char
	if extension != "" {
		cExt = C.CString(extension)
		defer C.free(unsafe.Pointer(cExt))
	}
	return native.Retcode(C.SCIPwriteOrigProblem(e.scip, cName, cExt, 0))
}

func (e *Engine) SetObjSense(sense native.ObjSense) native.Retcode {
	return native.Retcode(C.SCIPsetObjsense(e.scip, C.SCIP_OBJSENSE(sense)))
}

func (e *Engine) Vars() []native.VarPtr {
	return goVars(C.SCIPgetVars(e.scip), C.SCIPgetNVars(e.scip))
}

func (e *Engine) Conss() []native.ConsPtr {
	return goConss(C.SCIPgetConss(e.scip), C.SCIPgetNConss(e.scip))
}

func (e *Engine) OrigVars() []native.VarPtr {
	return goVars(C.SCIPgetOrigVars(e.scip), C.SCIPgetNOrigVars(e.scip))
}

func (e *Engine) OrigConss() []native.ConsPtr {
	return goConss(C.SCIPgetOrigConss(e.scip), C.SCIPgetNOrigConss(e.scip))
}

func (e *Engine) NVars() int {
	return int(C.SCIPgetNVars(e.scip))
}

func (e *Engine) NConss() int {
	return int(C.SCIPgetNConss(e.scip))
}

// ----------------------------------------------------------------------------
// Variables
// ----------------------------------------------------------------------------

func (e *Engine) CreateVarBasic(name string, lb, ub, obj float64, vartype native.VarType) (native.VarPtr, native.Retcode) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v *C.SCIP_VAR
	rc := native.Retcode(C.SCIPcreateVarBasic(e.scip, &v, cName,
		C.SCIP_Real(lb), C.SCIP_Real(ub), C.SCIP_Real(obj), C.SCIP_VARTYPE(vartype)))
	if rc != native.RetcodeOkay {
		return 0, rc
	}
	return varPtr(v), rc
}

func (e *Engine) AddVar(v native.VarPtr) native.Retcode {
	return native.Retcode(C.SCIPaddVar(e.scip, cVar(v)))
}

func (e *Engine) AddPricedVar(v native.VarPtr, score float64) native.Retcode {
	return native.Retcode(C.SCIPaddPricedVar(e.scip, cVar(v), C.SCIP_Real(score)))
}

func (e *Engine) CaptureVar(v native.VarPtr) native.Retcode {
	return native.Retcode(C.SCIPcaptureVar(e.scip, cVar(v)))
}

func (e *Engine) ReleaseVar(v native.VarPtr) native.Retcode {
	cv := cVar(v)
	return native.Retcode(C.SCIPreleaseVar(e.scip, &cv))
}

func (e *Engine) VarName(v native.VarPtr) string {
	return C.GoString(C.SCIPvarGetName(cVar(v)))
}

func (e *Engine) VarIndex(v native.VarPtr) int {
	return int(C.SCIPvarGetIndex(cVar(v)))
}

func (e *Engine) VarObj(v native.VarPtr) float64 {
	return float64(C.SCIPvarGetObj(cVar(v)))
}

func (e *Engine) VarLB(v native.VarPtr) float64 {
	return float64(C.SCIPvarGetLbGlobal(cVar(v)))
}

func (e *Engine) VarUB(v native.VarPtr) float64 {
	return float64(C.SCIPvarGetUbGlobal(cVar(v)))
}

func (e *Engine) VarType(v native.VarPtr) native.VarType {
	return native.VarType(C.SCIPvarGetType(cVar(v)))
}

// ----------------------------------------------------------------------------
// Constraints
// ----------------------------------------------------------------------------

func (e *Engine) CreateConsBasicLinear(name string, vars []native.VarPtr, coefs []float64, lhs, rhs float64) (native.ConsPtr, native.Retcode) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var (
		pVars **C.SCIP_VAR
		pVals *C.SCIP_Real
	)
	if len(vars) > 0 {
		cv := cVars(vars)
		pVars = &cv[0]
		pVals = (*C.SCIP_Real)(&coefs[0])
	}
	var c *C.SCIP_CONS
	rc := native.Retcode(C.SCIPcreateConsBasicLinear(e.scip, &c, cName, C.int(len(vars)),
		pVars, pVals, C.SCIP_Real(lhs), C.SCIP_Real(rhs)))
	if rc != native.RetcodeOkay {
		return 0, rc
	}
	return consPtr(c), rc
}

func (e *Engine) CreateConsBasicSetppc(kind native.SetppcType, name string, vars []native.VarPtr) (native.ConsPtr, native.Retcode) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var pVars **C.SCIP_VAR
	if len(vars) > 0 {
		cv := cVars(vars)
		pVars = &cv[0]
	}
	n := C.int(len(vars))
	var (
		c  *C.SCIP_CONS
		rc C.SCIP_RETCODE
	)
	switch kind {
	case native.SetppcPartitioning:
		rc = C.SCIPcreateConsBasicSetpart(e.scip, &c, cName, n, pVars)
	case native.SetppcPacking:
		rc = C.SCIPcreateConsBasicSetpack(e.scip, &c, cName, n, pVars)
	case native.SetppcCovering:
		rc = C.SCIPcreateConsBasicSetcover(e.scip, &c, cName, n, pVars)
	default:
		return 0, native.RetcodeInvalidData
	}
	if native.Retcode(rc) != native.RetcodeOkay {
		return 0, native.Retcode(rc)
	}
	return consPtr(c), native.RetcodeOkay
}

func (e *Engine) AddCoefLinear(c native.ConsPtr, v native.VarPtr, coef float64) native.Retcode {
	return native.Retcode(C.SCIPaddCoefLinear(e.scip, cCons(c), cVar(v), C.SCIP_Real(coef)))
}

func (e *Engine) AddCoefSetppc(c native.ConsPtr, v native.VarPtr) native.Retcode {
	return native.Retcode(C.SCIPaddCoefSetppc(e.scip, cCons(c), cVar(v)))
}

func (e *Engine) AddCons(c native.ConsPtr) native.Retcode {
	return native.Retcode(C.SCIPaddCons(e.scip, cCons(c)))
}

func (e *Engine) CaptureCons(c native.ConsPtr) native.Retcode {
	return native.Retcode(C.SCIPcaptureCons(e.scip, cCons(c)))
}

func (e *Engine) ReleaseCons(c native.ConsPtr) native.Retcode {
	cc := cCons(c)
	return native.Retcode(C.SCIPreleaseCons(e.scip, &cc))
}

func (e *Engine) ConsName(c native.ConsPtr) string {
	return C.GoString(C.SCIPconsGetName(cCons(c)))
}

// ----------------------------------------------------------------------------
// Plugins
// ----------------------------------------------------------------------------

func (e *Engine) IncludeBranchRule(def native.BranchRuleDef) native.Retcode {
	cName := C.CString(def.Name)
	defer C.free(unsafe.Pointer(cName))
	cDesc := C.CString(def.Desc)
	defer C.free(unsafe.Pointer(cDesc))

	e.branchRules[def.Data] = def
	rc := native.Retcode(C.goscip_include_branchrule(e.scip, cName, cDesc,
		C.int(def.Priority), C.int(def.MaxDepth), C.SCIP_Real(def.MaxBoundDist), C.uintptr_t(def.Data)))
	if rc != native.RetcodeOkay {
		delete(e.branchRules, def.Data)
	}
	return rc
}

func (e *Engine) IncludePricer(def native.PricerDef) native.Retcode {
	cName := C.CString(def.Name)
	defer C.free(unsafe.Pointer(cName))
	cDesc := C.CString(def.Desc)
	defer C.free(unsafe.Pointer(cDesc))

	e.pricers[def.Data] = def
	rc := native.Retcode(C.goscip_include_pricer(e.scip, cName, cDesc,
		C.int(def.Priority), cBool(def.Delay), C.uintptr_t(def.Data)))
	if rc != native.RetcodeOkay {
		delete(e.pricers, def.Data)
	}
	return rc
}

func (e *Engine) LPBranchCands() ([]native.VarPtr, []float64, native.Retcode) {
	var (
		cands **C.SCIP_VAR
		sols  *C.SCIP_Real
		n     C.int
	)
	rc := native.Retcode(C.SCIPgetLPBranchCands(e.scip, &cands, &sols, nil, &n, nil, nil))
	if rc != native.RetcodeOkay {
		return nil, nil, rc
	}
	vals := make([]float64, int(n))
	if n > 0 {
		for i, v := range unsafe.Slice(sols, int(n)) {
			vals[i] = float64(v)
		}
	}
	return goVars(cands, n), vals, rc
}

func (e *Engine) BranchVarVal(v native.VarPtr, val float64) native.Retcode {
	return native.Retcode(C.SCIPbranchVarVal(e.scip, cVar(v), C.SCIP_Real(val), nil, nil, nil))
}

// ----------------------------------------------------------------------------
// Solving
// ----------------------------------------------------------------------------

func (e *Engine) Solve() native.Retcode {
	rc := native.Retcode(C.SCIPsolve(e.scip))
	e.rethrow()
	return rc
}

func (e *Engine) Status() native.Status {
	return native.Status(C.SCIPgetStatus(e.scip))
}

func (e *Engine) PrimalBound() float64 {
	return float64(C.SCIPgetPrimalbound(e.scip))
}

func (e *Engine) NNodes() int64 {
	return int64(C.SCIPgetNNodes(e.scip))
}

func (e *Engine) NLPIterations() int64 {
	return int64(C.SCIPgetNLPIterations(e.scip))
}

func (e *Engine) SolvingTime() float64 {
	return float64(C.SCIPgetSolvingTime(e.scip))
}

func (e *Engine) NSols() int {
	return int(C.SCIPgetNSols(e.scip))
}

func (e *Engine) BestSol() native.SolPtr {
	return native.SolPtr(uintptr(unsafe.Pointer(C.SCIPgetBestSol(e.scip))))
}

func (e *Engine) SolVal(sol native.SolPtr, v native.VarPtr) float64 {
	return float64(C.SCIPgetSolVal(e.scip, C.goscip_sol(C.uintptr_t(sol)), cVar(v)))
}

func (e *Engine) SolOrigObj(sol native.SolPtr) float64 {
	return float64(C.SCIPgetSolOrigObj(e.scip, C.goscip_sol(C.uintptr_t(sol))))
}
