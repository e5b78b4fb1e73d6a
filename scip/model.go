package scip

import (
	"sort"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// ----------------------------------------------------------------------------
// Unsolved
// ----------------------------------------------------------------------------

// UnsolvedModel is a fresh engine context. Only parameters can be set and
// the default plugins included.
type UnsolvedModel struct {
	inst *instance
}

// New creates a model. It panics when no engine is available; use TryNew
// to handle that case.
func New(opts ...Option) *UnsolvedModel {
	m, err := TryNew(opts...)
	must(err)
	return m
}

// TryNew creates a model.
func TryNew(opts ...Option) (*UnsolvedModel, error) {
	inst, err := openInstance(opts)
	if err != nil {
		return nil, err
	}
	inst.log.Debug("created SCIP instance", zap.String("version", inst.eng.Version()))
	return &UnsolvedModel{inst: inst}, nil
}

// NewProblem creates a model with SCIP's default plugins and an empty
// problem called name.
func NewProblem(name string, opts ...Option) *ProblemModel {
	return New(opts...).IncludeDefaultPlugins().CreateProb(name)
}

// SetStringParam sets a string parameter such as "lp/initalgorithm".
// It panics when SCIP rejects it; TrySetStringParam returns the error.
func (m *UnsolvedModel) SetStringParam(name, value string) *UnsolvedModel {
	must(m.TrySetStringParam(name, value))
	return m
}

// TrySetStringParam sets a string parameter.
func (m *UnsolvedModel) TrySetStringParam(name, value string) error {
	inst := checkLive(m.inst, "unsolved")
	return newError("SetStringParam", inst.eng.SetStringParam(name, value))
}

// SetIntParam sets an integer parameter such as "display/verblevel".
// It panics when SCIP rejects it; TrySetIntParam returns the error.
func (m *UnsolvedModel) SetIntParam(name string, value int) *UnsolvedModel {
	must(m.TrySetIntParam(name, value))
	return m
}

// TrySetIntParam sets an integer parameter.
func (m *UnsolvedModel) TrySetIntParam(name string, value int) error {
	inst := checkLive(m.inst, "unsolved")
	return newError("SetIntParam", inst.eng.SetIntParam(name, value))
}

// SetLongintParam sets a long integer parameter such as "limits/nodes".
// It panics when SCIP rejects it; TrySetLongintParam returns the error.
func (m *UnsolvedModel) SetLongintParam(name string, value int64) *UnsolvedModel {
	must(m.TrySetLongintParam(name, value))
	return m
}

// TrySetLongintParam sets a long integer parameter.
func (m *UnsolvedModel) TrySetLongintParam(name string, value int64) error {
	inst := checkLive(m.inst, "unsolved")
	return newError("SetLongintParam", inst.eng.SetLongintParam(name, value))
}

// SetRealParam sets a real parameter such as "limits/gap".
// It panics when SCIP rejects it; TrySetRealParam returns the error.
func (m *UnsolvedModel) SetRealParam(name string, value float64) *UnsolvedModel {
	must(m.TrySetRealParam(name, value))
	return m
}

// TrySetRealParam sets a real parameter.
func (m *UnsolvedModel) TrySetRealParam(name string, value float64) error {
	inst := checkLive(m.inst, "unsolved")
	return newError("SetRealParam", inst.eng.SetRealParam(name, value))
}

// SetBoolParam sets a boolean parameter such as "misc/catchctrlc".
// It panics when SCIP rejects it; TrySetBoolParam returns the error.
func (m *UnsolvedModel) SetBoolParam(name string, value bool) *UnsolvedModel {
	must(m.TrySetBoolParam(name, value))
	return m
}

// TrySetBoolParam sets a boolean parameter.
func (m *UnsolvedModel) TrySetBoolParam(name string, value bool) error {
	inst := checkLive(m.inst, "unsolved")
	return newError("SetBoolParam", inst.eng.SetBoolParam(name, value))
}

// SetPresolving applies an emphasis setting to all presolvers.
func (m *UnsolvedModel) SetPresolving(setting ParamSetting) *UnsolvedModel {
	inst := checkLive(m.inst, "unsolved")
	must(newError("SetPresolving", inst.eng.SetPresolving(setting.toNative())))
	return m
}

// SetSeparating applies an emphasis setting to all separators.
func (m *UnsolvedModel) SetSeparating(setting ParamSetting) *UnsolvedModel {
	inst := checkLive(m.inst, "unsolved")
	must(newError("SetSeparating", inst.eng.SetSeparating(setting.toNative())))
	return m
}

// SetHeuristics applies an emphasis setting to all primal heuristics.
func (m *UnsolvedModel) SetHeuristics(setting ParamSetting) *UnsolvedModel {
	inst := checkLive(m.inst, "unsolved")
	must(newError("SetHeuristics", inst.eng.SetHeuristics(setting.toNative())))
	return m
}

// HideOutput silences SCIP's own console output.
func (m *UnsolvedModel) HideOutput() *UnsolvedModel {
	checkLive(m.inst, "unsolved").hideOutput()
	return m
}

// SetTimeLimit limits the solving time. The limit has second granularity
// in SCIP; fractions are passed through.
func (m *UnsolvedModel) SetTimeLimit(d time.Duration) *UnsolvedModel {
	checkLive(m.inst, "unsolved").setTimeLimit(d.Seconds())
	return m
}

// IncludeDefaultPlugins includes SCIP's readers, constraint handlers,
// heuristics and the rest of its default plugins. It panics on failure.
func (m *UnsolvedModel) IncludeDefaultPlugins() *PluginsModel {
	next, err := m.TryIncludeDefaultPlugins()
	must(err)
	return next
}

// TryIncludeDefaultPlugins includes SCIP's default plugins. On failure m
// stays usable.
func (m *UnsolvedModel) TryIncludeDefaultPlugins() (*PluginsModel, error) {
	inst := checkLive(m.inst, "unsolved")
	if err := newError("IncludeDefaultPlugins", inst.eng.IncludeDefaultPlugins()); err != nil {
		return nil, err
	}
	m.inst = nil
	logTransition(inst, "unsolved", "plugins")
	return &PluginsModel{inst: inst}, nil
}

// Status returns the current solving status.
func (m *UnsolvedModel) Status() Status {
	return checkLive(m.inst, "unsolved").status()
}

// Version returns the SCIP version string.
func (m *UnsolvedModel) Version() string {
	return checkLive(m.inst, "unsolved").eng.Version()
}

// Close frees the engine. Closing a model that moved on to the next phase
// does nothing.
func (m *UnsolvedModel) Close() {
	closePhase(&m.inst)
}

// ----------------------------------------------------------------------------
// Plugins included
// ----------------------------------------------------------------------------

// PluginsModel has its plugins included and is ready for a problem.
type PluginsModel struct {
	inst *instance
}

// HideOutput silences SCIP's own console output.
func (m *PluginsModel) HideOutput() *PluginsModel {
	checkLive(m.inst, "plugins").hideOutput()
	return m
}

// SetTimeLimit limits the solving time.
func (m *PluginsModel) SetTimeLimit(d time.Duration) *PluginsModel {
	checkLive(m.inst, "plugins").setTimeLimit(d.Seconds())
	return m
}

// CreateProb creates an empty problem. It panics on failure.
func (m *PluginsModel) CreateProb(name string) *ProblemModel {
	next, err := m.TryCreateProb(name)
	must(err)
	return next
}

// TryCreateProb creates an empty problem called name.
func (m *PluginsModel) TryCreateProb(name string) (*ProblemModel, error) {
	inst := checkLive(m.inst, "plugins")
	if err := newError("CreateProb", inst.eng.CreateProbBasic(name)); err != nil {
		return nil, err
	}
	m.inst = nil
	logTransition(inst, "plugins", "problem")
	return &ProblemModel{inst: inst}, nil
}

// ReadProb reads a problem file in any format SCIP has a reader for. The
// variables and constraints SCIP creates while reading are captured, so
// Vars and Conss return them right away.
func (m *PluginsModel) ReadProb(filename string) (*ProblemModel, error) {
	inst := checkLive(m.inst, "plugins")
	if err := newError("ReadProb", inst.eng.ReadProb(filename)); err != nil {
		return nil, err
	}
	m.inst = nil

	var errs error
	for _, ptr := range inst.eng.Vars() {
		_, err := inst.captureVar(ptr)
		errs = multierr.Append(errs, err)
	}
	for _, ptr := range inst.eng.Conss() {
		_, err := inst.captureCons(ptr)
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		inst.close()
		return nil, errs
	}

	inst.log.Debug("read problem",
		zap.String("file", filename),
		zap.Int("vars", inst.vars.len()),
		zap.Int("conss", inst.conss.len()),
	)
	logTransition(inst, "plugins", "problem")
	return &ProblemModel{inst: inst}, nil
}

// Status returns the current solving status.
func (m *PluginsModel) Status() Status {
	return checkLive(m.inst, "plugins").status()
}

// Version returns the SCIP version string.
func (m *PluginsModel) Version() string {
	return checkLive(m.inst, "plugins").eng.Version()
}

// Close frees the engine. Closing a model that moved on to the next phase
// does nothing.
func (m *PluginsModel) Close() {
	closePhase(&m.inst)
}

// ----------------------------------------------------------------------------
// Problem created
// ----------------------------------------------------------------------------

// ProblemModel holds a problem that is being built. Variables,
// constraints, branching rules and pricers are added here; Solve moves on
// to SolvedModel.
type ProblemModel struct {
	inst *instance
}

// WithProblem is implemented by the phases that hold a problem.
type WithProblem interface {
	Vars() []*Variable
	Var(index int) *Variable
	NVars() int
	Conss() []*Constraint
	NConss() int
	Write(path, ext string) error
}

var (
	_ WithProblem = (*ProblemModel)(nil)
	_ WithProblem = (*SolvedModel)(nil)
)

// HideOutput silences SCIP's own console output.
func (m *ProblemModel) HideOutput() *ProblemModel {
	checkLive(m.inst, "problem").hideOutput()
	return m
}

// SetTimeLimit limits the solving time.
func (m *ProblemModel) SetTimeLimit(d time.Duration) *ProblemModel {
	checkLive(m.inst, "problem").setTimeLimit(d.Seconds())
	return m
}

// SetObjSense sets the optimization direction. It panics on failure.
func (m *ProblemModel) SetObjSense(sense ObjSense) *ProblemModel {
	inst := checkLive(m.inst, "problem")
	must(newError("SetObjSense", inst.eng.SetObjSense(sense.toNative())))
	return m
}

// AddVar adds a variable with bounds [lb, ub] and objective coefficient
// obj. It panics on failure.
func (m *ProblemModel) AddVar(lb, ub, obj float64, name string, vartype VarType) *Variable {
	v, err := m.TryAddVar(lb, ub, obj, name, vartype)
	must(err)
	return v
}

// TryAddVar adds a variable with bounds [lb, ub] and objective coefficient
// obj.
func (m *ProblemModel) TryAddVar(lb, ub, obj float64, name string, vartype VarType) (*Variable, error) {
	inst := checkLive(m.inst, "problem")
	ptr, rc := inst.eng.CreateVarBasic(name, lb, ub, obj, vartype.toNative())
	if err := newError("CreateVar", rc); err != nil {
		return nil, err
	}
	if err := newError("AddVar", inst.eng.AddVar(ptr)); err != nil {
		return nil, multierr.Append(err, newError("ReleaseVar", inst.eng.ReleaseVar(ptr)))
	}
	return inst.adoptVar(ptr), nil
}

// AddPricedVar adds a column found by a Pricer during solving. score
// ranks it among the columns of the same pricing round. It panics on
// failure.
func (m *ProblemModel) AddPricedVar(lb, ub, obj float64, name string, vartype VarType, score float64) *Variable {
	v, err := m.TryAddPricedVar(lb, ub, obj, name, vartype, score)
	must(err)
	return v
}

// TryAddPricedVar adds a column found by a Pricer during solving.
func (m *ProblemModel) TryAddPricedVar(lb, ub, obj float64, name string, vartype VarType, score float64) (*Variable, error) {
	inst := checkLive(m.inst, "problem")
	ptr, rc := inst.eng.CreateVarBasic(name, lb, ub, obj, vartype.toNative())
	if err := newError("CreateVar", rc); err != nil {
		return nil, err
	}
	if err := newError("AddPricedVar", inst.eng.AddPricedVar(ptr, score)); err != nil {
		return nil, multierr.Append(err, newError("ReleaseVar", inst.eng.ReleaseVar(ptr)))
	}
	return inst.adoptVar(ptr), nil
}

// AddCons adds the linear constraint lhs <= sum(coefs[i] * vars[i]) <= rhs.
// It panics on failure, including mismatched slice lengths.
func (m *ProblemModel) AddCons(vars []*Variable, coefs []float64, lhs, rhs float64, name string) *Constraint {
	c, err := m.TryAddCons(vars, coefs, lhs, rhs, name)
	must(err)
	return c
}

// TryAddCons adds the linear constraint lhs <= sum(coefs[i] * vars[i]) <= rhs.
func (m *ProblemModel) TryAddCons(vars []*Variable, coefs []float64, lhs, rhs float64, name string) (*Constraint, error) {
	inst := checkLive(m.inst, "problem")
	if len(vars) != len(coefs) {
		return nil, newErrorMsg("AddCons", "vars and coefs differ in length")
	}
	ptrs, err := inst.varPointers("AddCons", vars)
	if err != nil {
		return nil, err
	}
	ptr, rc := inst.eng.CreateConsBasicLinear(name, ptrs, coefs, lhs, rhs)
	if err := newError("CreateCons", rc); err != nil {
		return nil, err
	}
	return inst.addCons(ptr)
}

// AddConsSetPart adds a set partitioning constraint: exactly one of vars
// is 1. It panics on failure or if any variable is not binary.
func (m *ProblemModel) AddConsSetPart(vars []*Variable, name string) *Constraint {
	return m.addSetppc(native.SetppcPartitioning, vars, name)
}

// TryAddConsSetPart adds a set partitioning constraint.
func (m *ProblemModel) TryAddConsSetPart(vars []*Variable, name string) (*Constraint, error) {
	return m.tryAddSetppc(native.SetppcPartitioning, vars, name)
}

// AddConsSetPack adds a set packing constraint: at most one of vars is 1.
// It panics on failure or if any variable is not binary.
func (m *ProblemModel) AddConsSetPack(vars []*Variable, name string) *Constraint {
	return m.addSetppc(native.SetppcPacking, vars, name)
}

// TryAddConsSetPack adds a set packing constraint.
func (m *ProblemModel) TryAddConsSetPack(vars []*Variable, name string) (*Constraint, error) {
	return m.tryAddSetppc(native.SetppcPacking, vars, name)
}

// AddConsSetCover adds a set covering constraint: at least one of vars is
// 1. It panics on failure or if any variable is not binary.
func (m *ProblemModel) AddConsSetCover(vars []*Variable, name string) *Constraint {
	return m.addSetppc(native.SetppcCovering, vars, name)
}

// TryAddConsSetCover adds a set covering constraint.
func (m *ProblemModel) TryAddConsSetCover(vars []*Variable, name string) (*Constraint, error) {
	return m.tryAddSetppc(native.SetppcCovering, vars, name)
}

func (m *ProblemModel) addSetppc(kind native.SetppcType, vars []*Variable, name string) *Constraint {
	checkLive(m.inst, "problem")
	for _, v := range vars {
		if v != nil && v.Type() != Binary {
			panic("scip: set partitioning, packing and covering constraints take binary variables only, got " + v.String())
		}
	}
	c, err := m.tryAddSetppc(kind, vars, name)
	must(err)
	return c
}

func (m *ProblemModel) tryAddSetppc(kind native.SetppcType, vars []*Variable, name string) (*Constraint, error) {
	inst := checkLive(m.inst, "problem")
	ptrs, err := inst.varPointers("AddConsSetppc", vars)
	if err != nil {
		return nil, err
	}
	for _, v := range vars {
		if v.Type() != Binary {
			return nil, newErrorMsg("AddConsSetppc", "variable "+v.Name()+" is not binary")
		}
	}
	ptr, rc := inst.eng.CreateConsBasicSetppc(kind, name, ptrs)
	if err := newError("CreateConsSetppc", rc); err != nil {
		return nil, err
	}
	return inst.addCons(ptr)
}

// AddConsCoef adds coef * v to a linear constraint. It panics on failure.
func (m *ProblemModel) AddConsCoef(c *Constraint, v *Variable, coef float64) {
	must(m.TryAddConsCoef(c, v, coef))
}

// TryAddConsCoef adds coef * v to a linear constraint.
func (m *ProblemModel) TryAddConsCoef(c *Constraint, v *Variable, coef float64) error {
	inst := checkLive(m.inst, "problem")
	if err := inst.ownsCons("AddCoefLinear", c); err != nil {
		return err
	}
	if err := inst.ownsVar("AddCoefLinear", v); err != nil {
		return err
	}
	return newError("AddCoefLinear", inst.eng.AddCoefLinear(c.ptr, v.ptr, coef))
}

// AddConsCoefSetppc adds the binary variable v to a set partitioning,
// packing or covering constraint. It panics on failure or if v is not
// binary.
func (m *ProblemModel) AddConsCoefSetppc(c *Constraint, v *Variable) {
	checkLive(m.inst, "problem")
	if v != nil && v.Type() != Binary {
		panic("scip: set partitioning, packing and covering constraints take binary variables only, got " + v.String())
	}
	must(m.TryAddConsCoefSetppc(c, v))
}

// TryAddConsCoefSetppc adds the binary variable v to a set partitioning,
// packing or covering constraint.
func (m *ProblemModel) TryAddConsCoefSetppc(c *Constraint, v *Variable) error {
	inst := checkLive(m.inst, "problem")
	if err := inst.ownsCons("AddCoefSetppc", c); err != nil {
		return err
	}
	if err := inst.ownsVar("AddCoefSetppc", v); err != nil {
		return err
	}
	if v.Type() != Binary {
		return newErrorMsg("AddCoefSetppc", "variable "+v.Name()+" is not binary")
	}
	return newError("AddCoefSetppc", inst.eng.AddCoefSetppc(c.ptr, v.ptr))
}

// Solve runs SCIP on the problem. It panics on failure.
func (m *ProblemModel) Solve() *SolvedModel {
	solved, err := m.TrySolve()
	must(err)
	return solved
}

// TrySolve runs SCIP on the problem. Branching rules and pricers are
// called from inside TrySolve; m stays usable from them, through a
// ModelRef, until it returns. A failed solve leaves m usable.
//
// Hitting a limit is not an error: check the Status of the result.
func (m *ProblemModel) TrySolve() (*SolvedModel, error) {
	inst := checkLive(m.inst, "problem")
	if inst.solving {
		panic("scip: Solve called from inside a plugin callback")
	}

	rc := inst.solve()
	if err := newError("Solve", rc); err != nil {
		return nil, err
	}
	m.inst = nil

	solved := &SolvedModel{inst: inst}
	if inst.eng.NSols() > 0 {
		solved.best = &Solution{inst: inst, ptr: inst.eng.BestSol()}
	}
	inst.log.Debug("solved",
		zap.Stringer("status", inst.status()),
		zap.Int64("nodes", inst.eng.NNodes()),
		zap.Int("sols", inst.eng.NSols()),
	)
	logTransition(inst, "problem", "solved")
	return solved, nil
}

// Vars returns the model's variables ordered by index.
func (m *ProblemModel) Vars() []*Variable {
	return checkLive(m.inst, "problem").sortedVars()
}

// Var returns the variable with the given index, or nil.
func (m *ProblemModel) Var(index int) *Variable {
	return checkLive(m.inst, "problem").byIndex[index]
}

// NVars returns the number of variables SCIP reports for the problem.
func (m *ProblemModel) NVars() int {
	return checkLive(m.inst, "problem").eng.NVars()
}

// Conss returns the model's constraints in the order they were added.
func (m *ProblemModel) Conss() []*Constraint {
	return checkLive(m.inst, "problem").orderedConss()
}

// NConss returns the number of constraints SCIP reports for the problem.
func (m *ProblemModel) NConss() int {
	return checkLive(m.inst, "problem").eng.NConss()
}

// Write writes the original problem to path in the format named by ext,
// such as "lp", "mps" or "cip".
func (m *ProblemModel) Write(path, ext string) error {
	inst := checkLive(m.inst, "problem")
	return newError("Write", inst.eng.WriteOrigProblem(path, ext))
}

// Status returns the current solving status.
func (m *ProblemModel) Status() Status {
	return checkLive(m.inst, "problem").status()
}

// Version returns the SCIP version string.
func (m *ProblemModel) Version() string {
	return checkLive(m.inst, "problem").eng.Version()
}

// Close releases the model's variables and constraints and frees the
// engine. Closing a model that was solved does nothing; close the
// SolvedModel instead.
func (m *ProblemModel) Close() {
	if m.inst != nil && m.inst.solving {
		panic("scip: Close called from inside a plugin callback")
	}
	closePhase(&m.inst)
}

// ----------------------------------------------------------------------------
// Solved
// ----------------------------------------------------------------------------

// SolvedModel is the read-only result of Solve.
type SolvedModel struct {
	inst *instance
	best *Solution
}

// Status returns the solving status.
func (m *SolvedModel) Status() Status {
	return checkLive(m.inst, "solved").status()
}

// ObjVal returns the objective value of the best solution, or the
// objective limit when there is none.
func (m *SolvedModel) ObjVal() float64 {
	return checkLive(m.inst, "solved").eng.PrimalBound()
}

// NNodes returns the number of branch-and-bound nodes processed.
func (m *SolvedModel) NNodes() int64 {
	return checkLive(m.inst, "solved").eng.NNodes()
}

// NLPIterations returns the total number of LP iterations.
func (m *SolvedModel) NLPIterations() int64 {
	return checkLive(m.inst, "solved").eng.NLPIterations()
}

// SolvingTime returns the time spent in Solve.
func (m *SolvedModel) SolvingTime() time.Duration {
	secs := checkLive(m.inst, "solved").eng.SolvingTime()
	return time.Duration(secs * float64(time.Second))
}

// NSols returns the number of feasible solutions SCIP stored.
func (m *SolvedModel) NSols() int {
	return checkLive(m.inst, "solved").eng.NSols()
}

// BestSol returns the best solution found, or nil if SCIP found none.
func (m *SolvedModel) BestSol() *Solution {
	checkLive(m.inst, "solved")
	return m.best
}

// Vars returns the model's variables ordered by index.
func (m *SolvedModel) Vars() []*Variable {
	return checkLive(m.inst, "solved").sortedVars()
}

// Var returns the variable with the given index, or nil.
func (m *SolvedModel) Var(index int) *Variable {
	return checkLive(m.inst, "solved").byIndex[index]
}

// NVars returns the number of variables SCIP reports for the problem.
func (m *SolvedModel) NVars() int {
	return checkLive(m.inst, "solved").eng.NVars()
}

// Conss returns the model's constraints in the order they were added.
func (m *SolvedModel) Conss() []*Constraint {
	return checkLive(m.inst, "solved").orderedConss()
}

// NConss returns the number of constraints SCIP reports for the problem.
func (m *SolvedModel) NConss() int {
	return checkLive(m.inst, "solved").eng.NConss()
}

// Write writes the original problem to path in the format named by ext.
func (m *SolvedModel) Write(path, ext string) error {
	inst := checkLive(m.inst, "solved")
	return newError("Write", inst.eng.WriteOrigProblem(path, ext))
}

// Version returns the SCIP version string.
func (m *SolvedModel) Version() string {
	return checkLive(m.inst, "solved").eng.Version()
}

// Close releases the model's variables and constraints and frees the
// engine. Solutions and handles of the model must not be used afterwards.
func (m *SolvedModel) Close() {
	m.best = nil
	closePhase(&m.inst)
}

// ----------------------------------------------------------------------------
// Shared
// ----------------------------------------------------------------------------

// closePhase closes the instance held by a phase value and marks the value
// spent. A nil instance means the value was already spent.
func closePhase(inst **instance) {
	if *inst == nil {
		return
	}
	(*inst).close()
	*inst = nil
}

// solve runs the engine. The solving flag is cleared even when a plugin
// panics out of the engine.
func (inst *instance) solve() native.Retcode {
	inst.solving = true
	defer func() { inst.solving = false }()
	return inst.eng.Solve()
}

func logTransition(inst *instance, from, to string) {
	inst.log.Debug("model phase changed", zap.String("from", from), zap.String("to", to))
}

func (inst *instance) sortedVars() []*Variable {
	indices := make([]int, 0, len(inst.byIndex))
	for idx := range inst.byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	vars := make([]*Variable, len(indices))
	for i, idx := range indices {
		vars[i] = inst.byIndex[idx]
	}
	return vars
}

func (inst *instance) orderedConss() []*Constraint {
	ptrs := inst.conss.pointers()
	conss := make([]*Constraint, len(ptrs))
	for i, ptr := range ptrs {
		conss[i], _ = inst.conss.get(ptr)
	}
	return conss
}

// varPointers checks that every variable belongs to this model and returns
// their native pointers.
func (inst *instance) varPointers(op string, vars []*Variable) ([]native.VarPtr, error) {
	ptrs := make([]native.VarPtr, len(vars))
	for i, v := range vars {
		if err := inst.ownsVar(op, v); err != nil {
			return nil, err
		}
		ptrs[i] = v.ptr
	}
	return ptrs, nil
}

// addCons adds a freshly created constraint to the problem and adopts its
// creation reference. A constraint SCIP rejects is released right away.
func (inst *instance) addCons(ptr native.ConsPtr) (*Constraint, error) {
	if err := newError("AddCons", inst.eng.AddCons(ptr)); err != nil {
		return nil, multierr.Append(err, newError("ReleaseCons", inst.eng.ReleaseCons(ptr)))
	}
	return inst.adoptCons(ptr), nil
}
