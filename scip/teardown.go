package scip

import (
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// holdsProblem reports whether SCIP has variables and constraints in stage.
func holdsProblem(stage native.Stage) bool {
	switch stage {
	case native.StageProblem,
		native.StageTransformed,
		native.StageInitPresolve,
		native.StagePresolving,
		native.StageExitPresolve,
		native.StagePresolved,
		native.StageInitSolve,
		native.StageSolving,
		native.StageSolved,
		native.StageExitSolve:
		return true
	default:
		return false
	}
}

// close releases every captured object and frees the engine. It is safe to
// call more than once.
func (inst *instance) close() {
	if inst.closed {
		return
	}
	inst.closed = true
	runtime.SetFinalizer(inst, nil)

	stage := inst.eng.Stage()
	if holdsProblem(stage) {
		if err := inst.releaseAll(); err != nil {
			inst.log.Error("releasing SCIP objects failed", zap.Error(err))
			panic(err)
		}
	}
	inst.eng.Free()
}

// releaseAll drops the binding's single reference to each captured object.
// It walks SCIP's original problem first so objects are released in SCIP's
// order, then releases whatever was captured outside of it, such as
// columns priced in during solving.
func (inst *instance) releaseAll() error {
	var errs error

	releasedVars := make(map[native.VarPtr]bool, inst.vars.len())
	releaseVar := func(ptr native.VarPtr) {
		if releasedVars[ptr] {
			return
		}
		releasedVars[ptr] = true
		errs = multierr.Append(errs, newError("ReleaseVar", inst.eng.ReleaseVar(ptr)))
		inst.metrics.released(objectVariable)
	}
	for _, ptr := range inst.eng.OrigVars() {
		if _, ok := inst.vars.get(ptr); !ok {
			inst.log.Warn("SCIP lists a variable the model never captured", zap.Uintptr("ptr", uintptr(ptr)))
			continue
		}
		releaseVar(ptr)
	}
	for _, ptr := range inst.vars.pointers() {
		releaseVar(ptr)
	}

	releasedConss := make(map[native.ConsPtr]bool, inst.conss.len())
	releaseCons := func(ptr native.ConsPtr) {
		if releasedConss[ptr] {
			return
		}
		releasedConss[ptr] = true
		errs = multierr.Append(errs, newError("ReleaseCons", inst.eng.ReleaseCons(ptr)))
		inst.metrics.released(objectConstraint)
	}
	for _, ptr := range inst.eng.OrigConss() {
		if _, ok := inst.conss.get(ptr); !ok {
			inst.log.Warn("SCIP lists a constraint the model never captured", zap.Uintptr("ptr", uintptr(ptr)))
			continue
		}
		releaseCons(ptr)
	}
	for _, ptr := range inst.conss.pointers() {
		releaseCons(ptr)
	}

	inst.log.Debug("released SCIP objects",
		zap.Int("variables", len(releasedVars)),
		zap.Int("constraints", len(releasedConss)),
	)
	return errs
}
