package scip

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// owner is the part of an instance that handles point back to. Handles never
// reference the instance itself: a cycle through it would keep its
// finalizer from running.
type owner struct {
	eng    native.Engine
	closed bool
}

// instance exclusively owns one engine context. Phase values hand it along;
// exactly one of them holds it at any time.
type instance struct {
	*owner
	log     *zap.Logger
	metrics *Metrics

	vars    *objectTable[native.VarPtr, *Variable]
	conss   *objectTable[native.ConsPtr, *Constraint]
	byIndex map[int]*Variable

	solving bool
}

func openInstance(opts []Option) (*instance, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	eng := cfg.engine
	if eng == nil {
		drv, ok := native.Lookup(cfg.driver)
		if !ok {
			return nil, fmt.Errorf("%w: driver %q not registered (have %v)", ErrNoEngine, cfg.driver, native.Drivers())
		}
		var rc native.Retcode
		eng, rc = drv.Open()
		if err := newError("New", rc); err != nil {
			return nil, err
		}
	}

	log := cfg.logger
	if log == nil {
		log = Logger()
	}

	inst := &instance{
		owner:   &owner{eng: eng},
		log:     log,
		metrics: cfg.metrics,
		vars:    newObjectTable[native.VarPtr, *Variable](),
		conss:   newObjectTable[native.ConsPtr, *Constraint](),
		byIndex: make(map[int]*Variable),
	}
	runtime.SetFinalizer(inst, (*instance).close)
	return inst, nil
}

// checkLive panics when the phase value was spent by a transition or its
// model was closed.
func checkLive(inst *instance, phase string) *instance {
	if inst == nil {
		panic("scip: " + phase + " model used after it moved to the next phase")
	}
	if inst.closed {
		panic("scip: " + phase + " model used after Close")
	}
	return inst
}

func (inst *instance) status() Status {
	return statusFromNative(inst.eng.Status())
}

func (inst *instance) hideOutput() {
	must(newError("HideOutput", inst.eng.SetIntParam("display/verblevel", 0)))
}

func (inst *instance) setTimeLimit(seconds float64) {
	must(newError("SetTimeLimit", inst.eng.SetRealParam("limits/time", seconds)))
}

// ownsVar reports an error for op unless v is one of this model's own
// variables. Borrowed candidate views do not count.
func (inst *instance) ownsVar(op string, v *Variable) error {
	if v == nil {
		return newErrorMsg(op, "nil variable")
	}
	if v.owner != inst.owner || v.borrowed {
		return newErrorMsg(op, "variable does not belong to this model")
	}
	return nil
}

func (inst *instance) ownsCons(op string, c *Constraint) error {
	if c == nil {
		return newErrorMsg(op, "nil constraint")
	}
	if c.owner != inst.owner {
		return newErrorMsg(op, "constraint does not belong to this model")
	}
	return nil
}
