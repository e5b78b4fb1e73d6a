package scip

import (
	"fmt"

	"github.com/bartolsthoorn/goscip/internal/native"
)

const (
	objectVariable   = "variable"
	objectConstraint = "constraint"
)

// Variable is a handle to a SCIP variable.
//
// The model keeps exactly one *Variable per SCIP variable and holds one
// SCIP reference for it, released when the model is closed. Copying the
// pointer is how a handle is shared; it never touches SCIP. A Variable must
// not be used after its model is closed.
//
// Variables passed to a BranchRule as candidates may be borrowed views of
// SCIP's transformed problem. They hold no reference and are only valid
// until the callback returns.
type Variable struct {
	owner    *owner
	eng      native.Engine
	ptr      native.VarPtr
	borrowed bool
}

func (v *Variable) engine() native.Engine {
	if v.owner != nil && v.owner.closed {
		panic("scip: variable used after its model was closed")
	}
	return v.eng
}

// Index returns the SCIP index of the variable. It is unique within the
// model and is the key accepted by Var.
func (v *Variable) Index() int {
	return v.engine().VarIndex(v.ptr)
}

// Name returns the variable name.
func (v *Variable) Name() string {
	return v.engine().VarName(v.ptr)
}

// Obj returns the objective coefficient.
func (v *Variable) Obj() float64 {
	return v.engine().VarObj(v.ptr)
}

// LB returns the lower bound.
func (v *Variable) LB() float64 {
	return v.engine().VarLB(v.ptr)
}

// UB returns the upper bound.
func (v *Variable) UB() float64 {
	return v.engine().VarUB(v.ptr)
}

// Type returns the variable type.
func (v *Variable) Type() VarType {
	return varTypeFromNative(v.engine().VarType(v.ptr))
}

// Borrowed reports whether v is a callback-scoped view without its own
// SCIP reference.
func (v *Variable) Borrowed() bool {
	return v.borrowed
}

func (v *Variable) String() string {
	return fmt.Sprintf("Variable(%s)", v.Name())
}

// Constraint is a handle to a SCIP constraint. Ownership follows the same
// rules as Variable.
type Constraint struct {
	owner *owner
	ptr   native.ConsPtr
}

func (c *Constraint) engine() native.Engine {
	if c.owner.closed {
		panic("scip: constraint used after its model was closed")
	}
	return c.owner.eng
}

// Name returns the constraint name.
func (c *Constraint) Name() string {
	return c.engine().ConsName(c.ptr)
}

func (c *Constraint) String() string {
	return fmt.Sprintf("Constraint(%s)", c.Name())
}

// objectTable is the per-model arena of captured SCIP objects. It holds at
// most one handle per native pointer, in capture order.
type objectTable[P comparable, H any] struct {
	byPtr map[P]H
	order []P
}

func newObjectTable[P comparable, H any]() *objectTable[P, H] {
	return &objectTable[P, H]{byPtr: make(map[P]H)}
}

func (t *objectTable[P, H]) get(p P) (H, bool) {
	h, ok := t.byPtr[p]
	return h, ok
}

func (t *objectTable[P, H]) put(p P, h H) {
	if _, dup := t.byPtr[p]; dup {
		panic("scip: native object captured twice")
	}
	t.byPtr[p] = h
	t.order = append(t.order, p)
}

func (t *objectTable[P, H]) len() int {
	return len(t.order)
}

func (t *objectTable[P, H]) pointers() []P {
	out := make([]P, len(t.order))
	copy(out, t.order)
	return out
}

// adoptVar registers a variable whose single SCIP reference the binding
// already owns, typically the creation reference.
func (inst *instance) adoptVar(ptr native.VarPtr) *Variable {
	v := &Variable{owner: inst.owner, eng: inst.eng, ptr: ptr}
	inst.vars.put(ptr, v)
	inst.byIndex[inst.eng.VarIndex(ptr)] = v
	inst.metrics.captured(objectVariable)
	return v
}

// captureVar returns the model's handle for ptr, capturing it in SCIP the
// first time it is seen.
func (inst *instance) captureVar(ptr native.VarPtr) (*Variable, error) {
	if v, ok := inst.vars.get(ptr); ok {
		return v, nil
	}
	if err := newError("CaptureVar", inst.eng.CaptureVar(ptr)); err != nil {
		return nil, err
	}
	return inst.adoptVar(ptr), nil
}

// viewVar returns the model's handle for ptr if it has one, and a borrowed
// view bound to e otherwise. inst may be nil.
func (inst *instance) viewVar(e native.Engine, ptr native.VarPtr) *Variable {
	if inst == nil {
		return &Variable{eng: e, ptr: ptr, borrowed: true}
	}
	if v, ok := inst.vars.get(ptr); ok && !inst.closed {
		return v
	}
	return &Variable{owner: inst.owner, eng: e, ptr: ptr, borrowed: true}
}

func (inst *instance) adoptCons(ptr native.ConsPtr) *Constraint {
	c := &Constraint{owner: inst.owner, ptr: ptr}
	inst.conss.put(ptr, c)
	inst.metrics.captured(objectConstraint)
	return c
}

func (inst *instance) captureCons(ptr native.ConsPtr) (*Constraint, error) {
	if c, ok := inst.conss.get(ptr); ok {
		return c, nil
	}
	if err := newError("CaptureCons", inst.eng.CaptureCons(ptr)); err != nil {
		return nil, err
	}
	return inst.adoptCons(ptr), nil
}
