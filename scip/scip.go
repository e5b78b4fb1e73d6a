// Package scip provides a phase-checked Go interface to the SCIP
// branch-and-bound optimization engine.
//
// A model moves through four phases, each a distinct Go type that only
// exposes the calls SCIP accepts in that phase:
//
//	UnsolvedModel -> PluginsModel -> ProblemModel -> SolvedModel
//
// Transitions hand the underlying engine over to the next phase value. The
// value transitioned away from is spent, and using it panics.
//
// # Example
//
//	model := scip.New().
//		HideOutput().
//		IncludeDefaultPlugins().
//		CreateProb("test").
//		SetObjSense(scip.Maximize)
//	defer model.Close()
//
//	x1 := model.AddVar(0, math.Inf(1), 3, "x1", scip.Integer)
//	x2 := model.AddVar(0, math.Inf(1), 4, "x2", scip.Integer)
//	model.AddCons([]*scip.Variable{x1, x2}, []float64{2, 1}, math.Inf(-1), 100, "c1")
//	model.AddCons([]*scip.Variable{x1, x2}, []float64{1, 2}, math.Inf(-1), 80, "c2")
//
//	solved := model.Solve()
//	defer solved.Close()
//	fmt.Println(solved.Status(), solved.ObjVal()) // Optimal 200
//	if sol := solved.BestSol(); sol != nil {
//		fmt.Println(sol.Val(x1), sol.Val(x2)) // 40 20
//	}
//
// # Extensions
//
// Branching rules and pricers are plain Go interfaces (BranchRule, Pricer).
// SCIP calls them synchronously from inside Solve. An extension that needs
// to look at the model being solved keeps a ModelRef to it.
//
// # Errors
//
// Methods prefixed with Try return an *Error carrying the SCIP return code.
// Their counterparts without the prefix panic with that error instead, which
// keeps builder chains linear. Broken extension contracts (a pricer that
// claims columns it did not add, an unknown status code from a mismatched
// SCIP build) always panic.
//
// # Engines
//
// The libscip backend is compiled in with the "scip" build tag and
// registers itself as driver "scip". Without it New panics with
// ErrNoEngine.
package scip

import (
	"errors"
	"fmt"
	"math"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// DefaultDriver is the engine driver used when no other is configured.
const DefaultDriver = "scip"

// Inf returns positive infinity, SCIP's representation of a missing upper bound.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, SCIP's representation of a missing lower bound.
func NegInf() float64 {
	return math.Inf(-1)
}

// ----------------------------------------------------------------------------
// Types
// ----------------------------------------------------------------------------

// VarType is the domain type of a variable.
type VarType int

const (
	// Continuous indicates a continuous variable.
	Continuous VarType = iota
	// Integer indicates an integer variable.
	Integer
	// ImplicitInteger indicates a continuous variable that is integral in
	// every feasible solution.
	ImplicitInteger
	// Binary indicates a 0/1 variable.
	Binary
)

// String returns a human-readable representation of the variable type.
func (v VarType) String() string {
	switch v {
	case Continuous:
		return "Continuous"
	case Integer:
		return "Integer"
	case ImplicitInteger:
		return "ImplicitInteger"
	case Binary:
		return "Binary"
	default:
		return "Unknown"
	}
}

func (v VarType) toNative() native.VarType {
	switch v {
	case Integer:
		return native.VarTypeInteger
	case ImplicitInteger:
		return native.VarTypeImplInt
	case Binary:
		return native.VarTypeBinary
	default:
		return native.VarTypeContinuous
	}
}

func varTypeFromNative(v native.VarType) VarType {
	switch v {
	case native.VarTypeBinary:
		return Binary
	case native.VarTypeInteger:
		return Integer
	case native.VarTypeImplInt:
		return ImplicitInteger
	case native.VarTypeContinuous:
		return Continuous
	default:
		panic(fmt.Sprintf("scip: unknown SCIP variable type %d", v))
	}
}

// ObjSense is the optimization direction.
type ObjSense int

const (
	// Minimize is SCIP's default sense.
	Minimize ObjSense = iota
	// Maximize turns the problem into a maximization problem.
	Maximize
)

// String returns a human-readable representation of the objective sense.
func (s ObjSense) String() string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

func (s ObjSense) toNative() native.ObjSense {
	if s == Maximize {
		return native.ObjSenseMaximize
	}
	return native.ObjSenseMinimize
}

// ParamSetting is an emphasis level for a whole group of SCIP parameters.
type ParamSetting int

const (
	// ParamDefault restores SCIP's defaults.
	ParamDefault ParamSetting = iota
	// ParamAggressive spends more effort.
	ParamAggressive
	// ParamFast spends less effort.
	ParamFast
	// ParamOff disables the group.
	ParamOff
)

// String returns the lower-case name used in parameter files.
func (p ParamSetting) String() string {
	switch p {
	case ParamAggressive:
		return "aggressive"
	case ParamFast:
		return "fast"
	case ParamOff:
		return "off"
	default:
		return "default"
	}
}

// ParseParamSetting parses the names produced by ParamSetting.String.
func ParseParamSetting(s string) (ParamSetting, error) {
	switch s {
	case "default":
		return ParamDefault, nil
	case "aggressive":
		return ParamAggressive, nil
	case "fast":
		return ParamFast, nil
	case "off":
		return ParamOff, nil
	default:
		return ParamDefault, fmt.Errorf("scip: unknown parameter setting %q", s)
	}
}

func (p ParamSetting) toNative() native.ParamSetting {
	switch p {
	case ParamAggressive:
		return native.ParamSettingAggressive
	case ParamFast:
		return native.ParamSettingFast
	case ParamOff:
		return native.ParamSettingOff
	default:
		return native.ParamSettingDefault
	}
}

// ----------------------------------------------------------------------------
// Errors
// ----------------------------------------------------------------------------

// ErrNoEngine is returned by TryNew when the requested driver is not linked in.
var ErrNoEngine = errors.New("scip: no engine driver available")

// Error represents a failed SCIP call with context about which operation failed.
type Error struct {
	Op      string  // Operation that failed (e.g., "CreateProb", "SetIntParam")
	Retcode Retcode // SCIP return code
	Msg     string  // Additional context
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("scip: %s failed: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("scip: %s failed with retcode %s", e.Op, e.Retcode)
}

// Is reports whether target is an *Error with the same return code. An
// empty Op in target matches any operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Retcode == e.Retcode && (t.Op == "" || t.Op == e.Op)
}

// newError creates a new Error if rc is not okay.
// Returns nil if rc is okay.
func newError(op string, rc native.Retcode) error {
	code := retcodeFromNative(rc)
	if code == RetcodeOkay {
		return nil
	}
	return &Error{Op: op, Retcode: code}
}

// newErrorMsg creates a new Error with an additional message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Retcode: RetcodeInvalidData, Msg: msg}
}

// must panics with err when it is not nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
