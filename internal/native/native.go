// Package native describes the procedural surface of the SCIP engine that
// the scip package drives.
//
// All cgo lives in the scipc subpackage. Everything here is plain Go so the
// binding and its tests compile without libscip. Object references crossing
// this interface are opaque integers: the engine's own pointers for the cgo
// backend, table keys for the in-memory test engine.
//
// Numeric code values match SCIP 8 (type_retcode.h, type_stat.h,
// type_result.h, type_set.h, type_var.h, type_prob.h, type_paramset.h).
package native

// VarPtr identifies one engine variable.
type VarPtr uintptr

// ConsPtr identifies one engine constraint.
type ConsPtr uintptr

// SolPtr identifies one engine solution. Zero means no solution.
type SolPtr uintptr

// PluginData is the opaque value stored with a plugin and handed back to
// every plugin callback.
type PluginData uintptr

// Retcode is a SCIP_RETCODE value.
type Retcode int

const (
	RetcodeOkay               Retcode = 1
	RetcodeError              Retcode = 0
	RetcodeNoMemory           Retcode = -1
	RetcodeReadError          Retcode = -2
	RetcodeWriteError         Retcode = -3
	RetcodeNoFile             Retcode = -4
	RetcodeFileCreateError    Retcode = -5
	RetcodeLPError            Retcode = -6
	RetcodeNoProblem          Retcode = -7
	RetcodeInvalidCall        Retcode = -8
	RetcodeInvalidData        Retcode = -9
	RetcodeInvalidResult      Retcode = -10
	RetcodePluginNotFound     Retcode = -11
	RetcodeParameterUnknown   Retcode = -12
	RetcodeParameterWrongType Retcode = -13
	RetcodeParameterWrongVal  Retcode = -14
	RetcodeKeyAlreadyExisting Retcode = -15
	RetcodeMaxDepthLevel      Retcode = -16
	RetcodeBranchError        Retcode = -17
	RetcodeNotImplemented     Retcode = -18
)

// Status is a SCIP_STATUS value.
type Status int

const (
	StatusUnknown        Status = 0
	StatusUserInterrupt  Status = 1
	StatusNodeLimit      Status = 2
	StatusTotalNodeLimit Status = 3
	StatusStallNodeLimit Status = 4
	StatusTimeLimit      Status = 5
	StatusMemLimit       Status = 6
	StatusGapLimit       Status = 7
	StatusSolLimit       Status = 8
	StatusBestSolLimit   Status = 9
	StatusRestartLimit   Status = 10
	StatusOptimal        Status = 11
	StatusInfeasible     Status = 12
	StatusUnbounded      Status = 13
	StatusInfOrUnbd      Status = 14
	StatusTerminate      Status = 15
)

// Result is a SCIP_RESULT value written by plugin callbacks.
type Result int

const (
	ResultDidNotRun   Result = 1
	ResultDelayed     Result = 2
	ResultDidNotFind  Result = 3
	ResultFeasible    Result = 4
	ResultInfeasible  Result = 5
	ResultUnbounded   Result = 6
	ResultCutoff      Result = 7
	ResultSeparated   Result = 8
	ResultNewRound    Result = 9
	ResultReducedDom  Result = 10
	ResultConsAdded   Result = 11
	ResultConsChanged Result = 12
	ResultBranched    Result = 13
	ResultSolveLP     Result = 14
	ResultFoundSol    Result = 15
	ResultSuspended   Result = 16
	ResultSuccess     Result = 17
	ResultDelayNode   Result = 18
)

// Stage is a SCIP_STAGE value.
type Stage int

const (
	StageInit         Stage = 0
	StageProblem      Stage = 1
	StageTransforming Stage = 2
	StageTransformed  Stage = 3
	StageInitPresolve Stage = 4
	StagePresolving   Stage = 5
	StageExitPresolve Stage = 6
	StagePresolved    Stage = 7
	StageInitSolve    Stage = 8
	StageSolving      Stage = 9
	StageSolved       Stage = 10
	StageExitSolve    Stage = 11
	StageFreeTrans    Stage = 12
	StageFree         Stage = 13
)

// VarType is a SCIP_VARTYPE value.
type VarType int

const (
	VarTypeBinary     VarType = 0
	VarTypeInteger    VarType = 1
	VarTypeImplInt    VarType = 2
	VarTypeContinuous VarType = 3
)

// ObjSense is a SCIP_OBJSENSE value.
type ObjSense int

const (
	ObjSenseMaximize ObjSense = -1
	ObjSenseMinimize ObjSense = 1
)

// ParamSetting is a SCIP_PARAMSETTING value.
type ParamSetting int

const (
	ParamSettingDefault    ParamSetting = 0
	ParamSettingAggressive ParamSetting = 1
	ParamSettingFast       ParamSetting = 2
	ParamSettingOff        ParamSetting = 3
)

// SetppcType selects the set partitioning, packing or covering handler.
type SetppcType int

const (
	SetppcPartitioning SetppcType = 0
	SetppcPacking      SetppcType = 1
	SetppcCovering     SetppcType = 2
)
