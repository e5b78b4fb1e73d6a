package scip

import (
	"fmt"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// Status is the outcome of a SCIP optimization run.
type Status int

const (
	// StatusUnknown indicates the solving status is not yet known.
	StatusUnknown Status = iota
	// StatusUserInterrupt indicates the user interrupted the solve.
	StatusUserInterrupt
	// StatusNodeLimit indicates the node limit was reached.
	StatusNodeLimit
	// StatusTotalNodeLimit indicates the node limit including restarts was reached.
	StatusTotalNodeLimit
	// StatusStallNodeLimit indicates the stalling node limit was reached
	// (no improvement of the primal bound).
	StatusStallNodeLimit
	// StatusTimeLimit indicates the time limit was reached.
	StatusTimeLimit
	// StatusMemoryLimit indicates the memory limit was reached.
	StatusMemoryLimit
	// StatusGapLimit indicates the gap limit was reached.
	StatusGapLimit
	// StatusSolutionLimit indicates the solution limit was reached.
	StatusSolutionLimit
	// StatusBestSolutionLimit indicates the solution improvement limit was reached.
	StatusBestSolutionLimit
	// StatusRestartLimit indicates the restart limit was reached.
	StatusRestartLimit
	// StatusOptimal indicates an optimal solution was found.
	StatusOptimal
	// StatusInfeasible indicates the problem was proven infeasible.
	StatusInfeasible
	// StatusUnbounded indicates the problem was proven unbounded.
	StatusUnbounded
	// StatusInfeasibleOrUnbounded indicates the problem was proven to be
	// either infeasible or unbounded.
	StatusInfeasibleOrUnbounded
	// StatusTerminate indicates the process received a termination signal.
	StatusTerminate
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	names := []string{
		"Unknown", "UserInterrupt", "NodeLimit", "TotalNodeLimit",
		"StallNodeLimit", "TimeLimit", "MemoryLimit", "GapLimit",
		"SolutionLimit", "BestSolutionLimit", "RestartLimit", "Optimal",
		"Infeasible", "Unbounded", "InfeasibleOrUnbounded", "Terminate",
	}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsOptimal returns true if the problem was solved to optimality.
func (s Status) IsOptimal() bool {
	return s == StatusOptimal
}

// IsLimit returns true if the solve stopped on a configured limit.
func (s Status) IsLimit() bool {
	switch s {
	case StatusNodeLimit, StatusTotalNodeLimit, StatusStallNodeLimit,
		StatusTimeLimit, StatusMemoryLimit, StatusGapLimit,
		StatusSolutionLimit, StatusBestSolutionLimit, StatusRestartLimit:
		return true
	default:
		return false
	}
}

// statusFromNative maps a SCIP_STATUS. An unknown code means the binding
// and the linked SCIP disagree, so it panics.
func statusFromNative(status native.Status) Status {
	switch status {
	case native.StatusUnknown:
		return StatusUnknown
	case native.StatusUserInterrupt:
		return StatusUserInterrupt
	case native.StatusNodeLimit:
		return StatusNodeLimit
	case native.StatusTotalNodeLimit:
		return StatusTotalNodeLimit
	case native.StatusStallNodeLimit:
		return StatusStallNodeLimit
	case native.StatusTimeLimit:
		return StatusTimeLimit
	case native.StatusMemLimit:
		return StatusMemoryLimit
	case native.StatusGapLimit:
		return StatusGapLimit
	case native.StatusSolLimit:
		return StatusSolutionLimit
	case native.StatusBestSolLimit:
		return StatusBestSolutionLimit
	case native.StatusRestartLimit:
		return StatusRestartLimit
	case native.StatusOptimal:
		return StatusOptimal
	case native.StatusInfeasible:
		return StatusInfeasible
	case native.StatusUnbounded:
		return StatusUnbounded
	case native.StatusInfOrUnbd:
		return StatusInfeasibleOrUnbounded
	case native.StatusTerminate:
		return StatusTerminate
	default:
		panic(fmt.Sprintf("scip: unknown SCIP status %d", status))
	}
}

// Retcode is a SCIP return code.
type Retcode int

const (
	RetcodeOkay Retcode = iota
	RetcodeError
	RetcodeNoMemory
	RetcodeReadError
	RetcodeWriteError
	RetcodeNoFile
	RetcodeFileCreateError
	RetcodeLPError
	RetcodeNoProblem
	RetcodeInvalidCall
	RetcodeInvalidData
	RetcodeInvalidResult
	RetcodePluginNotFound
	RetcodeParameterUnknown
	RetcodeParameterWrongType
	RetcodeParameterWrongVal
	RetcodeKeyAlreadyExisting
	RetcodeMaxDepthLevel
	RetcodeBranchError
	RetcodeNotImplemented
)

// String returns a human-readable representation of the return code.
func (r Retcode) String() string {
	names := []string{
		"Okay", "Error", "NoMemory", "ReadError", "WriteError", "NoFile",
		"FileCreateError", "LPError", "NoProblem", "InvalidCall",
		"InvalidData", "InvalidResult", "PluginNotFound", "ParameterUnknown",
		"ParameterWrongType", "ParameterWrongVal", "KeyAlreadyExisting",
		"MaxDepthLevel", "BranchError", "NotImplemented",
	}
	if int(r) >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

var retcodes = map[native.Retcode]Retcode{
	native.RetcodeOkay:               RetcodeOkay,
	native.RetcodeError:              RetcodeError,
	native.RetcodeNoMemory:           RetcodeNoMemory,
	native.RetcodeReadError:          RetcodeReadError,
	native.RetcodeWriteError:         RetcodeWriteError,
	native.RetcodeNoFile:             RetcodeNoFile,
	native.RetcodeFileCreateError:    RetcodeFileCreateError,
	native.RetcodeLPError:            RetcodeLPError,
	native.RetcodeNoProblem:          RetcodeNoProblem,
	native.RetcodeInvalidCall:        RetcodeInvalidCall,
	native.RetcodeInvalidData:        RetcodeInvalidData,
	native.RetcodeInvalidResult:      RetcodeInvalidResult,
	native.RetcodePluginNotFound:     RetcodePluginNotFound,
	native.RetcodeParameterUnknown:   RetcodeParameterUnknown,
	native.RetcodeParameterWrongType: RetcodeParameterWrongType,
	native.RetcodeParameterWrongVal:  RetcodeParameterWrongVal,
	native.RetcodeKeyAlreadyExisting: RetcodeKeyAlreadyExisting,
	native.RetcodeMaxDepthLevel:      RetcodeMaxDepthLevel,
	native.RetcodeBranchError:        RetcodeBranchError,
	native.RetcodeNotImplemented:     RetcodeNotImplemented,
}

func retcodeFromNative(rc native.Retcode) Retcode {
	code, ok := retcodes[rc]
	if !ok {
		panic(fmt.Sprintf("scip: unknown SCIP retcode %d", rc))
	}
	return code
}
