package scip

import (
	"go.uber.org/zap"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// Pricer generates new columns (variables) during solving.
//
// SCIP calls GenerateColumns with farkas false for reduced cost pricing and
// with farkas true when the LP relaxation is infeasible and columns are
// needed to repair it.
type Pricer interface {
	GenerateColumns(farkas bool) PricerResult
}

// PricerResultState is the outcome of a pricing round.
type PricerResultState int

const (
	// PricerDidNotRun reports that the pricer did not look for columns.
	PricerDidNotRun PricerResultState = iota
	// PricerFoundColumns reports that at least one column was added.
	PricerFoundColumns
	// PricerStopEarly asks SCIP to stop pricing for the current node even
	// though improving columns may exist. Not allowed in Farkas pricing.
	PricerStopEarly
)

// String returns a human-readable representation of the state.
func (s PricerResultState) String() string {
	switch s {
	case PricerDidNotRun:
		return "DidNotRun"
	case PricerFoundColumns:
		return "FoundColumns"
	case PricerStopEarly:
		return "StopEarly"
	default:
		return "Unknown"
	}
}

func (s PricerResultState) toNative() native.Result {
	switch s {
	case PricerDidNotRun:
		return native.ResultDidNotRun
	case PricerFoundColumns, PricerStopEarly:
		return native.ResultSuccess
	default:
		panic("scip: unknown pricer result " + s.String())
	}
}

// PricerResult is returned by Pricer.GenerateColumns. LowerBound, when set,
// is a valid lower bound on the LP value of the current node. It is
// ignored in Farkas pricing.
type PricerResult struct {
	State      PricerResultState
	LowerBound *float64
}

// IncludePricer adds pricer to the model. See TryIncludePricer.
func (m *ProblemModel) IncludePricer(name, desc string, priority int, delay bool, pricer Pricer) *ProblemModel {
	must(m.TryIncludePricer(name, desc, priority, delay, pricer))
	return m
}

// TryIncludePricer adds pricer to the model and activates it.
//
// With delay set SCIP only calls the pricer once no cutting planes remain
// to be added. An empty name gets a generated unique one. New columns are
// added from inside GenerateColumns with ProblemModel.AddPricedVar.
func (m *ProblemModel) TryIncludePricer(name, desc string, priority int, delay bool, pricer Pricer) error {
	inst := checkLive(m.inst, "problem")
	if pricer == nil {
		return newErrorMsg("IncludePricer", "nil pricer")
	}

	name = pluginName("pricer", name)
	data := registerPlugin(newPluginBox(pricer, inst))
	rc := inst.eng.IncludePricer(native.PricerDef{
		Name:     name,
		Desc:     desc,
		Priority: priority,
		Delay:    delay,
		Data:     data,
		RedCost:  pricerRedCost,
		Farkas:   pricerFarkas,
		Free:     freePlugin[Pricer]("pricer"),
	})
	if err := newError("IncludePricer", rc); err != nil {
		unregisterPlugin(data)
		return err
	}
	inst.metrics.pluginAdded()
	inst.log.Debug("included pricer", zap.String("name", name), zap.Int("priority", priority), zap.Bool("delay", delay))
	return nil
}

func pricerRedCost(e native.Engine, data native.PluginData, lowerBound *float64, stopEarly *bool, result *native.Result) native.Retcode {
	return callPricer(e, data, lowerBound, stopEarly, result, false)
}

func pricerFarkas(e native.Engine, data native.PluginData, result *native.Result) native.Retcode {
	return callPricer(e, data, nil, nil, result, true)
}

// callPricer is the shared trampoline behind both pricing callbacks.
// lowerBound and stopEarly are nil for Farkas pricing.
func callPricer(e native.Engine, data native.PluginData, lowerBound *float64, stopEarly *bool, result *native.Result, farkas bool) native.Retcode {
	box := recoverPlugin[Pricer](data)
	kind := "redcost"
	if farkas {
		kind = "farkas"
	}
	box.metrics.invoked("pricer", kind)

	before := e.NVars()
	res := box.impl.GenerateColumns(farkas)

	if farkas {
		if res.State == PricerStopEarly {
			panic("scip: pricer requested to stop early during Farkas pricing")
		}
	} else {
		if res.LowerBound != nil && lowerBound != nil {
			*lowerBound = *res.LowerBound
		}
		if res.State == PricerStopEarly && stopEarly != nil {
			*stopEarly = true
		}
	}

	if res.State == PricerFoundColumns {
		if after := e.NVars(); after <= before {
			panic("scip: pricer reported new columns but the number of variables did not increase")
		}
	}

	box.log.Debug("pricer executed",
		zap.String("kind", kind),
		zap.Stringer("result", res.State),
		zap.Int("vars", e.NVars()),
	)
	*result = res.State.toNative()
	return native.RetcodeOkay
}
