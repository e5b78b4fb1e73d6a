//go:build scip

package scipc

/*
#include "shim.h"
*/
import "C"
import (
	"github.com/bartolsthoorn/goscip/internal/native"
)

// recoverTo stores a panic from a Go callback and reports SCIP_ERROR in its
// place. Only the first panic of a C call is kept.
func (e *Engine) recoverTo(rc *C.SCIP_RETCODE) {
	if p := recover(); p != nil {
		if e.panicked == nil {
			e.panicked = p
		}
		*rc = C.SCIP_ERROR
	}
}

//export goscipBranchExecLP
func goscipBranchExecLP(scip *C.SCIP, data C.uintptr_t, allowAddCons C.SCIP_Bool, result *C.SCIP_RESULT) (rc C.SCIP_RETCODE) {
	e := lookup(scip)
	defer e.recoverTo(&rc)

	def := e.branchRules[native.PluginData(data)]
	res := native.Result(*result)
	rc = C.SCIP_RETCODE(def.ExecLP(e, def.Data, allowAddCons != 0, &res))
	*result = C.SCIP_RESULT(res)
	return rc
}

//export goscipBranchFree
func goscipBranchFree(scip *C.SCIP, data C.uintptr_t) (rc C.SCIP_RETCODE) {
	e := lookup(scip)
	defer e.recoverTo(&rc)

	def := e.branchRules[native.PluginData(data)]
	delete(e.branchRules, def.Data)
	return C.SCIP_RETCODE(def.Free(e, def.Data))
}

//export goscipPricerRedCost
func goscipPricerRedCost(scip *C.SCIP, data C.uintptr_t, lowerBound *C.SCIP_Real, stopEarly *C.SCIP_Bool, result *C.SCIP_RESULT) (rc C.SCIP_RETCODE) {
	e := lookup(scip)
	defer e.recoverTo(&rc)

	def := e.pricers[native.PluginData(data)]
	lb := float64(*lowerBound)
	stop := *stopEarly != 0
	res := native.Result(*result)
	rc = C.SCIP_RETCODE(def.RedCost(e, def.Data, &lb, &stop, &res))
	*lowerBound = C.SCIP_Real(lb)
	*stopEarly = cBool(stop)
	*result = C.SCIP_RESULT(res)
	return rc
}

//export goscipPricerFarkas
func goscipPricerFarkas(scip *C.SCIP, data C.uintptr_t, result *C.SCIP_RESULT) (rc C.SCIP_RETCODE) {
	e := lookup(scip)
	defer e.recoverTo(&rc)

	def := e.pricers[native.PluginData(data)]
	res := native.Result(*result)
	rc = C.SCIP_RETCODE(def.Farkas(e, def.Data, &res))
	*result = C.SCIP_RESULT(res)
	return rc
}

//export goscipPricerFree
func goscipPricerFree(scip *C.SCIP, data C.uintptr_t) (rc C.SCIP_RETCODE) {
	e := lookup(scip)
	defer e.recoverTo(&rc)

	def := e.pricers[native.PluginData(data)]
	delete(e.pricers, def.Data)
	return C.SCIP_RETCODE(def.Free(e, def.Data))
}
